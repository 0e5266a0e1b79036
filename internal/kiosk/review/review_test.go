package review

import (
	"context"
	"math/rand"
	"testing"

	"ilac-otomasyon/internal/kiosk/nav"
	"ilac-otomasyon/internal/kiosk/notify"
	"ilac-otomasyon/internal/kiosk/session"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(name string) session.Drug {
	return session.Drug{Name: name, Expiry: "2026-01-01", UsageInstructions: "kullanım " + name}
}

func TestDedup_ABA(t *testing.T) {
	got := Dedup([]session.Drug{{Name: "A"}, {Name: "B"}, {Name: "A"}})
	want := []session.Drug{{Name: "A"}, {Name: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Dedup mismatch (-want +got):\n%s", diff)
	}
}

func TestDedup_FirstOccurrenceWins(t *testing.T) {
	first := session.Drug{Name: "Parol", Expiry: "2026-01-01", UsageInstructions: "2x1"}
	later := session.Drug{Name: "Parol", Expiry: "2030-01-01", UsageInstructions: "other"}

	got := Dedup([]session.Drug{first, d("B"), later})
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
}

func TestDedup_IdempotentAndOrderPreserving(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		n := rng.Intn(10)
		in := make([]session.Drug, 0, n)
		for j := 0; j < n; j++ {
			in = append(in, session.Drug{Name: names[rng.Intn(len(names))], Expiry: string(rune('a' + j))})
		}

		once := Dedup(in)
		if diff := cmp.Diff(once, Dedup(once)); diff != "" {
			t.Fatalf("not idempotent for %v:\n%s", in, diff)
		}

		// cada salida es la primera aparición en la entrada, en el mismo orden
		pos := -1
		for _, out := range once {
			idx := -1
			for k, x := range in {
				if x.Name == out.Name {
					idx = k
					break
				}
			}
			require.Equal(t, in[idx], out)
			require.Greater(t, idx, pos)
			pos = idx
		}
	}
}

func TestDedup_Empty(t *testing.T) {
	assert.Empty(t, Dedup(nil))
}

func TestReduce(t *testing.T) {
	s := Reduce(State{}, Loaded{Drugs: []session.Drug{d("A"), d("B"), d("A")}})
	assert.Equal(t, Rendered, s.Phase)
	assert.Len(t, s.Drugs, 2)

	// índice fuera de rango no cambia nada
	assert.Equal(t, s, Reduce(s, RemoveCard{Index: 5}))
	assert.Equal(t, s, Reduce(s, RemoveCard{Index: -1}))

	s = Reduce(s, RemoveCard{Index: 0})
	assert.Equal(t, []session.Drug{d("B")}, s.Drugs)

	s = Reduce(s, Confirm{})
	assert.Equal(t, Confirmed, s.Phase)
	assert.Empty(t, s.Drugs)
	assert.Nil(t, Cards(s))

	// después de confirmar ya no se quitan tarjetas
	assert.Equal(t, s, Reduce(s, RemoveCard{Index: 0}))
}

func TestCards_ProjectionByIndex(t *testing.T) {
	s := Reduce(State{}, Loaded{Drugs: []session.Drug{d("A"), d("B")}})
	cards := Cards(s)
	require.Len(t, cards, 2)
	assert.Equal(t, Card{Index: 1, Name: "B", Expiry: "2026-01-01", UsageInstructions: "kullanım B"}, cards[1])
}

type fixture struct {
	store *session.KVStore
	kv    *session.MemoryKV
	notes *notify.Recorder
	nav   *nav.Recorder
	wf    *Workflow
}

func newFixture(t *testing.T, stored ...session.Drug) fixture {
	t.Helper()
	kv := session.NewMemoryKV()
	store := session.NewKVStore(kv, nil)
	if stored != nil {
		require.NoError(t, store.Save(context.Background(), stored))
	}
	f := fixture{store: store, kv: kv, notes: &notify.Recorder{}, nav: &nav.Recorder{}}
	f.wf = NewWorkflow(store, f.notes, f.nav, nil)
	return f
}

func TestWorkflow_LoadEmptyOrMalformed(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	s := f.wf.Load(ctx)
	assert.Equal(t, Rendered, s.Phase)
	assert.Empty(t, f.wf.Cards())

	require.NoError(t, f.kv.Set(ctx, session.Key, []byte("not json")))
	f.wf.Load(ctx)
	assert.Empty(t, f.wf.Cards())
	assert.Empty(t, f.notes.All(), "storage problems are never surfaced")
}

func TestWorkflow_CardsMatchDedupOfSessionAfterEveryRemoval(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, d("A"), d("B"), d("A"), d("C"), d("B"))

	f.wf.Load(ctx)
	require.Len(t, f.wf.Cards(), 3)

	for len(f.wf.Cards()) > 0 {
		require.True(t, f.wf.RemoveCard(ctx, 0))

		if diff := cmp.Diff(Dedup(f.store.Load(ctx)), f.wf.State().Drugs, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("cards diverged from session (-session +cards):\n%s", diff)
		}
	}
	assert.Empty(t, f.store.Load(ctx))
}

func TestWorkflow_RemoveCardSurvivesReload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, d("A"), d("B"))

	f.wf.Load(ctx)
	require.True(t, f.wf.RemoveCard(ctx, 1))

	reloaded := NewWorkflow(f.store, f.notes, f.nav, nil)
	reloaded.Load(ctx)
	cards := reloaded.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "A", cards[0].Name)
}

func TestWorkflow_RemoveCardWithoutStoredRecordIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, d("A"), d("B"))
	f.wf.Load(ctx)

	// otra pestaña/proceso ya borró la sesión
	require.NoError(t, f.store.Clear(ctx))

	assert.True(t, f.wf.RemoveCard(ctx, 0))
	assert.Len(t, f.wf.Cards(), 1)
	raw, _ := f.kv.Get(ctx, session.Key)
	assert.Nil(t, raw, "nothing should be written back")

	assert.False(t, f.wf.RemoveCard(ctx, 9))
}

func TestWorkflow_ConfirmAlwaysClearsSession(t *testing.T) {
	for removals := 0; removals <= 3; removals++ {
		ctx := context.Background()
		f := newFixture(t, d("A"), d("B"), d("C"))
		f.wf.Load(ctx)

		for i := 0; i < removals; i++ {
			f.wf.RemoveCard(ctx, 0)
		}
		f.wf.Confirm(ctx)

		raw, err := f.kv.Get(ctx, session.Key)
		require.NoError(t, err)
		assert.Nil(t, raw, "removals=%d", removals)

		last, ok := f.notes.Last()
		require.True(t, ok)
		assert.Equal(t, notify.Success, last.Kind)
		assert.Equal(t, MsgConfirmed, last.Message)

		page, ok := f.nav.Last()
		require.True(t, ok)
		assert.Equal(t, nav.Login, page)

		assert.Equal(t, Confirmed, f.wf.State().Phase)

		// recargar la página de revisión muestra vacío
		again := NewWorkflow(f.store, f.notes, f.nav, nil)
		again.Load(ctx)
		assert.Empty(t, again.Cards())
	}
}
