package session

import (
	"context"
	"errors"
	"testing"

	"ilac-otomasyon/internal/adapters/storage/sqlite"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	parol     = Drug{Name: "Parol", Expiry: "2026-01-01", UsageInstructions: "2x1"}
	augmentin = Drug{Name: "Augmentin", Expiry: "2025-12-31", UsageInstructions: "1x2"}
)

func TestSaveLoad_RoundTripsInOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []Drug{parol, augmentin}))
	require.NoError(t, s.Save(ctx, []Drug{augmentin}))

	if diff := cmp.Diff([]Drug{augmentin}, s.Load(ctx)); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_AbsentOrMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := NewKVStore(kv, nil)

	got := s.Load(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	for _, raw := range []string{"{not json", `{"name":"x"}`, "null", ""} {
		require.NoError(t, kv.Set(ctx, Key, []byte(raw)))
		got := s.Load(ctx)
		assert.NotNil(t, got, "raw=%q", raw)
		assert.Empty(t, got, "raw=%q", raw)
	}
}

func TestRemove_FirstMatchOnly(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	dup := Drug{Name: "Parol", Expiry: "2027-01-01", UsageInstructions: "1x1"}

	require.NoError(t, s.Save(ctx, []Drug{parol, augmentin, dup}))
	require.NoError(t, s.Remove(ctx, "Parol"))

	if diff := cmp.Diff([]Drug{augmentin, dup}, s.Load(ctx)); diff != "" {
		t.Fatalf("after Remove (-want +got):\n%s", diff)
	}
}

func TestRemove_MissingNameLeavesStoredBytesUntouched(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := NewKVStore(kv, nil)

	require.NoError(t, s.Save(ctx, []Drug{parol, augmentin}))
	before, _ := kv.Get(ctx, Key)

	require.NoError(t, s.Remove(ctx, "Majezik"))

	after, _ := kv.Get(ctx, Key)
	assert.Equal(t, before, after)
}

func TestClear_RemovesKey(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := NewKVStore(kv, nil)

	require.NoError(t, s.Save(ctx, []Drug{parol}))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	raw, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.Empty(t, s.Load(ctx))
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingKV) Set(context.Context, string, []byte) error   { return errors.New("disk gone") }
func (failingKV) Delete(context.Context, string) error        { return errors.New("disk gone") }

func TestBackendErrors(t *testing.T) {
	s := NewKVStore(failingKV{}, nil)
	ctx := context.Background()

	assert.Empty(t, s.Load(ctx))
	assert.Error(t, s.Save(ctx, []Drug{parol}))
	assert.Error(t, s.Clear(ctx))
	// Load vacío => no hay nada que quitar
	assert.NoError(t, s.Remove(ctx, "Parol"))
}

func TestKVStore_OverSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewKVStore(sqlite.NewKVRepo(db), nil)

	require.NoError(t, s.Save(ctx, []Drug{parol, augmentin}))
	require.NoError(t, s.Remove(ctx, "Parol"))
	assert.Equal(t, []Drug{augmentin}, s.Load(ctx))

	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.Load(ctx))
}
