package prescriptions

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byCode map[string][]Drug
	err    error
	calls  int
}

func (r *testRepo) ListByCode(ctx context.Context, code string) ([]Drug, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return append([]Drug(nil), r.byCode[code]...), nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(ExpiryLayout, s)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return d
}

func TestLogin_ReturnsDrugsInOrder(t *testing.T) {
	repo := &testRepo{byCode: map[string][]Drug{
		"ABC123": {
			{ID: 1, PrescriptionCode: "ABC123", Name: "Parol", Expiry: mustDate(t, "2026-01-01"), UsageInstructions: "2x1"},
			{ID: 2, PrescriptionCode: "ABC123", Name: "Augmentin", Expiry: mustDate(t, "2025-12-31"), UsageInstructions: "1x2"},
		},
	}}
	svc := NewService(repo)

	drugs, err := svc.Login(context.Background(), "  ABC123 ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(drugs) != 2 || drugs[0].Name != "Parol" || drugs[1].Name != "Augmentin" {
		t.Fatalf("unexpected drugs: %+v", drugs)
	}
}

func TestLogin_EmptyCodeDoesNotHitRepo(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo should not be called, got %d calls", repo.calls)
	}
}

func TestLogin_UnknownCodeIsNotFound(t *testing.T) {
	svc := NewService(&testRepo{byCode: map[string][]Drug{}})

	_, err := svc.Login(context.Background(), "NOPE")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLogin_RepoErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewService(&testRepo{err: boom})

	_, err := svc.Login(context.Background(), "ABC123")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("repo failure must not look like a client error: %v", err)
	}
}
