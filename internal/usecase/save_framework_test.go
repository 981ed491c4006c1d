package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

type memStore struct {
	items map[string]domain.SavedFramework
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: map[string]domain.SavedFramework{}}
}

func (m *memStore) Save(_ context.Context, f domain.SavedFramework) error {
	if m.err != nil {
		return m.err
	}
	m.items[f.ID] = f
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (domain.SavedFramework, error) {
	f, ok := m.items[id]
	if !ok {
		return domain.SavedFramework{}, &domain.OpError{Op: "mem.get", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return f, nil
}

func (m *memStore) List(_ context.Context) ([]domain.FrameworkRef, error) {
	out := make([]domain.FrameworkRef, 0, len(m.items))
	for _, f := range m.items {
		out = append(out, f.Ref())
	}
	domain.SortNewestFirst(out)
	return out, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 10, 18, 10, 11, 12, 0, time.UTC)
}

func TestSaveFramework_AssignsIDTitleAndRendersDocument(t *testing.T) {
	store := newMemStore()
	uc := NewSaveFramework(store,
		WithClock(fixedClock),
		WithIDSuffix(func() string { return "abcdef12-3456" }),
	)

	saved, err := uc.Execute(context.Background(), SaveRequest{
		Draft: domain.FrameworkDraft{TentativeTitle: "Urban heat islands"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.ID != "framework_20261018_101112_abcdef12" {
		t.Fatalf("unexpected id %q", saved.ID)
	}
	if saved.Title != "Urban heat islands" {
		t.Fatalf("unexpected title %q", saved.Title)
	}
	if saved.Document != domain.ExportDocument(saved.Draft) {
		t.Fatalf("expected document rendered from draft")
	}
	if len(saved.Draft.Objectives) != 1 {
		t.Fatalf("expected normalized draft, got %q", saved.Draft.Objectives)
	}
	if _, ok := store.items[saved.ID]; !ok {
		t.Fatalf("expected framework stored")
	}
}

func TestSaveFramework_KeepsSubmittedDocument(t *testing.T) {
	store := newMemStore()
	uc := NewSaveFramework(store, WithClock(fixedClock))

	saved, err := uc.Execute(context.Background(), SaveRequest{Document: "# custom\n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Document != "# custom\n" {
		t.Fatalf("expected submitted document kept, got %q", saved.Document)
	}
	if saved.Title != "Untitled Framework" {
		t.Fatalf("expected untitled, got %q", saved.Title)
	}
}

func TestSaveFramework_StoreError(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("boom")

	_, err := NewSaveFramework(store).Execute(context.Background(), SaveRequest{})
	if err == nil {
		t.Fatalf("expected store error")
	}
}

func TestFrameworkCatalog_GetRejectsMalformedIDs(t *testing.T) {
	uc := NewFrameworkCatalog(newMemStore())

	_, err := uc.Get(context.Background(), "../../etc/passwd")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestFrameworkCatalog_ListAndGet(t *testing.T) {
	store := newMemStore()
	saver := NewSaveFramework(store, WithClock(fixedClock), WithIDSuffix(func() string { return "00000001" }))
	saved, err := saver.Execute(context.Background(), SaveRequest{Draft: domain.FrameworkDraft{TentativeTitle: "A"}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	uc := NewFrameworkCatalog(store)
	refs, err := uc.List(context.Background())
	if err != nil || len(refs) != 1 || refs[0].ID != saved.ID {
		t.Fatalf("unexpected list result %+v err=%v", refs, err)
	}

	got, err := uc.Get(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "A" {
		t.Fatalf("unexpected title %q", got.Title)
	}
}
