package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
)

// SaveRequest is a document submitted to the gateway. Document may be empty,
// in which case it is rendered from Draft.
type SaveRequest struct {
	Draft    domain.FrameworkDraft
	Document string
}

type SaveFramework struct {
	store ports.FrameworkStore
	now   func() time.Time
	newID func() string
}

type SaveOption func(*SaveFramework)

// WithClock is useful for tests.
func WithClock(now func() time.Time) SaveOption {
	return func(uc *SaveFramework) { uc.now = now }
}

// WithIDSuffix overrides the random id suffix source (tests).
func WithIDSuffix(f func() string) SaveOption {
	return func(uc *SaveFramework) { uc.newID = f }
}

func NewSaveFramework(store ports.FrameworkStore, opts ...SaveOption) *SaveFramework {
	uc := &SaveFramework{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *SaveFramework) Execute(ctx context.Context, req SaveRequest) (domain.SavedFramework, error) {
	if uc.store == nil {
		return domain.SavedFramework{}, &domain.OpError{
			Op:   "usecase.save_framework",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("framework store is nil"),
		}
	}

	draft := req.Draft.Normalize()
	doc := req.Document
	if strings.TrimSpace(doc) == "" {
		doc = domain.ExportDocument(draft)
	}

	now := uc.now().UTC()
	f := domain.SavedFramework{
		ID:        domain.NewFrameworkID(now, uc.newID()),
		Title:     domain.FrameworkTitle(draft),
		CreatedAt: now,
		Draft:     draft,
		Document:  doc,
	}

	if err := uc.store.Save(ctx, f); err != nil {
		return domain.SavedFramework{}, err
	}
	return f, nil
}

// FrameworkCatalog reads saved frameworks.
type FrameworkCatalog struct {
	store ports.FrameworkStore
}

func NewFrameworkCatalog(store ports.FrameworkStore) *FrameworkCatalog {
	return &FrameworkCatalog{store: store}
}

func (uc *FrameworkCatalog) List(ctx context.Context) ([]domain.FrameworkRef, error) {
	return uc.store.List(ctx)
}

func (uc *FrameworkCatalog) Get(ctx context.Context, id string) (domain.SavedFramework, error) {
	id = strings.TrimSpace(id)
	if !domain.ValidFrameworkID(id) {
		return domain.SavedFramework{}, &domain.OpError{
			Op:   "usecase.get_framework",
			Kind: domain.KindNotFound,
			Path: id,
			Err:  domain.ErrNotFound,
		}
	}
	return uc.store.Get(ctx, id)
}
