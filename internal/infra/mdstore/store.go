// Package mdstore keeps frameworks as flat files: a markdown document and a
// JSON record per framework, plus timestamped local exports.
package mdstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/wire"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
)

const (
	defaultFrameworksDir = "frameworks"
	defaultExportsDir    = "exports"
	indexFile            = "index.jsonl"
)

type Store struct {
	frameworksDir string
	exportsDir    string
	writeIndex    bool
	now           func() time.Time
}

type Option func(*Store)

// WithIndex enables an append-only listing: <frameworks>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *Store) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New resolves the configured directories against root.
func New(root string, cfg domain.PathsConfig, opts ...Option) *Store {
	s := &Store{
		frameworksDir: resolve(root, cfg.FrameworksDir, defaultFrameworksDir),
		exportsDir:    resolve(root, cfg.ExportsDir, defaultExportsDir),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func resolve(root, dir, fallback string) string {
	if strings.TrimSpace(dir) == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}

var (
	_ ports.FrameworkStore = (*Store)(nil)
	_ ports.DocumentSink   = (*Store)(nil)
)

func (s *Store) FrameworksDir() string { return s.frameworksDir }

func (s *Store) Save(ctx context.Context, f domain.SavedFramework) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !domain.ValidFrameworkID(f.ID) {
		return &domain.OpError{
			Op:   "mdstore.save",
			Kind: domain.KindInvalidConfig,
			Path: f.ID,
			Err:  errors.New("malformed framework id"),
		}
	}
	if err := mkdir(s.frameworksDir); err != nil {
		return err
	}

	rec := wire.FromSaved(f)
	rec.Document = ""
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return &domain.OpError{Op: "mdstore.marshal", Kind: domain.KindExecution, Path: f.ID, Err: err}
	}

	// Document first: a record without its document is never listed.
	if err := writeAtomic(filepath.Join(s.frameworksDir, f.ID+".md"), []byte(f.Document)); err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(s.frameworksDir, f.ID+".json"), b); err != nil {
		return err
	}

	if s.writeIndex {
		_ = s.appendIndex(f)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.SavedFramework, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedFramework{}, err
	}
	if !domain.ValidFrameworkID(id) {
		return domain.SavedFramework{}, notFound(id)
	}

	rec, err := readRecord(filepath.Join(s.frameworksDir, id+".json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.SavedFramework{}, notFound(id)
		}
		return domain.SavedFramework{}, err
	}

	doc, err := os.ReadFile(filepath.Join(s.frameworksDir, id+".md"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.SavedFramework{}, &domain.OpError{Op: "mdstore.read", Kind: domain.KindExecution, Path: id, Err: err}
	}
	rec.Document = string(doc)

	return rec.ToSaved(), nil
}

// List returns every readable record, newest first. Unreadable records are skipped.
func (s *Store) List(ctx context.Context) ([]domain.FrameworkRef, error) {
	entries, err := os.ReadDir(s.frameworksDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.FrameworkRef{}, nil
		}
		return nil, &domain.OpError{Op: "mdstore.list", Kind: domain.KindExecution, Path: s.frameworksDir, Err: err}
	}

	out := make([]domain.FrameworkRef, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		if !domain.ValidFrameworkID(strings.TrimSuffix(name, ".json")) {
			continue
		}
		rec, err := readRecord(filepath.Join(s.frameworksDir, name))
		if err != nil {
			continue
		}
		out = append(out, rec.ToSaved().Ref())
	}

	domain.SortNewestFirst(out)
	return out, nil
}

// WriteDocument writes a local export to <exports>/<slug>_<timestamp>.md.
func (s *Store) WriteDocument(name, document string) (string, error) {
	if err := mkdir(s.exportsDir); err != nil {
		return "", err
	}

	slug := slugify(name)
	if slug == "" {
		slug = "framework"
	}
	path := filepath.Join(s.exportsDir, fmt.Sprintf("%s_%s.md", slug, s.now().UTC().Format("20060102T150405Z")))

	if err := writeAtomic(path, []byte(document)); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) appendIndex(f domain.SavedFramework) error {
	line, err := json.Marshal(wire.FromRef(f.Ref()))
	if err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Join(s.frameworksDir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(append(line, '\n'))
	return err
}

func readRecord(path string) (wire.FrameworkRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return wire.FrameworkRecord{}, err
	}
	var rec wire.FrameworkRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return wire.FrameworkRecord{}, &domain.OpError{Op: "mdstore.parse", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return rec, nil
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{Op: "mdstore.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
	}
	return nil
}

// writeAtomic writes tmp then renames over path.
func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{Op: "mdstore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "mdstore.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}

func notFound(id string) error {
	return &domain.OpError{Op: "mdstore.get", Kind: domain.KindNotFound, Path: id, Err: domain.ErrNotFound}
}
