package mdstore

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

func saved(id, title string, at time.Time) domain.SavedFramework {
	d := domain.NewDraft()
	d.TentativeTitle = title
	return domain.SavedFramework{
		ID:        id,
		Title:     domain.FrameworkTitle(d),
		CreatedAt: at,
		Draft:     d,
		Document:  domain.ExportDocument(d),
	}
}

func TestSave_WritesDocumentAndRecord(t *testing.T) {
	tmp := t.TempDir()
	store := New(tmp, domain.DefaultConfig().Paths, WithIndex(true))

	f := saved("framework_20261018_101112_abcdef12", "Soil carbon", time.Date(2026, 10, 18, 10, 11, 12, 0, time.UTC))
	if err := store.Save(context.Background(), f); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	md, err := os.ReadFile(filepath.Join(tmp, "frameworks", f.ID+".md"))
	if err != nil {
		t.Fatalf("read md: %v", err)
	}
	if string(md) != f.Document {
		t.Fatalf("unexpected markdown content")
	}

	rec, err := os.ReadFile(filepath.Join(tmp, "frameworks", f.ID+".json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if strings.Contains(string(rec), `"document"`) {
		t.Fatalf("expected document kept out of the record, got:\n%s", rec)
	}
	if !strings.Contains(string(rec), `"tentativeTitle": "Soil carbon"`) {
		t.Fatalf("expected camelCase draft data, got:\n%s", rec)
	}

	got, err := store.Get(context.Background(), f.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	idx, err := os.Open(filepath.Join(tmp, "frameworks", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer idx.Close()
	sc := bufio.NewScanner(idx)
	lines := 0
	for sc.Scan() {
		lines++
		if !strings.Contains(sc.Text(), f.ID) {
			t.Fatalf("unexpected index line %q", sc.Text())
		}
	}
	if lines != 1 {
		t.Fatalf("expected 1 index line, got %d", lines)
	}

	if _, err := os.Stat(filepath.Join(tmp, "frameworks", f.ID+".json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file renamed away")
	}
}

func TestSave_RejectsMalformedID(t *testing.T) {
	store := New(t.TempDir(), domain.DefaultConfig().Paths)
	err := store.Save(context.Background(), saved("../escape", "x", time.Now()))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	store := New(t.TempDir(), domain.DefaultConfig().Paths)

	for _, id := range []string{"framework_20261018_101112", "../../etc/passwd"} {
		if _, err := store.Get(context.Background(), id); !domain.IsKind(err, domain.KindNotFound) {
			t.Fatalf("Get(%q): expected not_found, got %v", id, err)
		}
	}
}

func TestList_NewestFirstSkipsJunk(t *testing.T) {
	tmp := t.TempDir()
	store := New(tmp, domain.DefaultConfig().Paths)

	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "new", "mid"} {
		at := base.Add([]time.Duration{0, 2 * time.Hour, time.Hour}[i])
		id := domain.NewFrameworkID(at, "0000000"+string(rune('1'+i)))
		if err := store.Save(context.Background(), saved(id, title, at)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	dir := filepath.Join(tmp, "frameworks")
	_ = os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "framework_20261018_230000.json"), []byte("{broken"), 0o644)

	refs, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	var titles []string
	for _, r := range refs {
		titles = append(titles, r.Title)
	}
	if diff := cmp.Diff([]string{"new", "mid", "old"}, titles); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestList_MissingDir(t *testing.T) {
	refs, err := New(t.TempDir(), domain.DefaultConfig().Paths).List(context.Background())
	if err != nil || len(refs) != 0 {
		t.Fatalf("expected empty list, got %v err=%v", refs, err)
	}
}

func TestWriteDocument(t *testing.T) {
	tmp := t.TempDir()
	now := func() time.Time { return time.Date(2026, 10, 18, 10, 11, 12, 0, time.UTC) }
	store := New(tmp, domain.PathsConfig{ExportsDir: "out"}, WithNow(now))

	path, err := store.WriteDocument("Soil Carbon: A Study!", "# doc\n")
	if err != nil {
		t.Fatalf("WriteDocument error: %v", err)
	}

	want := filepath.Join(tmp, "out", "soil-carbon-a-study_20261018T101112Z.md")
	if path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "# doc\n" {
		t.Fatalf("unexpected content %q err=%v", b, err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Soil Carbon":           "soil-carbon",
		"  --Weird__name--":     "weird-name",
		"Étude des sols":        "étude-des-sols",
		"":                      "",
		"!!!":                   "",
		strings.Repeat("a", 80): strings.Repeat("a", 60),
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
