package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/answers"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspace(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, f := range []string{
		"thesis.yaml",
		"README.md",
		"answers.example.yaml",
		"docs/framework.md",
		"docs/literature-review/literature_review_template.md",
		"docs/methodology/methodology_template.md",
		".gitignore",
	} {
		assertExists(t, filepath.Join(tmp, filepath.FromSlash(f)))
	}
	for _, d := range Dirs {
		assertExists(t, filepath.Join(tmp, filepath.FromSlash(d)))
	}
}

func TestInitializer_TemplatesAreLoadable(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("scaffolded thesis.yaml does not load: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected scaffolded config to match defaults, got %+v", cfg)
	}

	d, err := answers.Load(filepath.Join(tmp, "answers.example.yaml"))
	if err != nil {
		t.Fatalf("scaffolded answers file does not load: %v", err)
	}
	if d.TentativeTitle == "" || len(d.Objectives) != 2 {
		t.Fatalf("unexpected example answers %+v", d)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "thesis.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing thesis.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read thesis.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected thesis.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read thesis.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "thesis:") {
		t.Fatalf("expected thesis.yaml overwritten with template, got %q", string(b))
	}
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s, stat err=%v", path, err)
	}
}
