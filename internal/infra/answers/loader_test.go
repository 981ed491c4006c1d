package answers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	src := `researchArea: Ecology
tentativeTitle: Coral bleaching
objectives:
  - Map reefs
  - ""
keyQuestions:
  - What drives bleaching?
timeframe: 12 months
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.ResearchArea != "Ecology" || d.TentativeTitle != "Coral bleaching" || d.Timeframe != "12 months" {
		t.Fatalf("unexpected scalars: %+v", d)
	}
	if len(d.Objectives) != 2 || d.Objectives[0] != "Map reefs" {
		t.Fatalf("unexpected objectives %q", d.Objectives)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, []byte(`{"tentativeTitle":"T","keyQuestions":["Q1"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.TentativeTitle != "T" || d.KeyQuestions[0] != "Q1" || len(d.Objectives) != 1 {
		t.Fatalf("unexpected draft %+v", d)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tentativeTitel: typo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config for unknown key, got %v", err)
	}
}

func TestDecode_Empty(t *testing.T) {
	d, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(d.Objectives) != 1 || len(d.KeyQuestions) != 1 {
		t.Fatalf("expected fresh draft, got %+v", d)
	}
}
