package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONUnderThesisDir(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}
	want := filepath.Join(tmp, ".thesis", "logs", "thesis.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("wizard.step", "index", 2)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"logger.initialized"`) || !strings.Contains(out, `"msg":"wizard.step"`) {
		t.Fatalf("expected JSON records, got %s", out)
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden")
	_ = cleanup()

	b, _ := os.ReadFile(filepath.Join(tmp, ".thesis", "logs", "thesis.log"))
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("expected debug record filtered at info level")
	}
}
