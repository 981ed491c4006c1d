package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

// ConfigFileName marks the root of a thesis workspace; `thesis init` writes it.
const ConfigFileName = "thesis.yaml"

// configNames are accepted markers, in lookup order.
var configNames = []string{ConfigFileName, "thesis.yml"}

// ConfigPath returns the marker file inside root, or "" when root holds none.
func ConfigPath(root string) string {
	for _, name := range configNames {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Finder walks upward from a directory until it meets a thesis.yaml (or thesis.yml).
type Finder struct {
	// Stop, when set, bounds the walk: the search never climbs above it.
	Stop string
}

func NewFinder() *Finder {
	return &Finder{}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("startDir is empty")}
	}

	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, err := os.Stat(start); err == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}

	stop := ""
	if f.Stop != "" {
		if stop, err = filepath.Abs(f.Stop); err != nil {
			return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: f.Stop, Err: err}
		}
	}

	for dir := filepath.Clean(start); ; dir = filepath.Dir(dir) {
		if ConfigPath(dir) != "" {
			return dir, nil
		}
		if dir == stop || filepath.Dir(dir) == dir {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: start, Err: domain.ErrNotFound}
		}
	}
}
