// Package answers reads a pre-filled framework draft from a YAML or JSON file
// for non-interactive exports.
package answers

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/wire"
)

// Load parses path. JSON is accepted since it is valid YAML.
func Load(path string) (domain.FrameworkDraft, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.FrameworkDraft{}, &domain.OpError{Op: "answers.read", Kind: kind, Path: path, Err: err}
	}

	d, err := Decode(b)
	if err != nil {
		return domain.FrameworkDraft{}, &domain.OpError{Op: "answers.parse", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return d, nil
}

// Decode rejects keys that are not draft fields so typos surface early.
func Decode(b []byte) (domain.FrameworkDraft, error) {
	var dto wire.Draft
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return domain.FrameworkDraft{}, err
	}
	return dto.ToDraft(), nil
}
