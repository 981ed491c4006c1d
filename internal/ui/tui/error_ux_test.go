package tui

import (
	"errors"
	"testing"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"workspace", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{"answers", &domain.OpError{Op: "answers.read", Kind: domain.KindNotFound}, "Answers file not found"},
		{"yaml line", &domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/w/thesis.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at thesis.yaml line 3"},
		{"delivery", &domain.OpError{Op: "gatewayclient.submit", Kind: domain.KindDelivery}, "Gateway unavailable"},
		{"bounds", &domain.OpError{Op: "wizard.update_list_item", Kind: domain.KindOutOfBounds}, "Invalid field (see logs)"},
		{"write", &domain.OpError{Op: "mdstore.write", Kind: domain.KindExecution}, "Could not write the document (see logs)"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Fatalf("userMessage() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestOutcomeMessage(t *testing.T) {
	if got := outcomeMessage(usecase.ExportOutcome{Delivered: true, FrameworkID: "id1"}); got != "Saved to gateway as id1" {
		t.Fatalf("got %q", got)
	}
	if got := outcomeMessage(usecase.ExportOutcome{LocalPath: "exports/a.md"}); got != "Exported to exports/a.md" {
		t.Fatalf("got %q", got)
	}
}
