package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderProgress draws "1 Focus › 2 Problem › ..." with the current step highlighted.
func renderProgress(t Theme, steps []domain.Step, current int) string {
	parts := make([]string, 0, len(steps))
	for i, s := range steps {
		label := strconv.Itoa(i+1) + " " + s.Label
		switch {
		case i == current:
			parts = append(parts, t.StepActive.Render("● "+label))
		case i < current:
			parts = append(parts, t.StepDone.Render("✓ "+label))
		default:
			parts = append(parts, t.StepPending.Render("○ "+label))
		}
	}
	return strings.Join(parts, t.StepPending.Render("  ›  "))
}

// renderMarkdown renders the export preview; on failure the raw markdown is shown.
func renderMarkdown(style, md string, width int) string {
	if width < 20 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// outcomeMessage is the toast shown after an export.
func outcomeMessage(o usecase.ExportOutcome) string {
	switch {
	case o.Delivered && o.FrameworkID != "":
		return "Saved to gateway as " + o.FrameworkID
	case o.Delivered:
		return "Saved to gateway"
	case o.FellBack():
		return "Gateway unavailable, saved locally to " + o.LocalPath
	case o.LocalPath != "":
		return "Exported to " + o.LocalPath
	default:
		return "Exported"
	}
}
