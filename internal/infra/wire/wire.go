// Package wire holds the JSON/YAML shapes exchanged with the persistence
// gateway and written to disk, plus their domain mappers.
package wire

import (
	"time"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

// Draft is the camelCase form of a framework draft, used for request bodies
// and answers files.
type Draft struct {
	ResearchArea     string   `json:"researchArea" yaml:"researchArea"`
	TentativeTitle   string   `json:"tentativeTitle" yaml:"tentativeTitle"`
	ProblemStatement string   `json:"problemStatement" yaml:"problemStatement"`
	Objectives       []string `json:"objectives" yaml:"objectives"`
	KeyQuestions     []string `json:"keyQuestions" yaml:"keyQuestions"`
	Methodology      string   `json:"methodology" yaml:"methodology"`
	Timeframe        string   `json:"timeframe" yaml:"timeframe"`
	Resources        string   `json:"resources" yaml:"resources"`
}

// SaveRequest is the body of POST /api/save-framework: the draft fields
// flattened next to the rendered document.
type SaveRequest struct {
	Draft    `yaml:",inline"`
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
}

// SaveResponse is the gateway's reply to a save. Success is a pointer so an
// absent field can be told apart from an explicit false.
type SaveResponse struct {
	Success     *bool  `json:"success,omitempty"`
	FrameworkID string `json:"framework_id,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

type FrameworkRef struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// FrameworkRecord is a saved framework. On disk Document is omitted and kept
// in the sibling markdown file.
type FrameworkRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Data      Draft     `json:"data"`
	Document  string    `json:"document,omitempty"`
}

func FromDraft(d domain.FrameworkDraft) Draft {
	d = d.Normalize()
	return Draft{
		ResearchArea:     d.ResearchArea,
		TentativeTitle:   d.TentativeTitle,
		ProblemStatement: d.ProblemStatement,
		Objectives:       d.Objectives,
		KeyQuestions:     d.KeyQuestions,
		Methodology:      d.Methodology,
		Timeframe:        d.Timeframe,
		Resources:        d.Resources,
	}
}

// ToDraft maps back to the domain. Missing lists come back with one blank slot.
func (d Draft) ToDraft() domain.FrameworkDraft {
	return domain.FrameworkDraft{
		ResearchArea:     d.ResearchArea,
		TentativeTitle:   d.TentativeTitle,
		ProblemStatement: d.ProblemStatement,
		Objectives:       d.Objectives,
		KeyQuestions:     d.KeyQuestions,
		Methodology:      d.Methodology,
		Timeframe:        d.Timeframe,
		Resources:        d.Resources,
	}.Normalize()
}

func FromRef(r domain.FrameworkRef) FrameworkRef {
	return FrameworkRef{ID: r.ID, Title: r.Title, CreatedAt: r.CreatedAt.UTC()}
}

func (r FrameworkRef) ToRef() domain.FrameworkRef {
	return domain.FrameworkRef{ID: r.ID, Title: r.Title, CreatedAt: r.CreatedAt}
}

func FromSaved(f domain.SavedFramework) FrameworkRecord {
	return FrameworkRecord{
		ID:        f.ID,
		Title:     f.Title,
		CreatedAt: f.CreatedAt.UTC(),
		Data:      FromDraft(f.Draft),
		Document:  f.Document,
	}
}

func (r FrameworkRecord) ToSaved() domain.SavedFramework {
	return domain.SavedFramework{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		Draft:     r.Data.ToDraft(),
		Document:  r.Document,
	}
}
