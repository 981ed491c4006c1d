package domain

import "fmt"

// ScalarField names a free-text field of a FrameworkDraft.
type ScalarField string

const (
	FieldResearchArea     ScalarField = "researchArea"
	FieldTentativeTitle   ScalarField = "tentativeTitle"
	FieldProblemStatement ScalarField = "problemStatement"
	FieldMethodology      ScalarField = "methodology"
	FieldTimeframe        ScalarField = "timeframe"
	FieldResources        ScalarField = "resources"
)

// ListField names an ordered, append-only list of a FrameworkDraft.
type ListField string

const (
	ListObjectives   ListField = "objectives"
	ListKeyQuestions ListField = "keyQuestions"
)

// ScalarFields lists every scalar key in document order.
func ScalarFields() []ScalarField {
	return []ScalarField{
		FieldResearchArea,
		FieldTentativeTitle,
		FieldProblemStatement,
		FieldMethodology,
		FieldTimeframe,
		FieldResources,
	}
}

// ListFields lists every list key in document order.
func ListFields() []ListField {
	return []ListField{ListObjectives, ListKeyQuestions}
}

// FrameworkDraft is the per-session record of everything the user entered.
//
// Objectives and KeyQuestions always hold at least one element (possibly an
// empty string). Element positions are display indexes and never move.
type FrameworkDraft struct {
	ResearchArea     string
	TentativeTitle   string
	ProblemStatement string
	Objectives       []string
	KeyQuestions     []string
	Methodology      string
	Timeframe        string
	Resources        string
}

// NewDraft returns an empty draft with one blank slot in each list.
func NewDraft() FrameworkDraft {
	return FrameworkDraft{
		Objectives:   []string{""},
		KeyQuestions: []string{""},
	}
}

// Normalize returns a copy that satisfies the list invariants.
// Drafts decoded from files or HTTP bodies may carry nil lists.
func (d FrameworkDraft) Normalize() FrameworkDraft {
	out := d.Clone()
	if len(out.Objectives) == 0 {
		out.Objectives = []string{""}
	}
	if len(out.KeyQuestions) == 0 {
		out.KeyQuestions = []string{""}
	}
	return out
}

// Clone returns a deep copy (does NOT share list backing arrays).
func (d FrameworkDraft) Clone() FrameworkDraft {
	out := d
	out.Objectives = cloneStrings(d.Objectives)
	out.KeyQuestions = cloneStrings(d.KeyQuestions)
	return out
}

// Scalar reads a scalar field by key.
func (d FrameworkDraft) Scalar(f ScalarField) (string, error) {
	p, err := d.scalarRef(f)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// List returns a copy of the list stored under f.
func (d FrameworkDraft) List(f ListField) ([]string, error) {
	p, err := d.listRef(f)
	if err != nil {
		return nil, err
	}
	return cloneStrings(*p), nil
}

func (d *FrameworkDraft) scalarRef(f ScalarField) (*string, error) {
	switch f {
	case FieldResearchArea:
		return &d.ResearchArea, nil
	case FieldTentativeTitle:
		return &d.TentativeTitle, nil
	case FieldProblemStatement:
		return &d.ProblemStatement, nil
	case FieldMethodology:
		return &d.Methodology, nil
	case FieldTimeframe:
		return &d.Timeframe, nil
	case FieldResources:
		return &d.Resources, nil
	}
	return nil, unknownField("draft.scalar", string(f))
}

func (d *FrameworkDraft) listRef(f ListField) (*[]string, error) {
	switch f {
	case ListObjectives:
		return &d.Objectives, nil
	case ListKeyQuestions:
		return &d.KeyQuestions, nil
	}
	return nil, unknownField("draft.list", string(f))
}

func unknownField(op, key string) error {
	return &OpError{
		Op:   op,
		Kind: KindUnknownField,
		Err:  fmt.Errorf("%w: %q", ErrUnknownField, key),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
