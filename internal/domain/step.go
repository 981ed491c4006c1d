package domain

// InputKind tells a presentation layer how to render a step input.
type InputKind string

const (
	InputScalar InputKind = "scalar"
	InputList   InputKind = "list"
)

// Input describes one field rendered on a step. Exactly one of Scalar/List is set,
// matching Kind.
type Input struct {
	Kind        InputKind
	Scalar      ScalarField
	List        ListField
	Label       string
	Placeholder string
	// AddLabel is the caption of the "append another item" action (list inputs only).
	AddLabel string
}

// Step is one stage of the wizard's linear flow. Steps are configuration, not user data.
type Step struct {
	Index  int
	Label  string
	Title  string
	Inputs []Input
}

const (
	StepFocus = iota
	StepProblem
	StepMethodology
	StepSummary
)

// DefaultSteps returns the fixed four-step sequence: Focus, Problem, Methodology, Summary.
func DefaultSteps() []Step {
	return []Step{
		{
			Index: StepFocus,
			Label: "Focus",
			Title: "Research focus",
			Inputs: []Input{
				scalarInput(FieldResearchArea, "Field / Area of Research", "e.g. Computer Science, Public Health"),
				scalarInput(FieldTentativeTitle, "Tentative Title", "A working title for your thesis"),
			},
		},
		{
			Index: StepProblem,
			Label: "Problem",
			Title: "Problem and objectives",
			Inputs: []Input{
				scalarInput(FieldProblemStatement, "Problem Statement", "What gap or problem does the research address?"),
				listInput(ListObjectives, "Research Objectives", "Objective", "Add objective"),
				listInput(ListKeyQuestions, "Key Research Questions", "Question", "Add question"),
			},
		},
		{
			Index: StepMethodology,
			Label: "Methodology",
			Title: "Methodology and resources",
			Inputs: []Input{
				scalarInput(FieldMethodology, "Methodology Approach", "Qualitative, quantitative, mixed methods..."),
				scalarInput(FieldTimeframe, "Timeframe", "e.g. 12 months"),
				scalarInput(FieldResources, "Required Resources", "Datasets, tools, lab access..."),
			},
		},
		{
			Index: StepSummary,
			Label: "Summary",
			Title: "Review and export",
		},
	}
}

func scalarInput(f ScalarField, label, placeholder string) Input {
	return Input{Kind: InputScalar, Scalar: f, Label: label, Placeholder: placeholder}
}

func listInput(f ListField, label, placeholder, add string) Input {
	return Input{Kind: InputList, List: f, Label: label, Placeholder: placeholder, AddLabel: add}
}
