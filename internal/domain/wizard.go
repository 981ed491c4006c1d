package domain

import "fmt"

// EventKind classifies a wizard notification.
type EventKind string

const (
	EventStepChanged     EventKind = "step_changed"
	EventFieldUpdated    EventKind = "field_updated"
	EventListAppended    EventKind = "list_appended"
	EventListItemUpdated EventKind = "list_item_updated"
)

// Event is delivered to observers after a wizard operation completes.
type Event struct {
	Kind  EventKind
	Step  int
	Field string
	Index int
}

// Observer receives wizard events. Observers run synchronously on the caller's goroutine.
type Observer func(Event)

// Wizard drives the fixed, linear sequence of steps over a FrameworkDraft.
//
// A Wizard is owned by exactly one session and is not safe for concurrent use.
// It holds no presentation state: renderers subscribe and redraw on events.
type Wizard struct {
	steps   []Step
	current int
	draft   FrameworkDraft

	observers map[int]Observer
	nextObsID int
}

type WizardOption func(*Wizard)

// WithDraft seeds the wizard with an existing draft (normalized on the way in).
func WithDraft(d FrameworkDraft) WizardOption {
	return func(w *Wizard) { w.draft = d.Normalize() }
}

// WithSteps replaces the default step sequence. An empty slice is ignored.
func WithSteps(steps []Step) WizardOption {
	return func(w *Wizard) {
		if len(steps) > 0 {
			w.steps = append([]Step(nil), steps...)
		}
	}
}

// NewWizard starts a session at step 0 with an empty draft.
func NewWizard(opts ...WizardOption) *Wizard {
	w := &Wizard{
		steps:     DefaultSteps(),
		draft:     NewDraft(),
		observers: map[int]Observer{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Steps returns the step configuration.
func (w *Wizard) Steps() []Step {
	return append([]Step(nil), w.steps...)
}

func (w *Wizard) CurrentIndex() int { return w.current }

func (w *Wizard) Current() Step { return w.steps[w.current] }

func (w *Wizard) IsFirst() bool { return w.current == 0 }

func (w *Wizard) IsLast() bool { return w.current == len(w.steps)-1 }

// SetStep moves the current pointer to n, clamped into range.
// No step is gated: prior steps may hold empty fields.
func (w *Wizard) SetStep(n int) int {
	if n < 0 {
		n = 0
	}
	if last := len(w.steps) - 1; n > last {
		n = last
	}
	w.current = n
	w.notify(Event{Kind: EventStepChanged, Step: n})
	return n
}

// Jump is the progress-indicator navigation; any step is reachable from any step.
func (w *Wizard) Jump(n int) int {
	return w.SetStep(n)
}

// Next advances one step. It is a no-op at the last step, where export takes its place.
func (w *Wizard) Next() bool {
	if w.IsLast() {
		return false
	}
	w.SetStep(w.current + 1)
	return true
}

// Back returns one step. It is a no-op at step 0.
func (w *Wizard) Back() bool {
	if w.IsFirst() {
		return false
	}
	w.SetStep(w.current - 1)
	return true
}

// UpdateField stores v verbatim under f (last write wins).
func (w *Wizard) UpdateField(f ScalarField, v string) error {
	p, err := w.draft.scalarRef(f)
	if err != nil {
		return err
	}
	*p = v
	w.notify(Event{Kind: EventFieldUpdated, Step: w.current, Field: string(f)})
	return nil
}

// AppendListItem grows the list by one empty element. Lists never shrink.
func (w *Wizard) AppendListItem(f ListField) error {
	p, err := w.draft.listRef(f)
	if err != nil {
		return err
	}
	*p = append(*p, "")
	w.notify(Event{Kind: EventListAppended, Step: w.current, Field: string(f), Index: len(*p) - 1})
	return nil
}

// UpdateListItem replaces element i of the list. The index must already exist;
// an out-of-range index is a wiring bug in the caller.
func (w *Wizard) UpdateListItem(f ListField, i int, v string) error {
	p, err := w.draft.listRef(f)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(*p) {
		return &OpError{
			Op:   "wizard.update_list_item",
			Kind: KindOutOfBounds,
			Err:  fmt.Errorf("%w: %s[%d] (len=%d)", ErrOutOfBounds, f, i, len(*p)),
		}
	}
	(*p)[i] = v
	w.notify(Event{Kind: EventListItemUpdated, Step: w.current, Field: string(f), Index: i})
	return nil
}

// Draft returns a deep copy of the current draft.
func (w *Wizard) Draft() FrameworkDraft {
	return w.draft.Clone()
}

// Export renders the current draft. It never mutates the draft.
func (w *Wizard) Export() string {
	return ExportDocument(w.draft)
}

// Subscribe registers o and returns a function that removes it.
func (w *Wizard) Subscribe(o Observer) (cancel func()) {
	if o == nil {
		return func() {}
	}
	id := w.nextObsID
	w.nextObsID++
	w.observers[id] = o
	return func() { delete(w.observers, id) }
}

func (w *Wizard) notify(ev Event) {
	for id := 0; id < w.nextObsID; id++ {
		if o, ok := w.observers[id]; ok {
			o(ev)
		}
	}
}
