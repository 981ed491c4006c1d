package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

// field is one editable line on the current step. index is the list element
// position, or -1 for scalar inputs.
type field struct {
	input domain.Input
	index int
	ti    textinput.Model
}

// wizardSync collects wizard notifications between Update calls. It is a
// pointer so every copy of the model sees the same observer state.
type wizardSync struct {
	dirty       bool
	stepChanged bool
	appended    domain.ListField
}

type model struct {
	theme Theme
	deps  Deps

	wiz  *domain.Wizard
	sync *wizardSync

	fields  []field
	focus   int
	preview viewport.Model

	width, height int

	exporting bool
	toast     string
	toastErr  bool

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	var opts []domain.WizardOption
	if deps.Draft != nil {
		opts = append(opts, domain.WithDraft(*deps.Draft))
	}

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		wiz:     domain.NewWizard(opts...),
		sync:    &wizardSync{},
		preview: viewport.New(80, 20),
		width:   80,
		height:  24,
	}

	s := m.sync
	m.wiz.Subscribe(func(ev domain.Event) {
		s.dirty = true
		switch ev.Kind {
		case domain.EventStepChanged:
			s.stepChanged = true
		case domain.EventListAppended:
			s.appended = domain.ListField(ev.Field)
		}
	})

	m.rebuild()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdRefreshWorkspace(m.deps))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refreshPreview()
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.toastErr = true
			if m.deps.Logger != nil {
				m.deps.Logger.Error("tui.export_failed", "err", msg.err)
			}
			return m, nil
		}
		m.toast = outcomeMessage(msg.outcome)
		m.toastErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "ctrl+q":
		m.commit()
		return m, tea.Quit

	case "tab", "down":
		if m.onSummary() && key == "down" {
			break
		}
		m.commit()
		return m, m.moveFocus(1)

	case "shift+tab", "up":
		if m.onSummary() && key == "up" {
			break
		}
		m.commit()
		return m, m.moveFocus(-1)

	case "ctrl+right", "pgdown":
		m.commit()
		m.wiz.Next()
		return m, m.sync.apply(&m)

	case "ctrl+left", "pgup":
		m.commit()
		m.wiz.Back()
		return m, m.sync.apply(&m)

	case "ctrl+n":
		f, ok := m.focused()
		if !ok || f.input.Kind != domain.InputList {
			return m, nil
		}
		m.commit()
		if err := m.wiz.AppendListItem(f.input.List); err != nil {
			m.setError(err)
			return m, nil
		}
		return m, m.sync.apply(&m)

	case "enter":
		if m.onSummary() {
			return m.startExport()
		}
		m.commit()
		if m.focus == len(m.fields)-1 {
			m.wiz.Next()
			return m, m.sync.apply(&m)
		}
		return m, m.moveFocus(1)
	}

	if n, ok := jumpTarget(key); ok {
		m.commit()
		m.wiz.Jump(n)
		return m, m.sync.apply(&m)
	}

	if m.toast != "" && !m.exporting {
		m.toast = ""
		m.toastErr = false
	}
	return m.updateFocused(msg)
}

// jumpTarget maps alt+1..9 and f1..f9 to a zero-based step index.
func jumpTarget(key string) (int, bool) {
	for _, prefix := range []string{"alt+", "f"} {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			n, err := strconv.Atoi(rest)
			if err == nil && n >= 1 && n <= 9 {
				return n - 1, true
			}
		}
	}
	return 0, false
}

func (m model) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	m.commit()
	m.exporting = true
	m.toast = "Exporting…"
	m.toastErr = false
	return m, cmdExport(m.deps.Exporter, m.wiz.Draft())
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.onSummary() {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	if m.focus < 0 || m.focus >= len(m.fields) {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].ti, cmd = m.fields[m.focus].ti.Update(msg)
	return m, cmd
}

func (m *model) onSummary() bool {
	return len(m.wiz.Current().Inputs) == 0
}

func (m *model) focused() (field, bool) {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return field{}, false
	}
	return m.fields[m.focus], true
}

// commit writes the focused input back to the wizard when it changed.
func (m *model) commit() {
	f, ok := m.focused()
	if !ok {
		return
	}
	v := f.ti.Value()
	d := m.wiz.Draft()

	var err error
	switch f.input.Kind {
	case domain.InputScalar:
		cur, _ := d.Scalar(f.input.Scalar)
		if cur == v {
			return
		}
		err = m.wiz.UpdateField(f.input.Scalar, v)
	case domain.InputList:
		items, _ := d.List(f.input.List)
		if f.index < len(items) && items[f.index] == v {
			return
		}
		err = m.wiz.UpdateListItem(f.input.List, f.index, v)
	}
	if err != nil {
		m.setError(err)
		return
	}
	// A plain edit keeps the current inputs; only step and list shape changes rebuild.
	if !m.sync.stepChanged && m.sync.appended == "" {
		m.sync.dirty = false
	}
}

func (m *model) setError(err error) {
	m.toast = userMessage(err)
	m.toastErr = true
	if m.deps.Logger != nil {
		m.deps.Logger.Error("tui.wizard_error", "err", err)
	}
}

func (m *model) moveFocus(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	next := m.focus + delta
	if next < 0 || next >= len(m.fields) {
		return nil
	}
	return m.setFocus(next)
}

func (m *model) setFocus(i int) tea.Cmd {
	for j := range m.fields {
		m.fields[j].ti.Blur()
	}
	m.focus = i
	if i < 0 || i >= len(m.fields) {
		return nil
	}
	return m.fields[i].ti.Focus()
}

// apply consumes pending wizard notifications and rebuilds the inputs.
func (s *wizardSync) apply(m *model) tea.Cmd {
	if !s.dirty {
		return nil
	}
	stepChanged, appended := s.stepChanged, s.appended
	*s = wizardSync{}

	focus := m.focus
	m.rebuild()

	switch {
	case stepChanged:
		focus = 0
	case appended != "":
		for i, f := range m.fields {
			if f.input.Kind == domain.InputList && f.input.List == appended {
				focus = i
			}
		}
	}
	if focus >= len(m.fields) {
		focus = len(m.fields) - 1
	}
	return m.setFocus(focus)
}

// rebuild recreates the inputs of the current step from the draft.
func (m *model) rebuild() {
	step := m.wiz.Current()
	d := m.wiz.Draft()

	m.fields = m.fields[:0:0]
	for _, in := range step.Inputs {
		switch in.Kind {
		case domain.InputScalar:
			v, _ := d.Scalar(in.Scalar)
			m.fields = append(m.fields, field{input: in, index: -1, ti: m.newInput(in.Placeholder, v)})
		case domain.InputList:
			items, _ := d.List(in.List)
			for i, v := range items {
				ph := fmt.Sprintf("%s %d", in.Placeholder, i+1)
				m.fields = append(m.fields, field{input: in, index: i, ti: m.newInput(ph, v)})
			}
		}
	}

	m.focus = 0
	if len(m.fields) > 0 {
		m.fields[0].ti.Focus()
	}
	m.refreshPreview()
}

func (m *model) newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Width = m.inputWidth()
	return ti
}

func (m *model) inputWidth() int {
	w := m.width - 16
	if w < 20 {
		w = 20
	}
	return w
}

func (m *model) resize() {
	for i := range m.fields {
		m.fields[i].ti.Width = m.inputWidth()
	}
	m.preview.Width = m.width - 8
	h := m.height - 12
	if h < 5 {
		h = 5
	}
	m.preview.Height = h
}

func (m *model) refreshPreview() {
	if !m.onSummary() {
		return
	}
	m.preview.SetContent(renderMarkdown(m.theme.GlamourStyle, m.wiz.Export(), m.width-10))
	m.preview.GotoTop()
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	step := m.wiz.Current()

	header := m.theme.Title.Render("Thesis Framework Wizard") + "\n"
	if m.workspaceFound {
		header += m.theme.Subtitle.Render("Workspace: "+m.workspaceRoot) + "\n"
	} else {
		header += m.theme.Subtitle.Render("No workspace found, exports go to ./exports (run `thesis init`)") + "\n"
	}
	header += "\n" + renderProgress(m.theme, m.wiz.Steps(), m.wiz.CurrentIndex()) + "\n"

	var body strings.Builder
	body.WriteString(m.theme.Title.Render(step.Title))
	body.WriteString("\n\n")

	if m.onSummary() {
		body.WriteString(m.preview.View())
	} else {
		body.WriteString(m.renderInputs())
	}

	var footer string
	switch {
	case m.onSummary():
		footer = "↑/↓ scroll • enter export • pgup back • f1-f4 jump • ctrl+c quit"
	default:
		footer = "tab/shift+tab move • ctrl+n add item • pgdown next • pgup back • f1-f4 jump • ctrl+c quit"
	}

	out := header + "\n" + m.theme.Card.Render(body.String()) + "\n" + m.theme.Help.Render(footer)
	if m.toast != "" {
		style := m.theme.Toast
		if m.toastErr {
			style = m.theme.Error
		}
		out += "\n\n" + style.Render(clampString(m.toast, m.width-6))
	}
	return wrap.Render(out)
}

func (m model) renderInputs() string {
	var b strings.Builder
	var lastLabel string
	for i, f := range m.fields {
		if f.input.Label != lastLabel {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.theme.Label.Render(f.input.Label))
			b.WriteString("\n")
			lastLabel = f.input.Label
		}
		if f.index >= 0 {
			b.WriteString(fmt.Sprintf("%d. ", f.index+1))
		}
		b.WriteString(f.ti.View())
		b.WriteString("\n")

		last := i == len(m.fields)-1 || m.fields[i+1].input.Label != f.input.Label
		if last && f.input.Kind == domain.InputList && f.input.AddLabel != "" {
			hint := "ctrl+n " + strings.ToLower(f.input.AddLabel)
			if i == m.focus || (m.focus < len(m.fields) && m.fields[m.focus].input.Label == f.input.Label) {
				b.WriteString(m.theme.Focused.Render(hint))
			} else {
				b.WriteString(m.theme.Help.Render(hint))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
