package termhost

import (
	"fmt"
	"log"

	"github.com/agiangrant/pinfield"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Sender matches *tea.Program's Send method.
type Sender interface {
	Send(msg tea.Msg)
}

// postMsg carries a closure posted from a timer goroutine.
type postMsg func()

// Dispatcher delivers posted closures to the Bubble Tea event loop, which
// runs them in Update.
type Dispatcher struct {
	Program Sender
}

func (d Dispatcher) Post(fn func()) {
	d.Program.Send(postMsg(fn))
}

// Options configures the terminal host.
type Options struct {
	CellWidth  float32
	CellHeight float32
	Hint       string
}

func DefaultOptions() Options {
	return Options{
		CellWidth:  5,
		CellHeight: 10,
		Hint:       "type to fill · backspace deletes · ctrl+u clears · tab toggles focus · enter submits · esc quits",
	}
}

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Model is the Bubble Tea model around one field. It is the field's redraw
// requester and caches the rendered grid between requests.
type Model struct {
	field *pinfield.Field
	grid  *Grid
	opts  Options

	view      string
	dirty     bool
	submitted bool
}

var _ pinfield.RedrawRequester = (*Model)(nil)

func NewModel(field *pinfield.Field, opts Options) *Model {
	return &Model{
		field: field,
		grid:  NewGrid(opts.CellWidth, opts.CellHeight),
		opts:  opts,
		dirty: true,
	}
}

func (m *Model) RequestRedraw() {
	m.dirty = true
}

// Submitted reports whether the user left with enter.
func (m *Model) Submitted() bool {
	return m.submitted
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postMsg:
		msg()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyBackspace:
			m.field.DeleteBackward()
		case tea.KeyCtrlU:
			m.field.Clear()
		case tea.KeyTab:
			m.field.SetFocused(!m.field.Focused())
		case tea.KeyRunes:
			if m.field.Focused() {
				m.field.TypeText(string(msg.Runes))
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.dirty {
		w, h := m.field.IntrinsicSize()
		m.grid.Resize(w, h+m.field.Config().PaddingTop)
		m.field.Draw(m.grid)
		m.view = m.grid.Render()
		m.dirty = false
	}
	if m.opts.Hint == "" {
		return m.view + "\n"
	}
	return m.view + "\n\n" + hintStyle.Render(m.opts.Hint) + "\n"
}

// Run shows the field until the user quits. It returns the text and whether
// it was submitted with enter.
func Run(field *pinfield.Field, opts Options) (string, bool, error) {
	m := NewModel(field, opts)
	p := tea.NewProgram(m)

	field.SetScheduler(pinfield.TimerScheduler{Dispatch: Dispatcher{Program: p}}).SetRedrawRequester(m)
	if err := field.Attach(); err != nil {
		return "", false, fmt.Errorf("termhost: %w", err)
	}
	defer field.Detach()
	field.SetFocused(true)

	log.Printf("[termhost] running with %d slots", field.Config().SlotCount)
	if _, err := p.Run(); err != nil {
		return "", false, fmt.Errorf("bubble tea: %w", err)
	}
	return field.Text(), m.Submitted(), nil
}
