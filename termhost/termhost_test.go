package termhost

import (
	"strings"
	"testing"

	"github.com/agiangrant/pinfield"
	"github.com/agiangrant/pinfield/draw"
	tea "github.com/charmbracelet/bubbletea"
)

func newField(t *testing.T, mutate func(*pinfield.Config)) *pinfield.Field {
	t.Helper()
	cfg := pinfield.DefaultConfig(1)
	if mutate != nil {
		mutate(&cfg)
	}
	f, err := pinfield.NewField(cfg)
	if err != nil {
		t.Fatalf("NewField() error = %v", err)
	}
	return f
}

func TestGridRasterizesField(t *testing.T) {
	f := newField(t, func(c *pinfield.Config) {
		c.RectEnabled = false
		c.UnderlineEnabled = true
	})
	f.OnTextChanged("12")
	f.SetFocused(true)

	g := NewGrid(5, 10)
	g.Resize(f.IntrinsicSize())
	f.Draw(g)

	if cols, rows := g.Size(); cols != 47 || rows != 4 {
		t.Fatalf("Size() = %dx%d, want 47x4", cols, rows)
	}

	// glyphs sit on the baseline row, centered in their slots
	if got := g.Cell(3, 2).Text; got != "1" {
		t.Errorf("cell (3, 2) = %q, want 1", got)
	}
	if got := g.Cell(11, 2).Text; got != "2" {
		t.Errorf("cell (11, 2) = %q, want 2", got)
	}

	// underlines on the bottom row, gaps left blank
	cfg := f.Config()
	if cell := g.Cell(0, 3); cell.Text != lowerBar || cell.FG != cfg.UnderlineColor {
		t.Errorf("cell (0, 3) = %+v, want underline", cell)
	}
	if cell := g.Cell(7, 3); cell.Text != "" {
		t.Errorf("gap cell (7, 3) = %+v, want blank", cell)
	}

	// the caret overdraws the third slot's underline
	if cell := g.Cell(18, 3); cell.FG != cfg.CaretColor {
		t.Errorf("cell (18, 3) fg = %#x, want caret %#x", cell.FG, cfg.CaretColor)
	}
	if cell := g.Cell(16, 3); cell.FG != cfg.UnderlineColor {
		t.Errorf("cell (16, 3) fg = %#x, want underline %#x", cell.FG, cfg.UnderlineColor)
	}

	lines := strings.Split(g.String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("String() has %d lines, want 4", len(lines))
	}
	if strings.TrimSpace(lines[2]) != "1       2" {
		t.Errorf("text row = %q", lines[2])
	}
}

func TestGridRectBlends(t *testing.T) {
	g := NewGrid(5, 10)
	g.Resize(20, 20)

	g.DrawRoundRect(0, 0, 20, 20, 0, draw.HexColor(0x000000))
	g.DrawRoundRect(0, 0, 10, 10, 4, draw.RGBA(0xff, 0xff, 0xff, 0x80))

	if got := g.Cell(0, 0).BG; got != draw.HexColor(0x808080) {
		t.Errorf("blended bg = %#x, want #808080", got)
	}
	if got := g.Cell(3, 1).BG; got != draw.HexColor(0x000000) {
		t.Errorf("untouched bg = %#x, want black", got)
	}

	g.DrawRoundRect(0, 0, 20, 20, 0, draw.RGBA(0xff, 0, 0, 0))
	if got := g.Cell(3, 1).BG; got != draw.HexColor(0x000000) {
		t.Errorf("transparent rect changed bg to %#x", got)
	}
}

func TestGridWideGlyph(t *testing.T) {
	g := NewGrid(5, 10)
	g.Resize(30, 10)
	g.DrawText("界", 15, 10, 15, draw.HexColor(0), draw.TextAlignCenter)

	if g.Cell(2, 0).Text != "界" || !g.Cell(3, 0).cont {
		t.Errorf("cells = %+v %+v, want glyph plus continuation", g.Cell(2, 0), g.Cell(3, 0))
	}
	if got := g.String(); got != "  界  " {
		t.Errorf("String() = %q", got)
	}
}

func TestGridBeamCaret(t *testing.T) {
	g := NewGrid(5, 10)
	g.Resize(35, 40)
	g.DrawLine(17.5, 15, 17.5, 37, 1, draw.HexColor(0xffffff))

	for row := 0; row < 4; row++ {
		want := row >= 1
		if got := g.Cell(3, row).Text == verticalBar; got != want {
			t.Errorf("row %d has bar = %v, want %v", row, got, want)
		}
	}
}

type sendRecorder struct {
	msgs []tea.Msg
}

func (s *sendRecorder) Send(msg tea.Msg) { s.msgs = append(s.msgs, msg) }

func TestModelKeys(t *testing.T) {
	f := newField(t, nil)
	m := NewModel(f, DefaultOptions())
	f.SetRedrawRequester(m)
	f.SetFocused(true)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1234567")})
	if f.Text() != "123456" {
		t.Errorf("Text() = %q, want 123456", f.Text())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if f.Text() != "12345" {
		t.Errorf("after backspace Text() = %q, want 12345", f.Text())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	if f.Focused() || f.Text() != "12345" {
		t.Errorf("unfocused field accepted input: %q", f.Text())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if f.Text() != "" {
		t.Errorf("after ctrl+u Text() = %q, want empty", f.Text())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.Submitted() {
		t.Error("enter should submit and quit")
	}
}

func TestModelRunsPostedClosures(t *testing.T) {
	rec := &sendRecorder{}
	ran := false
	Dispatcher{Program: rec}.Post(func() { ran = true })

	if len(rec.msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(rec.msgs))
	}

	m := NewModel(newField(t, nil), DefaultOptions())
	m.Update(rec.msgs[0])
	if !ran {
		t.Error("posted closure did not run in Update")
	}
}

func TestModelViewCachesUntilRedraw(t *testing.T) {
	f := newField(t, nil)
	m := NewModel(f, Options{CellWidth: 5, CellHeight: 10})
	f.SetRedrawRequester(m)

	first := m.View()
	if m.dirty {
		t.Error("View() left the model dirty")
	}
	f.OnTextChanged("7")
	if !m.dirty {
		t.Error("text change did not request a redraw")
	}
	if second := m.View(); second == first || !strings.Contains(second, "7") {
		t.Errorf("View() after change = %q", second)
	}
}
