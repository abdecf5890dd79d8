package pinfield

import (
	"testing"

	"github.com/agiangrant/pinfield/draw"
)

func kinds(cmds []draw.Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Kind()
	}
	return out
}

func countKind(cmds []draw.Command, kind string) int {
	n := 0
	for _, c := range cmds {
		if c.Kind() == kind {
			n++
		}
	}
	return n
}

func renderState(cfg Config, text string, focused, caretPhase bool) []draw.Command {
	in := NewInputState(cfg.SlotCount)
	in.SetText(text)
	var r Renderer
	return r.Render(&cfg, Frame{
		Slots:      ComputeSlots(cfg.SlotCount, cfg.SlotWidth, cfg.SlotGap, cfg.Height),
		Input:      in,
		Focused:    focused,
		CaretPhase: caretPhase,
	})
}

func TestShouldDrawCaret(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		for _, phase := range []bool{false, true} {
			for _, focused := range []bool{false, true} {
				for _, length := range []int{-1, 0, 5, 6, 7} {
					want := enabled && phase && focused && length >= 0 && length < 6
					if got := ShouldDrawCaret(enabled, phase, focused, length, 6); got != want {
						t.Errorf("ShouldDrawCaret(%v, %v, %v, %d, 6) = %v, want %v",
							enabled, phase, focused, length, got, want)
					}
				}
			}
		}
	}
}

func TestRenderSlotOrder(t *testing.T) {
	cfg := DefaultConfig(1)
	cfg.SlotCount = 2
	cfg.UnderlineEnabled = true
	cfg.BackgroundEnabled = true

	got := kinds(renderState(cfg, "1", true, true))
	want := []string{
		"DrawRect",                         // view background
		"DrawRect", "DrawLine", "DrawText", // slot 0
		"DrawRect", "DrawLine", // slot 1
		"DrawLine", // caret
	}

	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRenderAllDecorationsDisabled(t *testing.T) {
	cfg := DefaultConfig(1)
	cfg.RectEnabled = false
	cfg.UnderlineEnabled = false
	cfg.CaretEnabled = false

	cmds := renderState(cfg, "123", true, true)
	if len(cmds) != 3 || countKind(cmds, "DrawText") != 3 {
		t.Errorf("kinds = %v, want three DrawText", kinds(cmds))
	}
}

func TestRenderGlyphPlacement(t *testing.T) {
	cfg := DefaultConfig(1)
	cfg.RectEnabled = false

	cmds := renderState(cfg, "12", false, true)
	slots := ComputeSlots(cfg.SlotCount, cfg.SlotWidth, cfg.SlotGap, cfg.Height)

	for i, cmd := range cmds {
		txt := cmd.DrawText
		if txt == nil {
			t.Fatalf("command %d is %s, want DrawText", i, cmd.Kind())
		}
		if txt.X != slots[i].CenterX() {
			t.Errorf("glyph %d X = %v, want %v", i, txt.X, slots[i].CenterX())
		}
		if want := cfg.Height - cfg.TextBottomMargin; txt.Y != want {
			t.Errorf("glyph %d baseline = %v, want %v", i, txt.Y, want)
		}
		if txt.Align != draw.TextAlignCenter {
			t.Errorf("glyph %d align = %s, want Center", i, txt.Align)
		}
	}
	if cmds[1].DrawText.Text != "2" {
		t.Errorf("second glyph = %q, want 2", cmds[1].DrawText.Text)
	}
}

func TestRenderRectSpan(t *testing.T) {
	cfg := DefaultConfig(2)
	cfg.PaddingTop = 3

	cmds := renderState(cfg, "", false, true)
	r := cmds[1].DrawRect
	if r == nil {
		t.Fatalf("command 1 is %s, want DrawRect", cmds[1].Kind())
	}
	if r.X != 80 || r.Width != 70 {
		t.Errorf("rect x/width = %v/%v, want 80/70", r.X, r.Width)
	}
	if r.Y != 3 || r.Height != 80 {
		t.Errorf("rect y/height = %v/%v, want 3/80", r.Y, r.Height)
	}
	if r.Radius != 8 || r.Color != cfg.RectColor {
		t.Errorf("rect radius/color = %v/%#x", r.Radius, r.Color)
	}
}

func TestRenderCaretShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape CaretShape
		want  draw.DrawLineCmd
	}{
		{
			name:  "underscore",
			shape: CaretUnderscore,
			// slot 1 spans 40..75, inset 5, lifted 3 above 40
			want: draw.DrawLineCmd{X0: 45, Y0: 37, X1: 70, Y1: 37, StrokeWidth: 1},
		},
		{
			name:  "beam",
			shape: CaretBeam,
			// centered at 57.5, from text top 40-10-15 down to 37
			want: draw.DrawLineCmd{X0: 57.5, Y0: 15, X1: 57.5, Y1: 37, StrokeWidth: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(1)
			cfg.RectEnabled = false
			cfg.CaretShape = tt.shape

			cmds := renderState(cfg, "1", true, true)
			last := cmds[len(cmds)-1].DrawLine
			if last == nil {
				t.Fatalf("last command is %s, want DrawLine", cmds[len(cmds)-1].Kind())
			}
			tt.want.Color = cfg.CaretColor
			if *last != tt.want {
				t.Errorf("caret = %+v, want %+v", *last, tt.want)
			}
		})
	}
}

func TestRenderCaretGuardsShortSlotArray(t *testing.T) {
	cfg := DefaultConfig(1)
	in := NewInputState(6)
	in.SetText("1234")

	// Four glyphs but only four slots: the caret index is out of range.
	var r Renderer
	cmds := r.Render(&cfg, Frame{
		Slots:      ComputeSlots(4, cfg.SlotWidth, cfg.SlotGap, cfg.Height),
		Input:      in,
		Focused:    true,
		CaretPhase: true,
	})
	if countKind(cmds, "DrawLine") != 0 {
		t.Errorf("caret drawn past the last slot: %v", kinds(cmds))
	}
}
