package pinfield

import "github.com/agiangrant/pinfield/draw"

// Frame is everything the renderer reads for one pass.
type Frame struct {
	Slots      []Slot
	Input      *InputState
	Focused    bool
	CaretPhase bool
}

// Renderer turns a Frame into a display list. It keeps its command buffer
// between frames; the slice returned by Render is only valid until the next call.
type Renderer struct {
	cmds []draw.Command
}

// Render builds one frame. Per slot the order is background, underline,
// glyph; the caret is appended last, for at most one slot.
func (r *Renderer) Render(cfg *Config, f Frame) []draw.Command {
	r.cmds = r.cmds[:0]

	if cfg.BackgroundEnabled && draw.Alpha(cfg.BackgroundColor) != 0 && len(f.Slots) > 0 {
		last := f.Slots[len(f.Slots)-1]
		r.cmds = append(r.cmds, draw.Rect(0, 0, last.ToX, cfg.PaddingTop+cfg.Height, cfg.BackgroundColor))
	}

	length := 0
	if f.Input != nil {
		length = f.Input.Len()
	}

	for i, slot := range f.Slots {
		if cfg.RectEnabled {
			r.cmds = append(r.cmds, draw.RoundedRect(
				slot.FromX, cfg.PaddingTop,
				slot.Width(), cfg.Height,
				cfg.RectColor, cfg.CornerRadius,
			))
		}
		if cfg.UnderlineEnabled {
			r.cmds = append(r.cmds, draw.Line(
				slot.FromX, slot.FromY, slot.ToX, slot.ToY,
				cfg.UnderlineStrokeWidth, cfg.UnderlineColor,
			))
		}
		if i < length {
			if ch, ok := f.Input.Char(i); ok {
				r.cmds = append(r.cmds, draw.CenteredText(
					ch, slot.CenterX(), cfg.Height-cfg.TextBottomMargin,
					cfg.TextSize, cfg.TextColor,
				))
			}
		}
	}

	if ShouldDrawCaret(cfg.CaretEnabled, f.CaretPhase, f.Focused, length, len(f.Slots)) {
		r.cmds = append(r.cmds, caretCommand(cfg, f.Slots[length]))
	}

	return r.cmds
}

// ShouldDrawCaret is the caret predicate: the caret sits on the first empty
// slot and only shows while focused, enabled and in the drawing phase.
// An index past the last slot never draws.
func ShouldDrawCaret(enabled, caretPhase, focused bool, length, slotCount int) bool {
	return enabled && caretPhase && focused && length >= 0 && length < slotCount
}

func caretCommand(cfg *Config, slot Slot) draw.Command {
	bottom := slot.FromY - cfg.CaretMarginBottom

	if cfg.CaretShape == CaretBeam {
		top := cfg.Height - cfg.TextBottomMargin - cfg.TextSize
		if top < cfg.PaddingTop {
			top = cfg.PaddingTop
		}
		x := slot.CenterX()
		return draw.Line(x, top, x, bottom, cfg.CaretStrokeWidth, cfg.CaretColor)
	}

	return draw.Line(
		slot.FromX+cfg.CaretMarginX, bottom,
		slot.ToX-cfg.CaretMarginX, bottom,
		cfg.CaretStrokeWidth, cfg.CaretColor,
	)
}
