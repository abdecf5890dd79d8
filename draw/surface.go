package draw

import "encoding/json"

// Surface is the set of primitives a host provides for drawing.
type Surface interface {
	DrawRoundRect(x, y, width, height, radius float32, color uint32)
	DrawLine(x0, y0, x1, y1, strokeWidth float32, color uint32)
	DrawText(text string, x, baseline, size float32, color uint32, align TextAlign)
}

// Replay executes a display list against a surface in order.
func Replay(s Surface, cmds []Command) {
	for _, cmd := range cmds {
		switch {
		case cmd.DrawRect != nil:
			r := cmd.DrawRect
			s.DrawRoundRect(r.X, r.Y, r.Width, r.Height, r.Radius, r.Color)
		case cmd.DrawLine != nil:
			l := cmd.DrawLine
			s.DrawLine(l.X0, l.Y0, l.X1, l.Y1, l.StrokeWidth, l.Color)
		case cmd.DrawText != nil:
			t := cmd.DrawText
			s.DrawText(t.Text, t.X, t.Y, t.Size, t.Color, t.Align)
		}
	}
}

// Recorder is a Surface that keeps every call as a Command.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) DrawRoundRect(x, y, width, height, radius float32, color uint32) {
	r.Commands = append(r.Commands, RoundedRect(x, y, width, height, color, radius))
}

func (r *Recorder) DrawLine(x0, y0, x1, y1, strokeWidth float32, color uint32) {
	r.Commands = append(r.Commands, Line(x0, y0, x1, y1, strokeWidth, color))
}

func (r *Recorder) DrawText(text string, x, baseline, size float32, color uint32, align TextAlign) {
	cmd := Text(text, x, baseline, size, color)
	cmd.DrawText.Align = align
	r.Commands = append(r.Commands, cmd)
}

// Reset clears the recorded commands, keeping the allocation.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// ToJSON serializes the recorded display list.
func (r *Recorder) ToJSON() (string, error) {
	data, err := json.MarshalIndent(r.Commands, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
