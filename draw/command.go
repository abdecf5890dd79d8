// Package draw is the display list a field emits each frame and the surface
// interface hosts implement to execute it.
package draw

// ============================================================================
// Render Commands
// ============================================================================

// Command represents a single rendering operation. Exactly one field is set.
type Command struct {
	DrawRect *DrawRectCmd `json:"DrawRect,omitempty"`
	DrawLine *DrawLineCmd `json:"DrawLine,omitempty"`
	DrawText *DrawTextCmd `json:"DrawText,omitempty"`
}

type DrawRectCmd struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	Color  uint32  `json:"color"`
	Radius float32 `json:"radius"`
}

type DrawLineCmd struct {
	X0          float32 `json:"x0"`
	Y0          float32 `json:"y0"`
	X1          float32 `json:"x1"`
	Y1          float32 `json:"y1"`
	StrokeWidth float32 `json:"stroke_width"`
	Color       uint32  `json:"color"`
}

// DrawTextCmd draws Text with its baseline at Y. X is interpreted according
// to Align: the left edge, the horizontal center or the right edge.
type DrawTextCmd struct {
	X     float32   `json:"x"`
	Y     float32   `json:"y"`
	Text  string    `json:"text"`
	Size  float32   `json:"size"`
	Color uint32    `json:"color"`
	Align TextAlign `json:"align"`
}

type TextAlign string

const (
	TextAlignLeft   TextAlign = "Left"
	TextAlignCenter TextAlign = "Center"
	TextAlignRight  TextAlign = "Right"
)

// Kind names the populated field, mostly for logs and test failures.
func (c Command) Kind() string {
	switch {
	case c.DrawRect != nil:
		return "DrawRect"
	case c.DrawLine != nil:
		return "DrawLine"
	case c.DrawText != nil:
		return "DrawText"
	default:
		return "Empty"
	}
}

// ============================================================================
// Command Builders
// ============================================================================

func Rect(x, y, width, height float32, color uint32) Command {
	return Command{
		DrawRect: &DrawRectCmd{X: x, Y: y, Width: width, Height: height, Color: color},
	}
}

func RoundedRect(x, y, width, height float32, color uint32, radius float32) Command {
	return Command{
		DrawRect: &DrawRectCmd{
			X: x, Y: y, Width: width, Height: height,
			Color:  color,
			Radius: radius,
		},
	}
}

func Line(x0, y0, x1, y1, strokeWidth float32, color uint32) Command {
	return Command{
		DrawLine: &DrawLineCmd{
			X0: x0, Y0: y0, X1: x1, Y1: y1,
			StrokeWidth: strokeWidth,
			Color:       color,
		},
	}
}

func Text(text string, x, y, size float32, color uint32) Command {
	return Command{
		DrawText: &DrawTextCmd{
			X: x, Y: y, Text: text, Size: size, Color: color,
			Align: TextAlignLeft,
		},
	}
}

// CenteredText draws text horizontally centered on x.
func CenteredText(text string, x, y, size float32, color uint32) Command {
	cmd := Text(text, x, y, size, color)
	cmd.DrawText.Align = TextAlignCenter
	return cmd
}
