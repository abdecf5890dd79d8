// Package ebitenhost runs a field in an Ebitengine window.
package ebitenhost

import (
	"bytes"
	"fmt"
	"math"

	"github.com/agiangrant/pinfield/draw"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSource loads the Go Regular font bundled with x/image.
func DefaultFontSource() (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return source, nil
}

// Surface replays display lists onto an ebiten image.
type Surface struct {
	Screen *ebiten.Image
	// Offset is added to every coordinate, to place the field in the window.
	OffsetX, OffsetY float32

	source *text.GoTextFaceSource
	faces  map[float32]*text.GoTextFace
}

var _ draw.Surface = (*Surface)(nil)

func NewSurface(source *text.GoTextFaceSource) *Surface {
	return &Surface{
		source: source,
		faces:  make(map[float32]*text.GoTextFace),
	}
}

// DrawRoundRect fills a rectangle with rounded corners. The corner bands are
// filled one row at a time so translucent colors never blend twice.
func (s *Surface) DrawRoundRect(x, y, width, height, radius float32, c uint32) {
	x += s.OffsetX
	y += s.OffsetY
	clr := draw.NRGBA(c)

	r := min(radius, width/2, height/2)
	if r <= 0 {
		vector.DrawFilledRect(s.Screen, x, y, width, height, clr, true)
		return
	}

	insets := cornerInsets(r)
	step := r / float32(len(insets))
	for i, inset := range insets {
		top := y + float32(i)*step
		bottom := y + height - float32(i+1)*step
		vector.DrawFilledRect(s.Screen, x+inset, top, width-2*inset, step, clr, true)
		vector.DrawFilledRect(s.Screen, x+inset, bottom, width-2*inset, step, clr, true)
	}
	vector.DrawFilledRect(s.Screen, x, y+r, width, height-2*r, clr, true)
}

// cornerInsets returns, for each row of a corner of radius r (outermost row
// first), how far the rounded edge sits inside the rectangle's side.
func cornerInsets(r float32) []float32 {
	rows := int(math.Ceil(float64(r)))
	if rows <= 0 {
		return nil
	}
	step := float64(r) / float64(rows)
	insets := make([]float32, rows)
	for i := range insets {
		dy := float64(r) - (float64(i)+0.5)*step
		insets[i] = r - float32(math.Sqrt(float64(r)*float64(r)-dy*dy))
	}
	return insets
}

func (s *Surface) DrawLine(x0, y0, x1, y1, strokeWidth float32, c uint32) {
	vector.StrokeLine(s.Screen,
		x0+s.OffsetX, y0+s.OffsetY,
		x1+s.OffsetX, y1+s.OffsetY,
		strokeWidth, draw.NRGBA(c), true)
}

// DrawText draws str with its baseline at the given y.
func (s *Surface) DrawText(str string, x, baseline, size float32, c uint32, align draw.TextAlign) {
	if str == "" || size <= 0 {
		return
	}
	face := s.face(size)

	op := &text.DrawOptions{}
	op.PrimaryAlign = primaryAlign(align)
	top := float64(baseline+s.OffsetY) - face.Metrics().HAscent
	op.GeoM.Translate(float64(x+s.OffsetX), top)
	op.ColorScale.ScaleWithColor(draw.NRGBA(c))
	text.Draw(s.Screen, str, face, op)
}

func (s *Surface) face(size float32) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    s.source,
		Size:      float64(size),
		Direction: text.DirectionLeftToRight,
	}
	s.faces[size] = f
	return f
}

func primaryAlign(align draw.TextAlign) text.Align {
	switch align {
	case draw.TextAlignCenter:
		return text.AlignCenter
	case draw.TextAlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
