package pinfield

import (
	"errors"
	"math"
	"time"

	"github.com/agiangrant/pinfield/draw"
)

// DefaultSlotCount is the number of character slots when none is configured.
const DefaultSlotCount = 6

// DefaultBlinkInterval is the caret blink half-period.
const DefaultBlinkInterval = 500 * time.Millisecond

// CaretShape selects how the caret is drawn inside the first empty slot.
type CaretShape int

const (
	// CaretUnderscore draws a horizontal segment just above the slot's bottom edge.
	CaretUnderscore CaretShape = iota
	// CaretBeam draws a vertical segment centered in the slot.
	CaretBeam
)

func (s CaretShape) String() string {
	switch s {
	case CaretBeam:
		return "beam"
	default:
		return "underscore"
	}
}

// Config holds the resolved layout and style of a field. All lengths are in
// device pixels; DefaultConfig resolves dp values against a density once.
type Config struct {
	SlotCount int

	// Geometry
	SlotWidth  float32
	SlotGap    float32
	Height     float32
	PaddingTop float32

	// Text
	TextSize         float32
	TextBottomMargin float32

	// Colors (packed 0xRRGGBBAA)
	UnderlineColor  uint32
	TextColor       uint32
	BackgroundColor uint32
	RectColor       uint32
	CaretColor      uint32

	UnderlineStrokeWidth float32
	CornerRadius         float32

	// Caret
	CaretShape        CaretShape
	CaretStrokeWidth  float32
	CaretMarginX      float32
	CaretMarginBottom float32
	BlinkInterval     time.Duration // zero draws a steady caret

	// Feature flags
	CaretEnabled      bool
	UnderlineEnabled  bool
	RectEnabled       bool
	BackgroundEnabled bool // fill the whole view with BackgroundColor first
}

// DefaultConfig returns the stock look, with dp values multiplied by density.
// A density <= 0 is treated as 1.
func DefaultConfig(density float32) Config {
	if density <= 0 {
		density = 1
	}
	dp := func(v float32) float32 { return v * density }

	return Config{
		SlotCount: DefaultSlotCount,

		SlotWidth: dp(35),
		SlotGap:   dp(5),
		Height:    dp(40),

		TextSize:         dp(15),
		TextBottomMargin: dp(10),

		UnderlineColor:  draw.HexColor(0xcccccc),
		TextColor:       draw.HexColor(0x000000),
		BackgroundColor: draw.HexColor(0xffffff),
		RectColor:       draw.RGBA(0xff, 0xff, 0xff, 0x88),
		CaretColor:      draw.HexColor(0xffffff),

		UnderlineStrokeWidth: dp(2),
		CornerRadius:         dp(4),

		CaretShape:        CaretUnderscore,
		CaretStrokeWidth:  dp(1),
		CaretMarginX:      dp(5),
		CaretMarginBottom: dp(3),
		BlinkInterval:     DefaultBlinkInterval,

		CaretEnabled:     true,
		UnderlineEnabled: false,
		RectEnabled:      true,
	}
}

// Validate reports every invalid value in c.
func (c Config) Validate() error {
	var errs []error
	dim := func(name string, v float32) bool {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			errs = append(errs, &ConfigError{Field: name, Value: v, Err: ErrInvalidDimension})
			return false
		}
		return true
	}
	if c.SlotCount <= 0 {
		errs = append(errs, &ConfigError{Field: "SlotCount", Value: c.SlotCount, Err: ErrInvalidSlotCount})
	}
	if dim("SlotWidth", c.SlotWidth) && c.SlotWidth <= 0 {
		errs = append(errs, &ConfigError{Field: "SlotWidth", Value: c.SlotWidth, Err: ErrInvalidDimension})
	}
	if dim("SlotGap", c.SlotGap) && c.SlotGap < 0 {
		errs = append(errs, &ConfigError{Field: "SlotGap", Value: c.SlotGap, Err: ErrInvalidDimension})
	}
	if dim("Height", c.Height) && c.Height <= 0 {
		errs = append(errs, &ConfigError{Field: "Height", Value: c.Height, Err: ErrInvalidDimension})
	}
	if dim("TextSize", c.TextSize) && c.TextSize < 0 {
		errs = append(errs, &ConfigError{Field: "TextSize", Value: c.TextSize, Err: ErrInvalidDimension})
	}
	dim("PaddingTop", c.PaddingTop)
	dim("TextBottomMargin", c.TextBottomMargin)
	dim("UnderlineStrokeWidth", c.UnderlineStrokeWidth)
	dim("CornerRadius", c.CornerRadius)
	dim("CaretStrokeWidth", c.CaretStrokeWidth)
	dim("CaretMarginX", c.CaretMarginX)
	dim("CaretMarginBottom", c.CaretMarginBottom)
	if c.BlinkInterval < 0 {
		errs = append(errs, &ConfigError{Field: "BlinkInterval", Value: c.BlinkInterval, Err: ErrInvalidBlinkInterval})
	}
	return errors.Join(errs...)
}

// geometryChanged reports whether slots must be regenerated going from c to o.
func (c Config) geometryChanged(o Config) bool {
	return c.SlotCount != o.SlotCount ||
		c.SlotWidth != o.SlotWidth ||
		c.SlotGap != o.SlotGap ||
		c.Height != o.Height
}
