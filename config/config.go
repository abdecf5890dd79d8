// Package config loads field configuration files.
//
// A file is TOML (pinfield.toml) or YAML (pinfield.yaml). Lengths are in dp
// and resolved against the file's density; any key left out keeps the stock
// value from pinfield.DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agiangrant/pinfield"
	"github.com/agiangrant/pinfield/draw"
	"github.com/agiangrant/pinfield/tw"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the file written by 'pinfield init'.
const DefaultFileName = "pinfield.toml"

// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format (want .toml, .yaml or .yml)")

// File mirrors a config file on disk
type File struct {
	Slots   int     `toml:"slots,omitempty" yaml:"slots,omitempty"`
	Density float32 `toml:"density,omitempty" yaml:"density,omitempty"`
	Classes string  `toml:"classes,omitempty" yaml:"classes,omitempty"`
	// Filter restricts accepted characters: "" accepts anything, "digits" only 0-9
	Filter string `toml:"filter,omitempty" yaml:"filter,omitempty"`

	Layout   Layout   `toml:"layout" yaml:"layout"`
	Colors   Colors   `toml:"colors" yaml:"colors"`
	Caret    Caret    `toml:"caret" yaml:"caret"`
	Features Features `toml:"features" yaml:"features"`
	Theme    Theme    `toml:"theme,omitempty" yaml:"theme,omitempty"`
}

// Layout lengths, in dp
type Layout struct {
	SlotWidth        *float32 `toml:"slot_width,omitempty" yaml:"slot_width,omitempty"`
	SlotGap          *float32 `toml:"slot_gap,omitempty" yaml:"slot_gap,omitempty"`
	Height           *float32 `toml:"height,omitempty" yaml:"height,omitempty"`
	PaddingTop       *float32 `toml:"padding_top,omitempty" yaml:"padding_top,omitempty"`
	TextSize         *float32 `toml:"text_size,omitempty" yaml:"text_size,omitempty"`
	TextBottomMargin *float32 `toml:"text_bottom_margin,omitempty" yaml:"text_bottom_margin,omitempty"`
	UnderlineStroke  *float32 `toml:"underline_stroke,omitempty" yaml:"underline_stroke,omitempty"`
	CornerRadius     *float32 `toml:"corner_radius,omitempty" yaml:"corner_radius,omitempty"`
}

// Colors as #RGB, #RRGGBB or #RRGGBBAA
type Colors struct {
	Text       string `toml:"text,omitempty" yaml:"text,omitempty"`
	Underline  string `toml:"underline,omitempty" yaml:"underline,omitempty"`
	Background string `toml:"background,omitempty" yaml:"background,omitempty"`
	Rect       string `toml:"rect,omitempty" yaml:"rect,omitempty"`
	Caret      string `toml:"caret,omitempty" yaml:"caret,omitempty"`
}

type Caret struct {
	Enabled *bool  `toml:"enabled,omitempty" yaml:"enabled,omitempty"`
	Shape   string `toml:"shape,omitempty" yaml:"shape,omitempty"` // underscore | beam
	// Blink is a Go duration ("500ms"); "0s" keeps the caret steady
	Blink        string   `toml:"blink,omitempty" yaml:"blink,omitempty"`
	StrokeWidth  *float32 `toml:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	MarginX      *float32 `toml:"margin_x,omitempty" yaml:"margin_x,omitempty"`
	MarginBottom *float32 `toml:"margin_bottom,omitempty" yaml:"margin_bottom,omitempty"`
}

type Features struct {
	Underline  *bool `toml:"underline,omitempty" yaml:"underline,omitempty"`
	Rect       *bool `toml:"rect,omitempty" yaml:"rect,omitempty"`
	Background *bool `toml:"background,omitempty" yaml:"background,omitempty"`
}

// Theme adds named colors to the class vocabulary: brand = "#1da1f2" makes
// text-brand, bg-brand, border-brand, caret-brand and fill-brand available.
type Theme struct {
	Colors map[string]string `toml:"colors,omitempty" yaml:"colors,omitempty"`
}

// Load reads a TOML or YAML config file, chosen by extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	log.Printf("[config] loaded %s", path)
	return &f, nil
}

// LoadConfig loads path and resolves it in one step.
func LoadConfig(path string) (pinfield.Config, *File, error) {
	f, err := Load(path)
	if err != nil {
		return pinfield.Config{}, nil, err
	}
	cfg, err := f.Resolve()
	if err != nil {
		return cfg, f, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, f, nil
}

// Save writes f as TOML.
func Save(path string, f *File) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Resolve turns the file into a validated pinfield.Config. Every bad value is
// reported, joined into one error.
func (f *File) Resolve() (pinfield.Config, error) {
	density := f.Density
	if density <= 0 {
		density = 1
	}
	cfg := pinfield.DefaultConfig(density)
	if f.Slots != 0 {
		cfg.SlotCount = f.Slots
	}

	dp := func(dst *float32, v *float32) {
		if v != nil {
			*dst = *v * density
		}
	}
	dp(&cfg.SlotWidth, f.Layout.SlotWidth)
	dp(&cfg.SlotGap, f.Layout.SlotGap)
	dp(&cfg.Height, f.Layout.Height)
	dp(&cfg.PaddingTop, f.Layout.PaddingTop)
	dp(&cfg.TextSize, f.Layout.TextSize)
	dp(&cfg.TextBottomMargin, f.Layout.TextBottomMargin)
	dp(&cfg.UnderlineStrokeWidth, f.Layout.UnderlineStroke)
	dp(&cfg.CornerRadius, f.Layout.CornerRadius)
	dp(&cfg.CaretStrokeWidth, f.Caret.StrokeWidth)
	dp(&cfg.CaretMarginX, f.Caret.MarginX)
	dp(&cfg.CaretMarginBottom, f.Caret.MarginBottom)

	var errs []error
	color := func(dst *uint32, key, value string) {
		if value == "" {
			return
		}
		c, err := draw.ParseHex(value)
		if err != nil {
			errs = append(errs, &pinfield.ConfigError{Field: key, Value: value, Err: err})
			return
		}
		*dst = c
	}
	color(&cfg.TextColor, "colors.text", f.Colors.Text)
	color(&cfg.UnderlineColor, "colors.underline", f.Colors.Underline)
	color(&cfg.BackgroundColor, "colors.background", f.Colors.Background)
	color(&cfg.RectColor, "colors.rect", f.Colors.Rect)
	color(&cfg.CaretColor, "colors.caret", f.Colors.Caret)

	flag := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	flag(&cfg.CaretEnabled, f.Caret.Enabled)
	flag(&cfg.UnderlineEnabled, f.Features.Underline)
	flag(&cfg.RectEnabled, f.Features.Rect)
	flag(&cfg.BackgroundEnabled, f.Features.Background)

	switch f.Caret.Shape {
	case "", "underscore":
		cfg.CaretShape = pinfield.CaretUnderscore
	case "beam":
		cfg.CaretShape = pinfield.CaretBeam
	default:
		errs = append(errs, &pinfield.ConfigError{
			Field: "caret.shape",
			Value: f.Caret.Shape,
			Err:   errors.New("want underscore or beam"),
		})
	}

	if f.Caret.Blink != "" {
		d, err := time.ParseDuration(f.Caret.Blink)
		if err != nil {
			errs = append(errs, &pinfield.ConfigError{Field: "caret.blink", Value: f.Caret.Blink, Err: err})
		} else {
			cfg.BlinkInterval = d
		}
	}

	if _, err := f.ThemeColors(); err != nil {
		errs = append(errs, err)
	}

	switch f.Filter {
	case "", "digits":
	default:
		errs = append(errs, &pinfield.ConfigError{
			Field: "filter",
			Value: f.Filter,
			Err:   errors.New("want digits or nothing"),
		})
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

// ThemeColors parses the [theme.colors] table.
func (f *File) ThemeColors() (map[string]uint32, error) {
	if len(f.Theme.Colors) == 0 {
		return nil, nil
	}
	colors := make(map[string]uint32, len(f.Theme.Colors))
	var errs []error
	for name, value := range f.Theme.Colors {
		c, err := draw.ParseHex(value)
		if err != nil {
			errs = append(errs, &pinfield.ConfigError{Field: "theme.colors." + name, Value: value, Err: err})
			continue
		}
		colors[name] = c
	}
	return colors, errors.Join(errs...)
}

// ApplyTheme registers the file's theme colors with pinfield.SetTheme. A file
// without theme colors leaves the current theme alone.
func (f *File) ApplyTheme() error {
	colors, err := f.ThemeColors()
	if err != nil || colors == nil {
		return err
	}
	pinfield.SetTheme(tw.WithColors(colors))
	log.Printf("[config] registered %d theme colors", len(colors))
	return nil
}

// CharFilter returns the character filter named by the file, or nil.
func (f *File) CharFilter() func(char string) bool {
	if f.Filter == "digits" {
		return pinfield.Digits
	}
	return nil
}

// Default returns a file spelling out every stock value, for 'pinfield init'.
func Default() *File {
	cfg := pinfield.DefaultConfig(1)
	yes, no := true, false
	f32 := func(v float32) *float32 { return &v }

	return &File{
		Slots:   cfg.SlotCount,
		Density: 1,
		Layout: Layout{
			SlotWidth:        f32(cfg.SlotWidth),
			SlotGap:          f32(cfg.SlotGap),
			Height:           f32(cfg.Height),
			PaddingTop:       f32(cfg.PaddingTop),
			TextSize:         f32(cfg.TextSize),
			TextBottomMargin: f32(cfg.TextBottomMargin),
			UnderlineStroke:  f32(cfg.UnderlineStrokeWidth),
			CornerRadius:     f32(cfg.CornerRadius),
		},
		Colors: Colors{
			Text:       draw.FormatHex(cfg.TextColor),
			Underline:  draw.FormatHex(cfg.UnderlineColor),
			Background: draw.FormatHex(cfg.BackgroundColor),
			Rect:       draw.FormatHex(cfg.RectColor),
			Caret:      draw.FormatHex(cfg.CaretColor),
		},
		Caret: Caret{
			Enabled:      &yes,
			Shape:        cfg.CaretShape.String(),
			Blink:        cfg.BlinkInterval.String(),
			StrokeWidth:  f32(cfg.CaretStrokeWidth),
			MarginX:      f32(cfg.CaretMarginX),
			MarginBottom: f32(cfg.CaretMarginBottom),
		},
		Features: Features{
			Underline:  &no,
			Rect:       &yes,
			Background: &no,
		},
	}
}
