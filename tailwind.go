package pinfield

import (
	"sync"
	"time"

	"github.com/agiangrant/pinfield/tw"
)

// styleCache caches parsed styles for repeated class strings.
var (
	styleCache   = make(map[string]*tw.ComputedStyles)
	styleCacheMu sync.RWMutex
)

// resolveStyles returns cached or freshly parsed styles for a class string.
func resolveStyles(classes string) *tw.ComputedStyles {
	if classes == "" {
		return nil
	}

	styleCacheMu.RLock()
	if cached, ok := styleCache[classes]; ok {
		styleCacheMu.RUnlock()
		return cached
	}
	styleCacheMu.RUnlock()

	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := styleCache[classes]; ok {
		return cached
	}

	styles := tw.ParseClasses(classes)
	styleCache[classes] = &styles
	return &styles
}

// SetTheme registers a class theme for every field and drops cached styles.
// Fields pick it up on their next SetClasses.
func SetTheme(theme tw.ThemeConfig) {
	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()
	tw.SetConfig(theme)
	clear(styleCache)
}

// ResetTheme restores the built-in classes.
func ResetTheme() {
	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()
	tw.ResetConfig()
	clear(styleCache)
}

// ApplyStyle returns c with every property set in props applied.
func (c Config) ApplyStyle(props tw.StyleProperties) Config {
	if props.TextColor != nil {
		c.TextColor = *props.TextColor
	}
	if props.BackgroundColor != nil {
		c.RectColor = *props.BackgroundColor
	}
	if props.BorderColor != nil {
		c.UnderlineColor = *props.BorderColor
	}
	if props.CaretColor != nil {
		c.CaretColor = *props.CaretColor
	}
	if props.FillColor != nil {
		c.BackgroundColor = *props.FillColor
	}
	if props.FontSize != nil {
		c.TextSize = *props.FontSize
	}
	if props.PaddingTop != nil {
		c.PaddingTop = *props.PaddingTop
	}
	if props.PaddingBottom != nil {
		c.TextBottomMargin = *props.PaddingBottom
	}
	if props.Gap != nil {
		c.SlotGap = *props.Gap
	}
	if props.Width != nil {
		c.SlotWidth = *props.Width
	}
	if props.Height != nil {
		c.Height = *props.Height
	}
	if props.BorderBottomWidth != nil {
		c.UnderlineStrokeWidth = *props.BorderBottomWidth
		// A stroke width implies the underline is wanted
		if props.Underline == nil {
			c.UnderlineEnabled = *props.BorderBottomWidth > 0
		}
	}
	if props.BorderRadius != nil {
		c.CornerRadius = *props.BorderRadius
	}
	if props.Underline != nil {
		c.UnderlineEnabled = *props.Underline
	}
	if props.Boxed != nil {
		c.RectEnabled = *props.Boxed
	}
	if props.Filled != nil {
		c.BackgroundEnabled = *props.Filled
	}
	if props.Caret != nil {
		c.CaretEnabled = *props.Caret
	}
	if props.CaretShape != nil {
		switch *props.CaretShape {
		case "beam":
			c.CaretShape = CaretBeam
		case "underscore":
			c.CaretShape = CaretUnderscore
		}
	}
	if props.Animation != nil {
		switch *props.Animation {
		case "none":
			c.BlinkInterval = 0 // steady caret
		case "blink":
			if c.BlinkInterval == 0 {
				c.BlinkInterval = DefaultBlinkInterval
			}
		}
	}
	if props.AnimationDuration != nil && *props.AnimationDuration > 0 {
		c.BlinkInterval = time.Duration(float64(*props.AnimationDuration) * float64(time.Millisecond))
	}
	return c
}
