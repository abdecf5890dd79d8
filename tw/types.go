package tw

// StyleProperties represents concrete style values for a segmented field.
// A nil pointer means "not set by any class".
type StyleProperties struct {
	// Colors
	TextColor       *uint32
	BackgroundColor *uint32 // slot rectangle fill
	BorderColor     *uint32 // underline
	CaretColor      *uint32
	FillColor       *uint32 // whole-view background

	// Typography
	FontSize *float32

	// Spacing
	PaddingTop    *float32
	PaddingBottom *float32 // text bottom margin
	Gap           *float32

	// Sizing
	Width  *float32 // slot width
	Height *float32

	// Borders
	BorderBottomWidth *float32
	BorderRadius      *float32

	// Feature toggles
	Underline  *bool
	Boxed      *bool
	Filled     *bool
	Caret      *bool
	CaretShape *string // "underscore", "beam"

	// Caret animation
	Animation         *string  // "blink", "none"
	AnimationDuration *float32 // half-period in ms
}

// ComputedStyles groups properties by variant.
type ComputedStyles struct {
	Base  StyleProperties
	Focus StyleProperties

	Dark struct {
		Base  StyleProperties
		Focus StyleProperties
	}
}

// ThemeConfig holds a consumer's class definitions. Registered classes
// replace the built-in ClassMap entirely.
type ThemeConfig struct {
	ClassMap map[string]StyleProperties
}

var registeredConfig *ThemeConfig

// SetConfig registers the consumer's theme. Call it before any parsing.
func SetConfig(config ThemeConfig) {
	registeredConfig = &config
}

// ResetConfig drops a registered theme and restores the built-in classes.
func ResetConfig() {
	registeredConfig = nil
}

// GetClassMap returns the registered ClassMap or falls back to the built-in one.
func GetClassMap() map[string]StyleProperties {
	if registeredConfig != nil && registeredConfig.ClassMap != nil {
		return registeredConfig.ClassMap
	}
	return ClassMap
}

// Resolve returns the properties for a state, layering focus and dark
// variants over the base.
func (cs *ComputedStyles) Resolve(focused, dark bool) StyleProperties {
	result := cs.Base
	if focused {
		mergeStyleProperties(&result, &cs.Focus)
	}
	if dark {
		mergeStyleProperties(&result, &cs.Dark.Base)
		if focused {
			mergeStyleProperties(&result, &cs.Dark.Focus)
		}
	}
	return result
}

// Merge overlays p onto s; later values override earlier ones.
func (s *StyleProperties) Merge(p StyleProperties) {
	mergeStyleProperties(s, &p)
}

func mergeStyleProperties(dst, src *StyleProperties) {
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.BackgroundColor != nil {
		dst.BackgroundColor = src.BackgroundColor
	}
	if src.BorderColor != nil {
		dst.BorderColor = src.BorderColor
	}
	if src.CaretColor != nil {
		dst.CaretColor = src.CaretColor
	}
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.FontSize != nil {
		dst.FontSize = src.FontSize
	}
	if src.PaddingTop != nil {
		dst.PaddingTop = src.PaddingTop
	}
	if src.PaddingBottom != nil {
		dst.PaddingBottom = src.PaddingBottom
	}
	if src.Gap != nil {
		dst.Gap = src.Gap
	}
	if src.Width != nil {
		dst.Width = src.Width
	}
	if src.Height != nil {
		dst.Height = src.Height
	}
	if src.BorderBottomWidth != nil {
		dst.BorderBottomWidth = src.BorderBottomWidth
	}
	if src.BorderRadius != nil {
		dst.BorderRadius = src.BorderRadius
	}
	if src.Underline != nil {
		dst.Underline = src.Underline
	}
	if src.Boxed != nil {
		dst.Boxed = src.Boxed
	}
	if src.Filled != nil {
		dst.Filled = src.Filled
	}
	if src.Caret != nil {
		dst.Caret = src.Caret
	}
	if src.CaretShape != nil {
		dst.CaretShape = src.CaretShape
	}
	if src.Animation != nil {
		dst.Animation = src.Animation
	}
	if src.AnimationDuration != nil {
		dst.AnimationDuration = src.AnimationDuration
	}
}
