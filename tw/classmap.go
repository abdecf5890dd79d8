package tw

import "strconv"

func f32(v float32) *float32 { return &v }
func u32(v uint32) *uint32   { return &v }
func flag(v bool) *bool      { return &v }
func str(v string) *string   { return &v }

// palette is the subset of Tailwind colors the built-in classes expose.
var palette = map[string]uint32{
	"black":     0x000000FF,
	"white":     0xFFFFFFFF,
	"gray-100":  0xF3F4F6FF,
	"gray-300":  0xD1D5DBFF,
	"gray-500":  0x6B7280FF,
	"gray-900":  0x111827FF,
	"blue-500":  0x3B82F6FF,
	"red-500":   0xEF4444FF,
	"green-500": 0x22C55EFF,
}

// ClassMap is the built-in set of named classes.
var ClassMap = buildClassMap(palette)

// WithColors returns a theme with the built-in classes plus color classes
// (text-, bg-, border-, caret-, fill-) for every named color. Names shadow
// built-in palette entries.
func WithColors(colors map[string]uint32) ThemeConfig {
	merged := make(map[string]uint32, len(palette)+len(colors))
	for name, c := range palette {
		merged[name] = c
	}
	for name, c := range colors {
		merged[name] = c
	}
	return ThemeConfig{ClassMap: buildClassMap(merged)}
}

func buildClassMap(colors map[string]uint32) map[string]StyleProperties {
	m := map[string]StyleProperties{
		// Feature toggles
		"underline":        {Underline: flag(true)},
		"no-underline":     {Underline: flag(false)},
		"boxed":            {Boxed: flag(true)},
		"unboxed":          {Boxed: flag(false)},
		"filled":           {Filled: flag(true)},
		"caret":            {Caret: flag(true)},
		"caret-hidden":     {Caret: flag(false)},
		"caret-beam":       {CaretShape: str("beam")},
		"caret-underscore": {CaretShape: str("underscore")},
		"animate-blink":    {Animation: str("blink")},
		"animate-none":     {Animation: str("none")},

		// Typography
		"text-sm":   {FontSize: f32(14)},
		"text-base": {FontSize: f32(16)},
		"text-lg":   {FontSize: f32(18)},
		"text-xl":   {FontSize: f32(20)},
		"text-2xl":  {FontSize: f32(24)},

		// Borders
		"rounded-none": {BorderRadius: f32(0)},
		"rounded-sm":   {BorderRadius: f32(2)},
		"rounded":      {BorderRadius: f32(4)},
		"rounded-md":   {BorderRadius: f32(6)},
		"rounded-lg":   {BorderRadius: f32(8)},
		"border-b":     {BorderBottomWidth: f32(1)},
		"border-b-2":   {BorderBottomWidth: f32(2)},
		"border-b-4":   {BorderBottomWidth: f32(4)},
	}

	// Spacing scale: n * 4px
	for _, n := range []int{1, 2, 3, 4, 6, 8} {
		v := float32(n) * 4
		m[sizeClass("gap", n)] = StyleProperties{Gap: f32(v)}
		m[sizeClass("pb", n)] = StyleProperties{PaddingBottom: f32(v)}
		m[sizeClass("pt", n)] = StyleProperties{PaddingTop: f32(v)}
	}
	for _, n := range []int{8, 10, 12, 14, 16} {
		v := float32(n) * 4
		m[sizeClass("w", n)] = StyleProperties{Width: f32(v)}
		m[sizeClass("h", n)] = StyleProperties{Height: f32(v)}
	}

	for name, c := range colors {
		m["text-"+name] = StyleProperties{TextColor: u32(c)}
		m["bg-"+name] = StyleProperties{BackgroundColor: u32(c)}
		m["border-"+name] = StyleProperties{BorderColor: u32(c)}
		m["caret-"+name] = StyleProperties{CaretColor: u32(c)}
		m["fill-"+name] = StyleProperties{FillColor: u32(c), Filled: flag(true)}
	}
	m["bg-transparent"] = StyleProperties{BackgroundColor: u32(0)}

	return m
}

func sizeClass(prefix string, n int) string {
	return prefix + "-" + strconv.Itoa(n)
}
