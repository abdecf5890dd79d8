package tw

import "testing"

func TestParseClassesWithVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "basic classes without variants",
			input: "boxed underline text-black text-lg gap-2",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Boxed == nil || !*s.Base.Boxed {
					t.Error("expected Base.Boxed to be true")
				}
				if s.Base.Underline == nil || !*s.Base.Underline {
					t.Error("expected Base.Underline to be true")
				}
				if s.Base.TextColor == nil || *s.Base.TextColor != 0x000000FF {
					t.Errorf("expected Base.TextColor=black, got %v", s.Base.TextColor)
				}
				if s.Base.FontSize == nil || *s.Base.FontSize != 18 {
					t.Errorf("expected Base.FontSize=18, got %v", s.Base.FontSize)
				}
				if s.Base.Gap == nil || *s.Base.Gap != 8 {
					t.Errorf("expected Base.Gap=8, got %v", s.Base.Gap)
				}
			},
		},
		{
			name:  "focus variant",
			input: "border-gray-300 focus:border-blue-500",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BorderColor == nil || *s.Base.BorderColor != palette["gray-300"] {
					t.Error("expected Base.BorderColor to be gray-300")
				}
				if s.Focus.BorderColor == nil || *s.Focus.BorderColor != palette["blue-500"] {
					t.Error("expected Focus.BorderColor to be blue-500")
				}
			},
		},
		{
			name:  "dark mode variant",
			input: "text-gray-900 dark:text-white dark:focus:caret-blue-500",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.TextColor == nil {
					t.Error("expected Base.TextColor to be set")
				}
				if s.Dark.Base.TextColor == nil || *s.Dark.Base.TextColor != 0xFFFFFFFF {
					t.Error("expected Dark.Base.TextColor to be white")
				}
				if s.Dark.Focus.CaretColor == nil {
					t.Error("expected Dark.Focus.CaretColor to be set")
				}
			},
		},
		{
			name:  "unknown classes are ignored",
			input: "flex hover:bg-blue-500 whatever",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BackgroundColor != nil {
					t.Error("expected no background color")
				}
			},
		},
		{
			name:  "last class wins",
			input: "caret caret-hidden",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Caret == nil || *s.Base.Caret {
					t.Error("expected Base.Caret to be false")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestArbitraryValues(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "slot width pixels",
			input: "w-[35px]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Width == nil || *s.Base.Width != 35 {
					t.Errorf("w-[35px] should be 35, got %v", s.Base.Width)
				}
			},
		},
		{
			name:  "rem height",
			input: "h-[2.5rem]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Height == nil || *s.Base.Height != 40 {
					t.Errorf("h-[2.5rem] should be 40, got %v", s.Base.Height)
				}
			},
		},
		{
			name:  "text color vs text size",
			input: "text-[#fff] text-[15px]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.TextColor == nil || *s.Base.TextColor != 0xFFFFFFFF {
					t.Errorf("text-[#fff] should expand to white, got %v", s.Base.TextColor)
				}
				if s.Base.FontSize == nil || *s.Base.FontSize != 15 {
					t.Errorf("text-[15px] should be 15, got %v", s.Base.FontSize)
				}
			},
		},
		{
			name:  "translucent background",
			input: "bg-[#ffffff88]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BackgroundColor == nil || *s.Base.BackgroundColor != 0xFFFFFF88 {
					t.Errorf("bg-[#ffffff88] should keep alpha, got %v", s.Base.BackgroundColor)
				}
			},
		},
		{
			name:  "underline stroke and color",
			input: "border-b-[2px] border-[#cccccc]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.BorderBottomWidth == nil || *s.Base.BorderBottomWidth != 2 {
					t.Errorf("border-b-[2px] should be 2, got %v", s.Base.BorderBottomWidth)
				}
				if s.Base.BorderColor == nil || *s.Base.BorderColor != 0xCCCCCCFF {
					t.Errorf("border-[#cccccc] wrong, got %v", s.Base.BorderColor)
				}
			},
		},
		{
			name:  "blink duration in seconds",
			input: "animate-[blink_1.5s]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Animation == nil || *s.Base.Animation != "blink" {
					t.Errorf("expected blink animation, got %v", s.Base.Animation)
				}
				if s.Base.AnimationDuration == nil || *s.Base.AnimationDuration != 1500 {
					t.Errorf("expected 1500ms, got %v", s.Base.AnimationDuration)
				}
			},
		},
		{
			name:  "fill enables the view background",
			input: "fill-[#000]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Filled == nil || !*s.Base.Filled {
					t.Error("fill-[#000] should enable fill")
				}
			},
		},
		{
			name:  "invalid color is dropped",
			input: "caret-[#zz]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.CaretColor != nil {
					t.Errorf("caret-[#zz] should not set a color, got %v", *s.Base.CaretColor)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	s := ParseClasses("border-gray-300 focus:border-blue-500 dark:border-white")

	tests := []struct {
		name    string
		focused bool
		dark    bool
		want    uint32
	}{
		{"base", false, false, palette["gray-300"]},
		{"focused", true, false, palette["blue-500"]},
		{"dark overrides focus", true, true, palette["white"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Resolve(tt.focused, tt.dark)
			if got.BorderColor == nil || *got.BorderColor != tt.want {
				t.Errorf("Resolve(%v, %v).BorderColor = %v, want %#x", tt.focused, tt.dark, got.BorderColor, tt.want)
			}
		})
	}
}

func TestRegisteredClassMap(t *testing.T) {
	SetConfig(ThemeConfig{ClassMap: map[string]StyleProperties{
		"pin": {Width: f32(48)},
	}})
	defer ResetConfig()

	s := ParseClasses("pin boxed")
	if s.Base.Width == nil || *s.Base.Width != 48 {
		t.Errorf("expected registered class to apply, got %v", s.Base.Width)
	}
	if s.Base.Boxed != nil {
		t.Error("built-in classes should not apply when a theme is registered")
	}
}

func TestWithColors(t *testing.T) {
	SetConfig(WithColors(map[string]uint32{"brand": 0x1DA1F2FF, "blue-500": 0x000000FF}))
	defer ResetConfig()

	styles := ParseClasses("text-brand border-blue-500 underline")
	if styles.Base.TextColor == nil || *styles.Base.TextColor != 0x1DA1F2FF {
		t.Errorf("text-brand = %v, want 0x1DA1F2FF", styles.Base.TextColor)
	}
	if styles.Base.BorderColor == nil || *styles.Base.BorderColor != 0x000000FF {
		t.Error("theme colors should shadow the built-in palette")
	}
	if styles.Base.Underline == nil {
		t.Error("built-in classes missing from a color theme")
	}
}
