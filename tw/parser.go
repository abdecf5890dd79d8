// Package tw parses Tailwind-style class strings into field styles.
package tw

import (
	"fmt"
	"strings"
)

// State represents widget interaction state
type State int

const (
	StateDefault State = iota
	StateFocus
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	State          State
	DarkMode       bool
	Unsupported    bool // carries a variant the field has no state for (hover:, md:, ...)
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[35px]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "bg", "text", "caret"
	Value    string // e.g., "35px", "#1da1f2", "15px"
}

// ParseClasses parses a class string and returns computed styles.
// Example: "boxed underline text-[#000] focus:border-[#1da1f2] w-[35px]"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Unsupported {
			continue
		}

		var partial StyleProperties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = GetClassMap()[parsed.BaseClass]
			if !ok {
				// Unknown class, silently ignore (like Tailwind CSS)
				continue
			}
		}

		target := getTargetProperties(&computed, parsed)
		target.Merge(partial)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "focus:dark:border-[#fff]" → ParsedClass{State: Focus, DarkMode: true, ArbitraryValue: ...}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		State:     StateDefault,
		BaseClass: parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "focus":
			pc.State = StateFocus
		case "dark":
			pc.DarkMode = true
		default:
			pc.Unsupported = true
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[35px]" → ArbitraryValue{Property: "w", Value: "35px"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// parseArbitraryValue converts arbitrary value to StyleProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) StyleProperties {
	var partial StyleProperties

	switch arb.Property {
	case "w":
		partial.Width = parseDimension(arb.Value)
	case "h":
		partial.Height = parseDimension(arb.Value)
	case "gap":
		partial.Gap = parseDimension(arb.Value)
	case "pt":
		partial.PaddingTop = parseDimension(arb.Value)
	case "pb":
		partial.PaddingBottom = parseDimension(arb.Value)
	case "rounded":
		partial.BorderRadius = parseDimension(arb.Value)
	case "border-b":
		partial.BorderBottomWidth = parseDimension(arb.Value)

	// text-[#000] is a color, text-[15px] a size
	case "text":
		if strings.HasPrefix(arb.Value, "#") {
			partial.TextColor = parseColor(arb.Value)
		} else {
			partial.FontSize = parseDimension(arb.Value)
		}
	case "border":
		if strings.HasPrefix(arb.Value, "#") {
			partial.BorderColor = parseColor(arb.Value)
		} else {
			partial.BorderBottomWidth = parseDimension(arb.Value)
		}
	case "bg":
		partial.BackgroundColor = parseColor(arb.Value)
	case "fill":
		if c := parseColor(arb.Value); c != nil {
			partial.FillColor = c
			filled := true
			partial.Filled = &filled
		}
	case "caret":
		partial.CaretColor = parseColor(arb.Value)
	case "animate":
		parseAnimationArbitrary(arb.Value, &partial)
	}

	return partial
}

// parseAnimationArbitrary parses "blink_500ms" or "blink_1s".
func parseAnimationArbitrary(value string, partial *StyleProperties) {
	parts := strings.Split(value, "_")
	name := parts[0]
	if name == "" {
		return
	}
	partial.Animation = &name

	for _, part := range parts[1:] {
		if duration := parseAnimationDuration(part); duration != nil {
			partial.AnimationDuration = duration
		}
	}
}

// parseAnimationDuration parses duration strings like "500ms", "1s", "1.5s"
func parseAnimationDuration(value string) *float32 {
	if strings.HasSuffix(value, "ms") {
		var ms float32
		if _, err := fmt.Sscanf(strings.TrimSuffix(value, "ms"), "%f", &ms); err == nil {
			return &ms
		}
	} else if strings.HasSuffix(value, "s") {
		var sec float32
		if _, err := fmt.Sscanf(strings.TrimSuffix(value, "s"), "%f", &sec); err == nil {
			ms := sec * 1000
			return &ms
		}
	}
	return nil
}

// parseDimension parses CSS dimension values (px, rem, em, plain numbers)
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	numStr := value
	var multiplier float32 = 1.0

	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0 // 1rem = 16px
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16.0
	}

	var num float32
	if _, err := fmt.Sscanf(numStr, "%f", &num); err == nil {
		result := num * multiplier
		return &result
	}

	return nil
}

// parseColor parses #RGB, #RRGGBB and #RRGGBBAA into packed RGBA.
func parseColor(value string) *uint32 {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return nil
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	var r, g, b uint32
	a := uint32(0xFF)
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return nil
		}
	default:
		return nil
	}

	color := (r << 24) | (g << 16) | (b << 8) | a
	return &color
}

// getTargetProperties returns the StyleProperties bucket a class applies to
func getTargetProperties(computed *ComputedStyles, parsed ParsedClass) *StyleProperties {
	if parsed.DarkMode {
		if parsed.State == StateFocus {
			return &computed.Dark.Focus
		}
		return &computed.Dark.Base
	}
	if parsed.State == StateFocus {
		return &computed.Focus
	}
	return &computed.Base
}
