package draw

import (
	"fmt"
	"image/color"
	"strings"
)

// ============================================================================
// Color Helpers
// ============================================================================

// Colors are packed as 0xRRGGBBAA.

func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 255)
}

// HexColor converts 0xRRGGBB to an opaque packed color.
func HexColor(hex uint32) uint32 {
	return (hex << 8) | 0xFF
}

// Components unpacks a packed color.
func Components(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha channel of a packed color.
func Alpha(c uint32) uint8 {
	return uint8(c)
}

// NRGBA converts a packed color to a non-premultiplied image/color value.
func NRGBA(c uint32) color.NRGBA {
	r, g, b, a := Components(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ParseHex parses #RGB, #RRGGBB and #RRGGBBAA.
func ParseHex(value string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	var r, g, b, a uint32
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
		a = 0xFF
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
	default:
		return 0, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB or #RRGGBBAA", value)
	}
	return r<<24 | g<<16 | b<<8 | a, nil
}

// FormatHex renders a packed color as #RRGGBBAA, or #RRGGBB when opaque.
func FormatHex(c uint32) string {
	if Alpha(c) == 0xFF {
		return fmt.Sprintf("#%06x", c>>8)
	}
	return fmt.Sprintf("#%08x", c)
}
