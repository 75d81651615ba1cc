// Package contrast picks readable text colors using WCAG relative luminance.
package contrast

import (
	"math"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MinRatio is the WCAG AA threshold for body text.
	MinRatio = 4.5

	White = "#FFFFFF"
	Black = "#000000"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Valid reports whether s is a 3 or 6 digit hex color, with or without '#'.
func Valid(s string) bool {
	return hexPattern.MatchString(strings.TrimSpace(s))
}

// Normalize expands shorthand and returns the '#rrggbb' form.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return "", false
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return "#" + strings.ToLower(s), true
}

// Parse decodes a hex color into its sRGB channels.
func Parse(s string) (colorful.Color, bool) {
	norm, ok := Normalize(s)
	if !ok {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(norm)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of a hex color in [0, 1].
func Luminance(hex string) (float64, bool) {
	c, ok := Parse(hex)
	if !ok {
		return 0, false
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B), true
}

// Ratio returns the contrast ratio between two colors, from 1 to 21.
func Ratio(a, b string) (float64, bool) {
	la, ok := Luminance(a)
	if !ok {
		return 0, false
	}
	lb, ok := Luminance(b)
	if !ok {
		return 0, false
	}
	return ratio(la, lb), true
}

func ratio(la, lb float64) float64 {
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ResolveTextColor returns preferred when it reaches MinRatio against
// background, otherwise whichever of white or black contrasts more.
// Malformed input yields black.
func ResolveTextColor(background, preferred string) string {
	bg, ok := Luminance(background)
	if !ok {
		return Black
	}
	fg, ok := Luminance(preferred)
	if !ok {
		return Black
	}
	if ratio(bg, fg) >= MinRatio {
		return preferred
	}
	if ratio(bg, 1) > ratio(bg, 0) {
		return White
	}
	return Black
}
