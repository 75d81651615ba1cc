// Package style holds the visual configuration a deck is rendered with.
package style

import (
	"math"
	"sort"
)

// Font size roles.
const (
	SizeTitle        = "title"
	SizeDate         = "date"
	SizeSectionTitle = "sectionTitle"
	SizeGhostNum     = "ghostNum"
	SizeContentTitle = "contentTitle"
	SizeSubhead      = "subhead"
	SizeBody         = "body"
	SizeLaneTitle    = "laneTitle"
	SizeChip         = "chip"
	SizeSmall        = "small"
	SizeProcessStep  = "processStep"
)

// Color roles.
const (
	ColorPrimaryBlue     = "primary_blue"
	ColorGoogleGreen     = "google_green"
	ColorGoogleYellow    = "google_yellow"
	ColorGoogleRed       = "google_red"
	ColorNeutralGray     = "neutral_gray"
	ColorBackgroundWhite = "background_white"
	ColorBackgroundGray  = "background_gray"
	ColorTextPrimary     = "text_primary"
	ColorFaintGray       = "faint_gray"
	ColorGhostGray       = "ghost_gray"
	ColorLaneTitleBg     = "lane_title_bg"
	ColorLaneBorder      = "lane_border"
	ColorCardBg          = "card_bg"
	ColorCardBorder      = "card_border"
	ColorReadableOnWhite = "readable_text_on_white"
	ColorReadableOnGray  = "readable_text_on_gray"
)

// ColorRoles lists every role in display order.
var ColorRoles = []string{
	ColorPrimaryBlue, ColorGoogleGreen, ColorGoogleYellow, ColorGoogleRed,
	ColorNeutralGray, ColorBackgroundWhite, ColorBackgroundGray, ColorTextPrimary,
	ColorFaintGray, ColorGhostGray, ColorLaneTitleBg, ColorLaneBorder,
	ColorCardBg, ColorCardBorder, ColorReadableOnWhite, ColorReadableOnGray,
}

// Multiplier bounds and step for the font size slider.
const (
	MinMultiplier  = 0.8
	MaxMultiplier  = 1.5
	MultiplierStep = 0.05

	fallbackSize = 12.0
)

// DefaultSizes is consulted when a configuration lacks a size role.
var DefaultSizes = map[string]float64{
	SizeTitle:        45,
	SizeDate:         16,
	SizeSectionTitle: 38,
	SizeGhostNum:     180,
	SizeContentTitle: 24,
	SizeSubhead:      18,
	SizeBody:         14,
	SizeLaneTitle:    13,
	SizeChip:         10,
	SizeSmall:        10,
	SizeProcessStep:  14,
}

// Logo slots.
const (
	LogoHeader  = "header"
	LogoClosing = "closing"
)

type Fonts struct {
	Family         string             `json:"family" yaml:"family" validate:"omitempty,font_face"`
	SizeMultiplier float64            `json:"fontSizeMultiplier" yaml:"fontSizeMultiplier" validate:"gte=0.8,lte=1.5"`
	Sizes          map[string]float64 `json:"sizes" yaml:"sizes" validate:"dive,gt=0"`
}

type Logos struct {
	Header  string `json:"header" yaml:"header"`
	Closing string `json:"closing" yaml:"closing"`
}

// Configuration is the full styling snapshot. Renderers receive copies.
type Configuration struct {
	Fonts      Fonts             `json:"FONTS" yaml:"fonts"`
	Colors     map[string]string `json:"COLORS" yaml:"colors" validate:"dive,hex_color"`
	Logos      Logos             `json:"LOGOS" yaml:"logos"`
	FooterText string            `json:"FOOTER_TEXT" yaml:"footer_text"`
}

// Clone returns a deep copy.
func (c Configuration) Clone() Configuration {
	out := c
	if c.Fonts.Sizes != nil {
		out.Fonts.Sizes = make(map[string]float64, len(c.Fonts.Sizes))
		for k, v := range c.Fonts.Sizes {
			out.Fonts.Sizes[k] = v
		}
	}
	if c.Colors != nil {
		out.Colors = make(map[string]string, len(c.Colors))
		for k, v := range c.Colors {
			out.Colors[k] = v
		}
	}
	return out
}

// Color returns the configured value for role, or "" when absent.
func (c Configuration) Color(role string) string {
	if c.Colors == nil {
		return ""
	}
	return c.Colors[role]
}

// ColorOr returns the configured value for role, or fallback when absent.
func (c Configuration) ColorOr(role, fallback string) string {
	if v := c.Color(role); v != "" {
		return v
	}
	return fallback
}

// Multiplier returns the font size multiplier clamped to the supported range.
// An unset multiplier reads as 1.
func (c Configuration) Multiplier() float64 {
	m := c.Fonts.SizeMultiplier
	if m == 0 || math.IsNaN(m) {
		return 1
	}
	return math.Min(MaxMultiplier, math.Max(MinMultiplier, m))
}

// FontSize returns the scaled point size for role.
func (c Configuration) FontSize(role string) float64 {
	base, ok := c.Fonts.Sizes[role]
	if !ok || base <= 0 {
		base, ok = DefaultSizes[role]
		if !ok {
			base = fallbackSize
		}
	}
	return base * c.Multiplier()
}

// SortedColorRoles returns the configured roles, known roles first in
// display order, then any extra roles alphabetically.
func (c Configuration) SortedColorRoles() []string {
	out := make([]string, 0, len(c.Colors))
	seen := make(map[string]bool, len(c.Colors))
	for _, role := range ColorRoles {
		if _, ok := c.Colors[role]; ok {
			out = append(out, role)
			seen[role] = true
		}
	}
	var extra []string
	for role := range c.Colors {
		if !seen[role] {
			extra = append(extra, role)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// SnapMultiplier rounds m to the nearest slider step.
func SnapMultiplier(m float64) float64 {
	steps := math.Round(1 / MultiplierStep)
	return math.Round(m*steps) / steps
}
