package editor

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
)

// ColorField is one color picker of the editing surface.
type ColorField struct {
	Role  string `json:"role"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Label turns a color role into a human label: "background_white" becomes "Background White".
func Label(role string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(role, "_", " "))
}

// Fields lists a picker for every configured color role.
func Fields(cfg style.Configuration) []ColorField {
	roles := cfg.SortedColorRoles()
	out := make([]ColorField, 0, len(roles))
	for _, role := range roles {
		out = append(out, ColorField{Role: role, Label: Label(role), Value: cfg.Colors[role]})
	}
	return out
}
