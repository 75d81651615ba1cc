// Package script produces the Google Apps Script that builds the deck in
// Google Slides, plus the copy helpers the front-ends share.
package script

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
)

//go:embed templates/presentation.js.tmpl
var templates embed.FS

var presentation = template.Must(template.ParseFS(templates, "templates/presentation.js.tmpl"))

// EntryPoint is the function the user runs from the Apps Script editor.
const EntryPoint = "generatePresentation"

// Version is stamped into the generated header. The CLI overrides it at link time.
var Version = "dev"

// Instructions are the four steps shown next to the script.
var Instructions = []string{
	"Copy the whole script with the copy button below.",
	"Open Google Slides and choose Extensions > Apps Script.",
	"Delete everything in the editor and paste the copied code.",
	"Press Run at the top to execute the " + EntryPoint + " function.",
}

type templateData struct {
	Version string
	Config  string
	Slides  string
}

// Generate renders the script for slides styled by cfg. Slides of unknown
// type are passed through with all their fields.
func Generate(slides slide.Sequence, cfg style.Configuration) (string, error) {
	config, err := json.MarshalIndent(exportConfig(cfg), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	if slides == nil {
		slides = slide.Sequence{}
	}
	data, err := json.MarshalIndent(slides, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode slides: %w", err)
	}

	var buf bytes.Buffer
	err = presentation.Execute(&buf, templateData{
		Version: Version,
		Config:  string(config),
		Slides:  string(data),
	})
	if err != nil {
		return "", fmt.Errorf("render script: %w", err)
	}
	return buf.String(), nil
}

// exportConfig fills the size table so the script never has to fall back.
func exportConfig(cfg style.Configuration) style.Configuration {
	out := cfg.Clone()
	if out.Fonts.Sizes == nil {
		out.Fonts.Sizes = map[string]float64{}
	}
	for role, size := range style.DefaultSizes {
		if base, ok := out.Fonts.Sizes[role]; !ok || base <= 0 {
			out.Fonts.Sizes[role] = size
		}
	}
	out.Fonts.SizeMultiplier = cfg.Multiplier()
	if out.Fonts.Family == "" {
		out.Fonts.Family = style.Default().Fonts.Family
	}
	if out.Colors == nil {
		out.Colors = map[string]string{}
	}
	for role, value := range style.Default().Colors {
		if _, ok := out.Colors[role]; !ok {
			out.Colors[role] = value
		}
	}
	return out
}
