package style

// DefaultTheme is applied when nothing else is configured.
const DefaultTheme = "google"

// FontFaces enumerates the families the editor offers.
var FontFaces = []string{
	"Arial",
	"Google Sans",
	"Roboto",
	"Noto Sans JP",
	"M PLUS 1p",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Georgia",
	"Times New Roman",
}

// Theme is a named, complete configuration.
type Theme struct {
	Name   string        `json:"name" yaml:"name" validate:"required,theme_name"`
	Config Configuration `json:"config" yaml:",inline"`
}

// Builtins returns fresh copies of the themes shipped with the binary.
func Builtins() []Theme {
	return []Theme{
		{Name: "google", Config: googleConfig()},
		{Name: "midnight", Config: midnightConfig()},
		{Name: "sunset", Config: sunsetConfig()},
	}
}

// Default returns a copy of the default theme's configuration.
func Default() Configuration {
	return googleConfig()
}

func defaultSizes() map[string]float64 {
	out := make(map[string]float64, len(DefaultSizes))
	for k, v := range DefaultSizes {
		out[k] = v
	}
	return out
}

func googleConfig() Configuration {
	return Configuration{
		Fonts: Fonts{Family: "Arial", SizeMultiplier: 1, Sizes: defaultSizes()},
		Colors: map[string]string{
			ColorPrimaryBlue:     "#1A73E8",
			ColorGoogleGreen:     "#34A853",
			ColorGoogleYellow:    "#FBBC04",
			ColorGoogleRed:       "#EA4335",
			ColorNeutralGray:     "#9E9E9E",
			ColorBackgroundWhite: "#FFFFFF",
			ColorBackgroundGray:  "#F8F9FA",
			ColorTextPrimary:     "#333333",
			ColorFaintGray:       "#E8EAED",
			ColorGhostGray:       "#EFEFED",
			ColorLaneTitleBg:     "#F5F5F3",
			ColorLaneBorder:      "#DADCE0",
			ColorCardBg:          "#FFFFFF",
			ColorCardBorder:      "#DADCE0",
			ColorReadableOnWhite: "#333333",
			ColorReadableOnGray:  "#333333",
		},
		FooterText: "© Google Inc.",
	}
}

func midnightConfig() Configuration {
	return Configuration{
		Fonts: Fonts{Family: "Roboto", SizeMultiplier: 1, Sizes: defaultSizes()},
		Colors: map[string]string{
			ColorPrimaryBlue:     "#8AB4F8",
			ColorGoogleGreen:     "#81C995",
			ColorGoogleYellow:    "#FDD663",
			ColorGoogleRed:       "#F28B82",
			ColorNeutralGray:     "#9AA0A6",
			ColorBackgroundWhite: "#202124",
			ColorBackgroundGray:  "#303134",
			ColorTextPrimary:     "#E8EAED",
			ColorFaintGray:       "#5F6368",
			ColorGhostGray:       "#3C4043",
			ColorLaneTitleBg:     "#3C4043",
			ColorLaneBorder:      "#5F6368",
			ColorCardBg:          "#303134",
			ColorCardBorder:      "#5F6368",
			ColorReadableOnWhite: "#E8EAED",
			ColorReadableOnGray:  "#E8EAED",
		},
	}
}

func sunsetConfig() Configuration {
	return Configuration{
		Fonts: Fonts{Family: "Montserrat", SizeMultiplier: 1, Sizes: defaultSizes()},
		Colors: map[string]string{
			ColorPrimaryBlue:     "#E8710A",
			ColorGoogleGreen:     "#188038",
			ColorGoogleYellow:    "#F9AB00",
			ColorGoogleRed:       "#C5221F",
			ColorNeutralGray:     "#80868B",
			ColorBackgroundWhite: "#FFF8F1",
			ColorBackgroundGray:  "#FDEBD8",
			ColorTextPrimary:     "#3C2A1E",
			ColorFaintGray:       "#F3D9C0",
			ColorGhostGray:       "#F6E3D0",
			ColorLaneTitleBg:     "#FCE8D4",
			ColorLaneBorder:      "#E7C9AA",
			ColorCardBg:          "#FFFFFF",
			ColorCardBorder:      "#E7C9AA",
			ColorReadableOnWhite: "#3C2A1E",
			ColorReadableOnGray:  "#3C2A1E",
		},
	}
}
