// Package config loads the slidepreview settings file.
package config

import (
	"net"
	"strconv"
)

// DefaultFile is read when --config is not given and the file exists.
const DefaultFile = "slidepreview.yaml"

// Config is the whole settings document. Every section is optional.
type Config struct {
	Theme     string    `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Deck      Deck      `yaml:"deck,omitempty"`
	Server    Server    `yaml:"server,omitempty"`
	Log       Log       `yaml:"log,omitempty"`
	ThemeRepo ThemeRepo `yaml:"theme_repo,omitempty"`
	Style     Style     `yaml:"style,omitempty"`
}

// Deck selects where slides come from. ServiceURL wins when both are set.
type Deck struct {
	Path       string `yaml:"path,omitempty"`
	ServiceURL string `yaml:"service_url,omitempty" validate:"omitempty,http_url"`
	Prompt     string `yaml:"prompt,omitempty"`
	Timeout    int    `yaml:"timeout,omitempty" validate:"omitempty,min=1,max=600"`
}

// Server is the editor listener.
type Server struct {
	Host string `yaml:"host,omitempty" validate:"omitempty,hostname_rfc1123|ip"`
	Port int    `yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
}

// Addr joins host and port.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Log configures the zerolog logger.
type Log struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	Human *bool  `yaml:"human,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// HumanReadable reports whether console output was requested. Defaults to true.
func (l Log) HumanReadable() bool {
	return l.Human == nil || *l.Human
}

// ThemeRepo is a git repository of extra theme files.
type ThemeRepo struct {
	URL string `yaml:"url,omitempty" validate:"omitempty,git_url"`
	Ref string `yaml:"ref,omitempty"`
}

// Style overrides values of the starting theme.
type Style struct {
	Colors     map[string]string `yaml:"colors,omitempty" validate:"omitempty,dive,keys,required,endkeys,hex_color"`
	Fonts      Fonts             `yaml:"fonts,omitempty"`
	FooterText *string           `yaml:"footer_text,omitempty"`
	Logos      Logos             `yaml:"logos,omitempty"`
}

// Fonts overrides the font family and size multiplier.
type Fonts struct {
	Family         string  `yaml:"family,omitempty" validate:"omitempty,font_face"`
	SizeMultiplier float64 `yaml:"size_multiplier,omitempty" validate:"omitempty,gte=0.8,lte=1.5"`
}

// Logos overrides the logo slots with URLs.
type Logos struct {
	Header  string `yaml:"header,omitempty" validate:"omitempty,url"`
	Closing string `yaml:"closing,omitempty" validate:"omitempty,url"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Server: Server{Host: "127.0.0.1", Port: 8080},
		Log:    Log{Level: "info"},
	}
}

// applyDefaults fills zero values after decoding.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
