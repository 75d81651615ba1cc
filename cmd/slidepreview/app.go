package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/slidepreview/internal/config"
	"github.com/alexisbeaulieu97/slidepreview/internal/deck"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/slidepreview/internal/editor"
	"github.com/alexisbeaulieu97/slidepreview/internal/logger"
	"github.com/alexisbeaulieu97/slidepreview/internal/themes"
)

const defaultConfigHint = "./" + config.DefaultFile

var errNoDeck = errors.New("no deck source")

// deckFlags are the per-command overrides of the settings file.
type deckFlags struct {
	path       string
	serviceURL string
	prompt     string
	theme      string
}

// AppContext bundles the services built at startup from settings and flags.
type AppContext struct {
	Config  config.Config
	Log     *logger.Logger
	Catalog *themes.Catalog
	Store   *editor.Store
	Holder  *deck.Holder
	Source  deck.Source

	closers []io.Closer
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// newAppContext loads settings, applies flag overrides and wires the editor
// state. logOut receives log output unless the settings name a log file.
func newAppContext(ctx context.Context, root *rootFlags, overrides deckFlags, logOut io.Writer) (*AppContext, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return nil, newCommandError("load settings", configLabel(root.configPath), err,
			"Fix the settings file or pass a different one with --config.")
	}
	applyOverrides(&cfg, overrides)

	app := &AppContext{Config: cfg}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, newCommandError("open log file", cfg.Log.File, err,
				"Check that the directory exists and is writable.")
		}
		app.closers = append(app.closers, f)
		logOut = f
	}

	level := cfg.Log.Level
	if root.verbose {
		level = "debug"
	}
	app.Log, err = logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable(),
		Writer:        logOut,
		Component:     "slidepreview",
	})
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Catalog = themes.NewCatalog()
	if repo := cfg.ThemeRepo; repo.URL != "" {
		loaded, err := themes.LoadGit(ctx, repo.URL, repo.Ref)
		if err == nil {
			err = app.Catalog.AddAll(loaded)
		}
		if err != nil {
			app.Close()
			return nil, newCommandError("load theme repository", repo.URL, err,
				"Check theme_repo.url and theme_repo.ref, or remove theme_repo to use the built-in themes.")
		}
		app.Log.Infow("theme repository loaded", "url", repo.URL, "themes", len(loaded))
	}

	app.Store, err = editor.NewStore(app.Catalog, cfg.Theme, app.Log)
	if err != nil {
		app.Close()
		return nil, newCommandError("select theme", cfg.Theme, err,
			"Run 'slidepreview themes' to list the available themes.")
	}
	if err := applyStyle(app.Store, cfg.Style); err != nil {
		app.Close()
		return nil, newCommandError("apply style overrides", configLabel(root.configPath), err,
			"Correct the value under the style section.")
	}

	app.Source = deckSource(cfg.Deck)
	app.Holder = deck.NewHolder(nil)
	return app, nil
}

func applyOverrides(cfg *config.Config, o deckFlags) {
	if o.path != "" {
		cfg.Deck.Path = o.path
		cfg.Deck.ServiceURL = ""
	}
	if o.serviceURL != "" {
		cfg.Deck.ServiceURL = o.serviceURL
	}
	if o.prompt != "" {
		cfg.Deck.Prompt = o.prompt
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}
}

// applyStyle writes the settings' style overrides on top of the starting theme.
func applyStyle(store *editor.Store, s config.Style) error {
	roles := make([]string, 0, len(s.Colors))
	for role := range s.Colors {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		if _, err := store.SetColor(role, s.Colors[role]); err != nil {
			return err
		}
	}
	if s.Fonts.Family != "" {
		if _, err := store.SetFontFamily(s.Fonts.Family); err != nil {
			return err
		}
	}
	if s.Fonts.SizeMultiplier != 0 {
		if _, err := store.SetFontSizeMultiplier(s.Fonts.SizeMultiplier); err != nil {
			return err
		}
	}
	if s.FooterText != nil {
		store.SetFooterText(*s.FooterText)
	}
	if s.Logos.Header != "" {
		if _, err := store.SetLogo(style.LogoHeader, s.Logos.Header); err != nil {
			return err
		}
	}
	if s.Logos.Closing != "" {
		if _, err := store.SetLogo(style.LogoClosing, s.Logos.Closing); err != nil {
			return err
		}
	}
	return nil
}

// deckSource picks the service when configured, then the file. Nil means no deck.
func deckSource(d config.Deck) deck.Source {
	switch {
	case d.ServiceURL != "":
		timeout := deck.DefaultTimeout
		if d.Timeout > 0 {
			timeout = time.Duration(d.Timeout) * time.Second
		}
		return deck.ServiceSource{
			URL:    d.ServiceURL,
			Prompt: d.Prompt,
			Client: &http.Client{Timeout: timeout},
		}
	case d.Path != "":
		return deck.FileSource{Path: d.Path}
	default:
		return nil
	}
}

// loadDeck fills the holder from the configured source.
func (a *AppContext) loadDeck(ctx context.Context) error {
	if a.Source == nil {
		return newCommandError("load deck", "no deck configured", errNoDeck,
			"Pass --deck FILE or --service URL, or set deck.path in the settings file.")
	}
	if _, err := a.Holder.Reload(ctx, a.Source); err != nil {
		return newCommandError("load deck", a.Source.String(), err,
			"Check that the deck is a JSON or YAML array of slides.")
	}
	slides := a.Holder.Slides()
	for _, issue := range slides.Issues() {
		a.Log.Warnw("slide kept as placeholder", "source", a.Source.String(), "slide", issue.Index+1, "type", issue.Tag, "error", issue.Err.Error())
	}
	a.Log.Infow("deck loaded", "source", a.Source.String(), "slides", len(slides))
	return nil
}

func configLabel(path string) string {
	if path == "" {
		return defaultConfigHint
	}
	return path
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// bindDeckFlags registers the deck override flags shared by several commands.
func bindDeckFlags(flags *deckFlags, set *pflag.FlagSet) {
	set.StringVar(&flags.path, "deck", "", "Deck file (JSON or YAML)")
	set.StringVar(&flags.serviceURL, "service", "", "Content service URL that returns a deck")
	set.StringVar(&flags.prompt, "prompt", "", "Prompt sent to the content service")
	set.StringVar(&flags.theme, "theme", "", "Starting theme")
}
