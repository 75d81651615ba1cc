// Package editor owns the live style configuration and serializes edits to it.
package editor

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/slidepreview/internal/contrast"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/slidepreview/internal/logger"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

// ThemeLookup resolves theme names.
type ThemeLookup interface {
	Get(name string) (style.Theme, bool)
}

// Change describes one applied edit. Config is a snapshot taken after the edit.
type Change struct {
	Version uint64
	Field   string
	Theme   string
	Config  style.Configuration
}

// Store holds the process-lifetime configuration. Each write is fully
// applied and published before the next write starts; readers get copies.
type Store struct {
	writeMu sync.Mutex

	mu      sync.RWMutex
	cfg     style.Configuration
	theme   string
	version uint64

	themes ThemeLookup
	log    *logger.Logger

	subMu  sync.RWMutex
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(Change)
}

// NewStore starts from the named theme.
func NewStore(themes ThemeLookup, initial string, log *logger.Logger) (*Store, error) {
	if initial == "" {
		initial = style.DefaultTheme
	}
	theme, ok := themes.Get(initial)
	if !ok {
		return nil, slideerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", initial), nil)
	}
	return &Store{
		cfg:    theme.Config.Clone(),
		theme:  theme.Name,
		themes: themes,
		log:    log.Named("editor"),
	}, nil
}

// Snapshot returns a deep copy of the current configuration.
func (s *Store) Snapshot() style.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Theme returns the name of the theme last applied.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Version increases by one with every applied edit.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers fn for every applied change, in version order. fn runs
// on the writer's goroutine and must not call back into the Store's setters.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// ApplyTheme replaces the whole configuration with the named theme.
func (s *Store) ApplyTheme(name string) (Change, error) {
	theme, ok := s.themes.Get(name)
	if !ok {
		return Change{}, slideerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", name), nil)
	}
	return s.write("theme", func(cfg *style.Configuration, current *string) error {
		*cfg = theme.Config.Clone()
		*current = theme.Name
		return nil
	})
}

// SetColor patches one existing color role.
func (s *Store) SetColor(role, hex string) (Change, error) {
	hex = strings.TrimSpace(hex)
	if !contrast.Valid(hex) {
		return Change{}, slideerrors.NewValidationError("colors."+role, fmt.Sprintf("%q is not a 3 or 6 digit hex color", hex), nil)
	}

	// Checked under the write lock so a concurrent theme switch cannot drop
	// the role between the check and the write.
	return s.write("colors."+role, func(cfg *style.Configuration, _ *string) error {
		if _, known := cfg.Colors[role]; !known {
			return slideerrors.NewValidationError("colors."+role, fmt.Sprintf("unknown color role %q", role), nil)
		}
		cfg.Colors[role] = hex
		return nil
	})
}

// SetFontFamily selects one of style.FontFaces.
func (s *Store) SetFontFamily(face string) (Change, error) {
	canonical := ""
	for _, known := range style.FontFaces {
		if strings.EqualFold(strings.TrimSpace(face), known) {
			canonical = known
			break
		}
	}
	if canonical == "" {
		return Change{}, slideerrors.NewValidationError("fonts.family", fmt.Sprintf("unsupported font face %q", face), nil)
	}
	return s.write("fonts.family", func(cfg *style.Configuration, _ *string) error {
		cfg.Fonts.Family = canonical
		return nil
	})
}

// SetFontSizeMultiplier accepts values in [0.8, 1.5], snapped to 0.05 steps.
func (s *Store) SetFontSizeMultiplier(m float64) (Change, error) {
	const eps = 1e-9
	if math.IsNaN(m) || m < style.MinMultiplier-eps || m > style.MaxMultiplier+eps {
		return Change{}, slideerrors.NewValidationError(
			"fonts.fontSizeMultiplier",
			fmt.Sprintf("multiplier %g outside [%g, %g]", m, style.MinMultiplier, style.MaxMultiplier),
			nil,
		)
	}
	snapped := style.SnapMultiplier(m)
	return s.write("fonts.fontSizeMultiplier", func(cfg *style.Configuration, _ *string) error {
		cfg.Fonts.SizeMultiplier = snapped
		return nil
	})
}

// SetFooterText replaces the footer.
func (s *Store) SetFooterText(text string) Change {
	change, _ := s.write("footer_text", func(cfg *style.Configuration, _ *string) error {
		cfg.FooterText = text
		return nil
	})
	return change
}

// SetLogo sets a logo slot to an http(s) URL or a data URL. Empty clears it.
func (s *Store) SetLogo(slot, value string) (Change, error) {
	value = strings.TrimSpace(value)
	if err := checkSlot(slot); err != nil {
		return Change{}, err
	}
	if value != "" && !validLogoRef(value) {
		return Change{}, slideerrors.NewValidationError("logos."+slot, "logo must be an http(s) URL or a data URL", nil)
	}
	return s.write("logos."+slot, func(cfg *style.Configuration, _ *string) error {
		setLogo(cfg, slot, value)
		return nil
	})
}

// write applies one edit to a copy of the configuration and publishes it. An
// error from apply leaves the store untouched.
func (s *Store) write(field string, apply func(cfg *style.Configuration, theme *string) error) (Change, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	next := s.cfg.Clone()
	if next.Colors == nil {
		next.Colors = map[string]string{}
	}
	theme := s.theme
	if err := apply(&next, &theme); err != nil {
		s.mu.Unlock()
		return Change{}, err
	}
	s.cfg = next
	s.theme = theme
	s.version++
	change := Change{Version: s.version, Field: field, Theme: theme, Config: next.Clone()}
	s.mu.Unlock()

	s.log.Infow("style updated", "field", field, "version", change.Version, "theme", theme)

	s.subMu.RLock()
	subs := append([]subscriber(nil), s.subs...)
	s.subMu.RUnlock()
	for _, sub := range subs {
		sub.fn(change)
	}
	return change, nil
}

func checkSlot(slot string) error {
	switch slot {
	case style.LogoHeader, style.LogoClosing:
		return nil
	default:
		return slideerrors.NewValidationError("logos", fmt.Sprintf("unknown logo slot %q", slot), nil)
	}
}

func setLogo(cfg *style.Configuration, slot, value string) {
	if slot == style.LogoHeader {
		cfg.Logos.Header = value
		return
	}
	cfg.Logos.Closing = value
}

func validLogoRef(value string) bool {
	if strings.HasPrefix(value, "data:image/") {
		return strings.Contains(value, ",")
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
