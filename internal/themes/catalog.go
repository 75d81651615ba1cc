// Package themes keeps the named themes the editor can switch between.
package themes

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
)

// Catalog is a concurrency-safe set of themes, seeded with the built-ins.
type Catalog struct {
	mu     sync.RWMutex
	themes map[string]style.Theme
	order  []string
}

// NewCatalog returns a catalog holding style.Builtins.
func NewCatalog() *Catalog {
	c := &Catalog{themes: map[string]style.Theme{}}
	for _, t := range style.Builtins() {
		c.put(t)
	}
	return c
}

// Add validates and stores a theme. A theme with an existing name replaces it.
func (c *Catalog) Add(t style.Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(t)
	return nil
}

func (c *Catalog) put(t style.Theme) {
	if _, exists := c.themes[t.Name]; !exists {
		c.order = append(c.order, t.Name)
	}
	t.Config = t.Config.Clone()
	c.themes[t.Name] = t
}

// Get returns a copy of the named theme.
func (c *Catalog) Get(name string) (style.Theme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.themes[name]
	if !ok {
		return style.Theme{}, false
	}
	t.Config = t.Config.Clone()
	return t, true
}

// Names lists themes in insertion order, built-ins first.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}

// Next returns the theme after current in insertion order, wrapping around.
func (c *Catalog) Next(current string) string {
	names := c.Names()
	if len(names) == 0 {
		return current
	}
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Sorted lists theme names alphabetically.
func (c *Catalog) Sorted() []string {
	names := c.Names()
	sort.Strings(names)
	return names
}
