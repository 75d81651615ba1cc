package themes

import (
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

func TestCatalogSeededWithBuiltins(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	assert.Equal(t, []string{"google", "midnight", "sunset"}, c.Names())

	theme, ok := c.Get("google")
	require.True(t, ok)
	theme.Config.Colors[style.ColorPrimaryBlue] = "#000"

	again, _ := c.Get("google")
	assert.Equal(t, "#1A73E8", again.Config.Color(style.ColorPrimaryBlue))

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestCatalogNextWraps(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	assert.Equal(t, "midnight", c.Next("google"))
	assert.Equal(t, "google", c.Next("sunset"))
	assert.Equal(t, "google", c.Next("unknown"))
}

func TestCatalogAddValidates(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	bad := style.Theme{Name: "bad", Config: style.Default()}
	bad.Config.Colors[style.ColorGoogleRed] = "crimson"
	require.Error(t, c.Add(bad))

	good := style.Theme{Name: "ocean", Config: style.Default()}
	require.NoError(t, c.Add(good))
	assert.Contains(t, c.Names(), "ocean")

	require.NoError(t, c.Add(style.Theme{Name: "google", Config: style.Default()}))
	assert.Len(t, c.Names(), 4)
}

func TestLoadDirMergesOntoDefaults(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/packs/ocean.yaml", []byte(`
colors:
  primary_blue: "#006994"
fonts:
  family: Lato
footer_text: Ocean Inc.
`), 0o644))
	require.NoError(t, util.WriteFile(fs, "/packs/forest.yml", []byte(`
name: forest
colors:
  google_green: "#228B22"
`), 0o644))
	require.NoError(t, util.WriteFile(fs, "/packs/README.md", []byte("ignored"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/.git/config.yaml", []byte("not: a theme"), 0o644))

	themes, err := LoadDir(fs, "/")
	require.NoError(t, err)
	require.Len(t, themes, 2)

	assert.Equal(t, "forest", themes[0].Name)
	assert.Equal(t, "#228B22", themes[0].Config.Color(style.ColorGoogleGreen))
	assert.Equal(t, "#1A73E8", themes[0].Config.Color(style.ColorPrimaryBlue))

	assert.Equal(t, "ocean", themes[1].Name)
	assert.Equal(t, "#006994", themes[1].Config.Color(style.ColorPrimaryBlue))
	assert.Equal(t, "Lato", themes[1].Config.Fonts.Family)
	assert.Equal(t, 1.0, themes[1].Config.Fonts.SizeMultiplier)
	assert.InDelta(t, 45.0, themes[1].Config.Fonts.Sizes[style.SizeTitle], 1e-9)
	assert.Equal(t, "Ocean Inc.", themes[1].Config.FooterText)

	c := NewCatalog()
	require.NoError(t, c.AddAll(themes))
	assert.Equal(t, []string{"forest", "google", "midnight", "ocean", "sunset"}, c.Sorted())
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("colors: [unclosed"), "broken.yaml")
	var pe *slideerrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "broken.yaml", pe.Path)

	_, err = Decode([]byte("colors:\n  primary_blue: blue\n"), "invalid.yaml")
	var ve *slideerrors.ValidationError
	require.True(t, errors.As(err, &ve))

	_, err = Decode([]byte("name: Has Spaces\n"), "named.yaml")
	require.Error(t, err)
}
