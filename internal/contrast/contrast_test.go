package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#abc", want: "#aabbcc", ok: true},
		{in: "ABC", want: "#aabbcc", ok: true},
		{in: "#1A73E8", want: "#1a73e8", ok: true},
		{in: " 1a73e8 ", want: "#1a73e8", ok: true},
		{in: "#1234", ok: false},
		{in: "#ggg", ok: false},
		{in: "", ok: false},
		{in: "#1234567", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := Normalize(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestLuminanceExtremes(t *testing.T) {
	t.Parallel()

	white, ok := Luminance("#FFFFFF")
	require.True(t, ok)
	assert.InDelta(t, 1.0, white, 1e-9)

	black, ok := Luminance("#000")
	require.True(t, ok)
	assert.InDelta(t, 0.0, black, 1e-9)

	r, ok := Ratio("#000000", "#fff")
	require.True(t, ok)
	assert.InDelta(t, 21.0, r, 1e-9)
}

func TestShorthandMatchesLongForm(t *testing.T) {
	t.Parallel()

	short, ok := Luminance("#abc")
	require.True(t, ok)
	long, ok := Luminance("#aabbcc")
	require.True(t, ok)
	assert.InDelta(t, long, short, 1e-9)
}

func TestResolveTextColorWhiteOnWhite(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#000000", ResolveTextColor("#FFFFFF", "#FFFFFF"))
}

func TestResolveTextColorPrimaryBlueSelfContrast(t *testing.T) {
	t.Parallel()

	got := ResolveTextColor("#1A73E8", "#1A73E8")

	withWhite, _ := Ratio("#1A73E8", White)
	withBlack, _ := Ratio("#1A73E8", Black)
	require.Less(t, withWhite, MinRatio+0.1)

	// The higher of the two candidates wins; for this blue black edges out white.
	if withWhite > withBlack {
		require.Equal(t, White, got)
	} else {
		require.Equal(t, Black, got)
	}
	require.Equal(t, Black, got)
}

func TestResolveTextColorKeepsReadablePreference(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#333333", ResolveTextColor("#FFFFFF", "#333333"))
	require.Equal(t, "e8eaed", ResolveTextColor("#202124", "e8eaed"))
}

func TestResolveTextColorDarkBackground(t *testing.T) {
	t.Parallel()

	require.Equal(t, White, ResolveTextColor("#202124", "#333333"))
}

func TestResolveTextColorMalformedFailsClosed(t *testing.T) {
	t.Parallel()

	require.Equal(t, Black, ResolveTextColor("not-a-color", "#FFFFFF"))
	require.Equal(t, Black, ResolveTextColor("#FFFFFF", "#12"))
	require.Equal(t, Black, ResolveTextColor("", ""))
}

func TestResolveTextColorGuaranteesContrastAndIdempotence(t *testing.T) {
	t.Parallel()

	palette := []string{
		"#FFFFFF", "#000000", "#1A73E8", "#34A853", "#FBBC04", "#EA4335",
		"#9E9E9E", "#F8F9FA", "#202124", "#777", "#abc", "#3c4043", "#E8EAED",
	}

	for _, bg := range palette {
		for _, fg := range palette {
			got := ResolveTextColor(bg, fg)

			best := 0.0
			for _, candidate := range []string{fg, White, Black} {
				r, _ := Ratio(bg, candidate)
				if r > best {
					best = r
				}
			}
			if best >= MinRatio {
				r, ok := Ratio(bg, got)
				require.True(t, ok)
				assert.GreaterOrEqual(t, r, MinRatio, "bg=%s fg=%s got=%s", bg, fg, got)
			}

			if r, _ := Ratio(bg, fg); r >= MinRatio {
				assert.Equal(t, fg, got)
			}

			assert.Equal(t, got, ResolveTextColor(bg, got), "idempotence bg=%s fg=%s", bg, fg)
		}
	}
}
