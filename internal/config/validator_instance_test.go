package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, validatorInstance(), validatorInstance())
}

func TestGitURLValidation(t *testing.T) {
	t.Parallel()

	v := validatorInstance()

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"space", " ", false},
		{"valid https", "https://github.com/user/repo.git", true},
		{"valid http", "http://git.example.com/project", true},
		{"ssh scheme", "ssh://git@github.com/user/repo.git", true},
		{"git scheme", "git://example.com/themes.git", true},
		{"file scheme", "file:///srv/themes", true},
		{"no host", "https:///path", false},
		{"invalid scheme", "ftp://example.com/repo.git", false},
		{"scp style", "git@github.com:user/repo.git", true},
		{"scp no colon", "git@github.com/user/repo.git", false},
		{"scp no user", "github.com:user/repo.git", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Var(tt.url, "git_url")
			assert.Equal(t, tt.expected, err == nil, "git_url(%q)", tt.url)
		})
	}
}

func TestCustomTags(t *testing.T) {
	t.Parallel()

	v := validatorInstance()

	tests := []struct {
		tag   string
		value string
		ok    bool
	}{
		{"hex_color", "#abc", true},
		{"hex_color", "#A1B2C3", true},
		{"hex_color", "red", false},
		{"theme_name", "ocean-2", true},
		{"theme_name", "-ocean", false},
		{"font_face", "google sans", true},
		{"font_face", "Comic Sans", false},
		{"log_level", "WARN", true},
		{"log_level", "verbose", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, v.Var(tt.value, tt.tag) == nil, "%s(%q)", tt.tag, tt.value)
	}
}
