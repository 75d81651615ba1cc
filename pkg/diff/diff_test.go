package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdentical(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified([]byte("a\nb\n"), []byte("a\nb\n"), "old", "new"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	got := Unified([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "old.js", "new.js")

	want := strings.Join([]string{
		"--- old.js",
		"+++ new.js",
		"@@ -1,3 +1,3 @@",
		" line1",
		"-line2",
		"+modified",
		" line3",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestUnifiedSplitsDistantChanges(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := 1; i <= 20; i++ {
		before = append(before, fmt.Sprintf("line%d", i))
		after = append(after, fmt.Sprintf("line%d", i))
	}
	after[1] = "changed2"
	after[17] = "changed18"

	got := Unified([]byte(strings.Join(before, "\n")+"\n"), []byte(strings.Join(after, "\n")+"\n"), "a", "b")

	assert.Equal(t, 2, strings.Count(got, "@@ -"))
	assert.Contains(t, got, "@@ -1,5 +1,5 @@")
	assert.Contains(t, got, "@@ -15,6 +15,6 @@")
	assert.NotContains(t, got, " line10\n")
}

func TestUnifiedFromEmpty(t *testing.T) {
	t.Parallel()

	got := Unified(nil, []byte("new content\n"), "a", "b")
	assert.Contains(t, got, "@@ -0,0 +1,1 @@")
	assert.Contains(t, got, "+new content")
}

func TestUnifiedTruncates(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := 0; i < 11000; i++ {
		before = append(before, "expected line")
		if i%2 == 0 {
			after = append(after, "actual line")
		} else {
			after = append(after, "expected line")
		}
	}

	got := Unified([]byte(strings.Join(before, "\n")), []byte(strings.Join(after, "\n")), "a", "b")
	assert.Contains(t, got, truncateMessage)
	assert.LessOrEqual(t, strings.Count(got, "\n"), maxDiffLines+1)
}
