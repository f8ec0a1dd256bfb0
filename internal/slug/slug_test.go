package slug

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		existing []string
		want     string
	}{
		{
			name:  "basic title",
			title: "Hello, World!",
			want:  "hello-world",
		},
		{
			name:     "collision appends suffix",
			title:    "Breaking News",
			existing: []string{"breaking-news"},
			want:     "breaking-news-1",
		},
		{
			name:     "second collision increments",
			title:    "Breaking News",
			existing: []string{"breaking-news", "breaking-news-1"},
			want:     "breaking-news-2",
		},
		{
			name:  "underscores and runs of spaces collapse",
			title: "some_title   with   gaps",
			want:  "some-title-with-gaps",
		},
		{
			name:  "surrounding whitespace trimmed",
			title: "  Padded Title  ",
			want:  "padded-title",
		},
		{
			name:  "punctuation stripped",
			title: "What's new? (2026 edition)",
			want:  "whats-new-2026-edition",
		},
		{
			name:  "empty title falls back",
			title: "!!!",
			want:  "news",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(tc.existing)
			assert.Equal(t, tc.want, g.Generate(tc.title))
		})
	}
}

func TestGenerate_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("very long title ", 20)

	g := NewGenerator(nil)
	first := g.Generate(long)
	require.LessOrEqual(t, len(first), MaxLength)

	// Colliding long title must re-truncate so the suffix still fits.
	second := g.Generate(long)
	require.LessOrEqual(t, len(second), MaxLength)
	require.True(t, strings.HasSuffix(second, "-1"))
	require.NotEqual(t, first, second)
}

func TestGenerate_InjectiveWithinBatch(t *testing.T) {
	g := NewGenerator([]string{"breaking-news"})

	seen := map[string]bool{"breaking-news": true}
	for i := 0; i < 50; i++ {
		s := g.Generate("Breaking News")
		require.False(t, seen[s], "duplicate slug %q on iteration %d", s, i)
		require.LessOrEqual(t, len(s), MaxLength)
		seen[s] = true
	}
}

func TestGenerate_OwnSlugExcludedKeepsSlug(t *testing.T) {
	// Updating an item with an unchanged title: its own slug is not part of
	// the snapshot, so no spurious suffix appears.
	others := []string{"other-article", "another-one"}
	g := NewGenerator(others)
	assert.Equal(t, "breaking-news", g.Generate("Breaking News"))
}

func TestGenerate_DistinctTitlesStayDistinct(t *testing.T) {
	g := NewGenerator(nil)
	for i := 0; i < 10; i++ {
		want := fmt.Sprintf("article-%d", i)
		assert.Equal(t, want, g.Generate(fmt.Sprintf("Article %d", i)))
	}
}
