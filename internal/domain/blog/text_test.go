package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"short", "<p>湘繡</p>", 1},
		{"exactly 400 runes", strings.Repeat("繡", 400), 2},
		{"tags are not counted", "<p>" + strings.Repeat("a", 399) + "</p><br/>", 1},
		{"1000 runes", strings.Repeat("x", 1000), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.content))
		})
	}
}

func TestDeriveExcerpt(t *testing.T) {
	t.Run("short content kept whole", func(t *testing.T) {
		assert.Equal(t, "Hello world", DeriveExcerpt("<p>Hello <b>world</b></p>"))
	})

	t.Run("long content truncated at 150 runes", func(t *testing.T) {
		got := DeriveExcerpt("<div>" + strings.Repeat("針", 200) + "</div>")
		assert.Equal(t, strings.Repeat("針", 150)+"...", got)
	})

	t.Run("entities unescaped", func(t *testing.T) {
		assert.Equal(t, "Tom & Jerry's", DeriveExcerpt("<p>Tom &amp; Jerry&#39;s</p>"))
	})
}
