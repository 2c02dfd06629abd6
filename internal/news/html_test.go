package news

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Ampersand", "Law &amp; Order", "Law & Order"},
		{"Quotes", "&quot;Breaking&quot; News", `"Breaking" News`},
		{"Apostrophe", "It&#039;s Official", "It's Official"},
		{"AngleBrackets", "1 &lt; 2 &gt; 0", "1 < 2 > 0"},
		{"Ellipsis", "More to come&hellip;", "More to come..."},
		{"Plain", "No entities here", "No entities here"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decodeEntities(tt.input))
		})
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Paragraph", "<p>Hello world</p>\n", "Hello world"},
		{"Nested", "<div><p>One <strong>two</strong> three</p></div>", "One two three"},
		{"Entities", "<p>Fish &amp; Chips</p>", "Fish & Chips"},
		{"PlainText", "already plain", "already plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripHTML(tt.input))
		})
	}
}

func TestReadTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"Empty", "", 1},
		{"Short", words(50), 1},
		{"ExactlyOneMinute", words(200), 1},
		{"JustOver", words(201), 2},
		{"ThreeMinutes", words(600), 3},
		{"IgnoresMarkup", "<p>" + words(200) + "</p>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, readTime(tt.content))
		})
	}
}
