package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForURL(t *testing.T) {
	url := "https://example.com/article"
	p := ForURL(url)

	assert.Contains(t, p, url)
	assert.Contains(t, p, "URL")
	assert.Contains(t, p, `"status"`)
	assert.Contains(t, p, "Suspicious")
}

func TestForTitle(t *testing.T) {
	title := "Scientists discover water on Mars"
	p := ForTitle(title)

	assert.Contains(t, p, title)
	assert.Contains(t, p, "Title")
	assert.Contains(t, p, `"explanation"`)
}

func TestCleanURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain URL untouched",
			input:    "https://example.com/a/b?x=1",
			expected: "https://example.com/a/b?x=1",
		},
		{
			name:     "whitespace stripped",
			input:    "  https://example.com \n",
			expected: "https://example.com",
		},
		{
			name:     "control characters stripped",
			input:    "https://example.com/\x00\x1bpath",
			expected: "https://example.com/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanURL(tt.input))
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "Plain headline",
			expected: "Plain headline",
		},
		{
			name:     "html stripped",
			input:    "<b>Bold</b> claim",
			expected: "Bold claim",
		},
		{
			name:     "newlines collapsed",
			input:    "line one\nline two",
			expected: "line one line two",
		},
		{
			name:     "surrounding space trimmed",
			input:    "   padded   headline   ",
			expected: "padded headline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanTitle(tt.input))
		})
	}
}

func TestCleanTitleCapsLength(t *testing.T) {
	long := strings.Repeat("a", MaxInputLen+500)
	assert.Len(t, CleanTitle(long), MaxInputLen)
}
