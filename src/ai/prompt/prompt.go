// Package prompt builds the fixed prompts sent to the generative model.
// User input is sanitized before interpolation so that pasted HTML or
// control characters cannot smuggle extra instructions into the prompt.
package prompt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// MaxInputLen caps the interpolated input, in runes.
const MaxInputLen = 2048

const urlTemplate = `You are a careful fact-checking assistant. A user wants to know whether the article at the following URL makes a truthful claim.

URL: %s

Assess the claim made by the page at this URL using what you know about the topic and the source. Reply with a JSON object with exactly two fields:
- "status": one of "True", "False" or "Suspicious"
- "explanation": a short explanation of the verdict`

const titleTemplate = `You are a careful fact-checking assistant. A user wants to know whether a news headline makes a truthful claim.

Title: %s

Assess the claim made by this headline using what you know about the topic. Reply with a JSON object with exactly two fields:
- "status": one of "True", "False" or "Suspicious"
- "explanation": a short explanation of the verdict`

// SystemInstruction is shared across providers.
const SystemInstruction = "You are a fact-checking assistant. Always answer with a single JSON object containing a status verdict and an explanation."

var strict = bluemonday.StrictPolicy()

// ForURL builds the URL-variant prompt.
func ForURL(rawURL string) string {
	return fmt.Sprintf(urlTemplate, CleanURL(rawURL))
}

// ForTitle builds the title-variant prompt.
func ForTitle(title string) string {
	return fmt.Sprintf(titleTemplate, CleanTitle(title))
}

// CleanURL strips whitespace and control characters from a URL. URLs are
// not passed through the HTML sanitizer so that query separators survive
// verbatim.
func CleanURL(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return truncate(s)
}

// CleanTitle strips HTML, collapses whitespace onto a single line, and
// caps the length.
func CleanTitle(s string) string {
	s = strict.Sanitize(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	return truncate(s)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxInputLen {
		return s
	}
	return string(runes[:MaxInputLen])
}
