// Package contentx normalizes document text received from the drafting backend.
//
// Generated text reaches us either with real newlines or with literal escape
// sequences (a backslash followed by n) after passing through JSON twice, and
// is often wrapped at arbitrary columns. The functions here make both shapes
// render the same way.
package contentx

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var apiNewlineReplacer = strings.NewReplacer(
	`\r\n`, "\n",
	`\n`, "\n",
)

var (
	reCRLF              = regexp.MustCompile(`\r+\n`)
	reExcessNewlines    = regexp.MustCompile(`\n{3,}`)
	reMidSentenceBreak  = regexp.MustCompile(`([^\n\s])\n([a-z0-9,;:])`)
	reNumberedAfterStop = regexp.MustCompile(`([.!?])\n(\d+\.[ \t]*[A-Z])`)
	reNumberedLowercase = regexp.MustCompile(`(\d+\.)\n([a-z])`)
	reHorizontalSpace   = regexp.MustCompile(`[ \t]+`)
	reTrailingSpace     = regexp.MustCompile(`(?m)[ \t]+$`)
)

type options struct {
	preserveSingleNewlines bool
}

type Option func(*options)

// WithPreserveSingleNewlines keeps every single line break of the source.
// History views use it because they render each line the API sent.
func WithPreserveSingleNewlines(preserve bool) Option {
	return func(o *options) {
		o.preserveSingleNewlines = preserve
	}
}

// NormalizeAPINewlines turns literal \r\n and \n sequences into real newlines
// and CRLF into LF. A run of carriage returns before LF is dropped as a whole
// so that applying it twice gives the same result as applying it once.
func NormalizeAPINewlines(content string) string {
	if content == "" {
		return content
	}

	content = apiNewlineReplacer.Replace(content)
	return reCRLF.ReplaceAllString(content, "\n")
}

// NormalizeAPINewlinesValue is NormalizeAPINewlines for loosely typed JSON
// values. Anything that is not a string is returned unchanged.
func NormalizeAPINewlinesValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	return NormalizeAPINewlines(s)
}

// NormalizeContentLineBreaks decodes escaped newlines, limits blank lines to a
// single paragraph break and, unless single newlines are preserved, joins lines
// that were wrapped mid-sentence. Per-line trailing whitespace and surrounding
// whitespace are trimmed.
//
// Empty or whitespace-only content is returned unchanged.
func NormalizeContentLineBreaks(content string, opts ...Option) string {
	if strings.TrimSpace(content) == "" {
		return content
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := NormalizeAPINewlines(content)
	s = reExcessNewlines.ReplaceAllString(s, "\n\n")

	if !o.preserveSingleNewlines {
		s = reMidSentenceBreak.ReplaceAllString(s, "$1 $2")
		s = reNumberedAfterStop.ReplaceAllString(s, "$1 $2")
		s = reNumberedLowercase.ReplaceAllString(s, "$1 $2")
	}

	s = reHorizontalSpace.ReplaceAllString(s, " ")
	s = reExcessNewlines.ReplaceAllString(s, "\n\n")
	s = reTrailingSpace.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// NormalizeTitle cleans a single-line value such as a document or event title:
// escapes are decoded, the string is NFC normalized, control characters are
// dropped and any whitespace run becomes one space.
func NormalizeTitle(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFC.String(NormalizeAPINewlines(s))
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if r == '\u007f' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
