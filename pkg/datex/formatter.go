package datex

import (
	"strconv"
	"strings"
	"time"
)

// Labels are the sentinel strings shown instead of a date.
type Labels struct {
	NoDate  string
	Year    func(year int) string
	Invalid string
}

var DefaultLabels = Labels{
	NoDate:  "No date",
	Year:    func(year int) string { return "Year " + strconv.Itoa(year) },
	Invalid: DefaultFallback,
}

var defaultFormatter = NewFormatter(DefaultLabels)

// Formatter formats dates with a fixed English layout and configurable
// sentinel labels. The zero value is not usable, use NewFormatter.
type Formatter struct {
	labels Labels
}

// NewFormatter fills missing labels from DefaultLabels.
func NewFormatter(labels Labels) *Formatter {
	if labels.NoDate == "" {
		labels.NoDate = DefaultLabels.NoDate
	}
	if labels.Year == nil {
		labels.Year = DefaultLabels.Year
	}
	if labels.Invalid == "" {
		labels.Invalid = DefaultLabels.Invalid
	}

	return &Formatter{labels: labels}
}

// WithFallback returns a copy of f that shows label for unreadable dates.
// An empty label keeps the current one.
func (f *Formatter) WithFallback(label string) *Formatter {
	labels := f.labels
	if label != "" {
		labels.Invalid = label
	}

	return &Formatter{labels: labels}
}

// Format resolves input in this order: empty input, normalized partial date,
// directly parsed date, salvaged year, the Invalid label.
func (f *Formatter) Format(input string) string {
	fb := f.labels.Invalid

	s := strings.TrimSpace(input)
	if s == "" {
		return f.labels.NoDate
	}

	if normalized, ok := NormalizeIncompleteDate(s); ok {
		t, err := time.Parse(ISOLayout, normalized)
		if err != nil {
			return fb
		}
		return t.Format(DisplayLayout)
	}

	if t, ok := parseDirect(s); ok {
		return t.Format(DisplayLayout)
	}

	if y, ok := SalvageYear(s); ok {
		return f.labels.Year(y)
	}

	return fb
}
