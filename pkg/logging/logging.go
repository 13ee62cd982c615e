package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"gitlab.com/lexdraft/lexdraft-backend/pkg/env"
)

const DefaultExcerptLen = 80

// Setup builds the process logger writing to stderr; stdout carries command
// output.
func Setup(mode env.Mode) *slog.Logger {
	return New(os.Stderr, mode)
}

func New(w io.Writer, mode env.Mode) *slog.Logger {
	opts := &slog.HandlerOptions{Level: mode.SlogLevel()}

	var handler slog.Handler
	if mode.Human() {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("mode", mode.String())
}

// Excerpt shortens document text for logging: newlines are flattened and at
// most n runes are kept, followed by "…" when something was cut.
func Excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if n <= 0 {
		n = DefaultExcerptLen
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	offset := 0
	for count := 0; count < n && offset < len(s); count++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}

	return s[:offset] + "…"
}
