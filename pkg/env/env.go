package env

import (
	"fmt"
	"log/slog"
	"strings"
)

type Mode string

const (
	Test  Mode = "test"
	Local Mode = "local"
	Dev   Mode = "dev"
	Prod  Mode = "prod"
)

var currentMode = Test

func SetMode(mode Mode) {
	if !mode.Validate() {
		panic("invalid mode: " + mode.String())
	}
	currentMode = mode
}

func Current() Mode {
	return currentMode
}

// ParseMode accepts a mode name in any case, surrounding spaces ignored.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.Validate() {
		return "", fmt.Errorf("invalid mode %q: want one of test, local, dev, prod", s)
	}
	return mode, nil
}

func (e Mode) String() string {
	return string(e)
}

func (e Mode) Validate() bool {
	switch e {
	case Local, Test, Dev, Prod:
		return true
	default:
		return false
	}
}

// Human reports whether logs should be written for people rather than
// collectors.
func (e Mode) Human() bool {
	return e == Local || e == Test
}

func (e Mode) SlogLevel() slog.Level {
	switch e {
	case Test, Local, Dev:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
