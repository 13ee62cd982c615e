package env

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Mode
		wantErr  bool
	}{
		{name: "dev", input: "dev", expected: Dev},
		{name: "upper case", input: "PROD", expected: Prod},
		{name: "padded", input: " local ", expected: Local},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "staging", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMode_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Dev.SlogLevel())
	assert.Equal(t, slog.LevelDebug, Test.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Prod.SlogLevel())
}

func TestSetMode(t *testing.T) {
	prev := Current()
	t.Cleanup(func() { SetMode(prev) })

	SetMode(Prod)
	assert.Equal(t, Prod, Current())
	assert.Panics(t, func() { SetMode("staging") })
}
