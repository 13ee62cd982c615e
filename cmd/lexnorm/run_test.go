package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/lexdraft/lexdraft-backend/internal/domain/document"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/datex"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/errorx"
)

func TestRun_Timeline(t *testing.T) {
	input := `[
		{"date": "", "title": "Undated note"},
		{"date": "2019-03-01", "title": "Amendment", "description": "Rent\nincreased."},
		{"date": "2018-08", "title": "Lease\\nsigned"},
		{"date": "2024-00-00", "title": "Renewal"}
	]`

	var out bytes.Buffer
	err := run(context.Background(), Options{Kind: KindTimeline, Labels: datex.DefaultLabels}, strings.NewReader(input), &out)
	require.NoError(t, err)

	var got struct {
		Events []struct {
			Date         string `json:"date"`
			DisplayDate  string `json:"display_date"`
			HasValidDate bool   `json:"has_valid_date"`
			Title        string `json:"title"`
			Description  string `json:"description"`
		} `json:"events"`
		Years []yearSummary `json:"years"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	require.Len(t, got.Events, 4)
	assert.Equal(t, "Lease signed", got.Events[0].Title)
	assert.Equal(t, "2018-08-01", got.Events[0].Date)
	assert.Equal(t, "Aug 1, 2018", got.Events[0].DisplayDate)
	assert.Equal(t, "Amendment", got.Events[1].Title)
	assert.Equal(t, "Rent increased.", got.Events[1].Description)
	assert.Equal(t, "Renewal", got.Events[2].Title)
	assert.Equal(t, "Jan 1, 2024", got.Events[2].DisplayDate)
	assert.Equal(t, "Undated note", got.Events[3].Title)
	assert.Equal(t, "No date", got.Events[3].DisplayDate)
	assert.False(t, got.Events[3].HasValidDate)

	assert.Equal(t, []yearSummary{
		{Year: 2018, Label: "2018", Count: 1},
		{Year: 2019, Label: "2019", Count: 1},
		{Year: 2024, Label: "2024", Count: 1},
		{Year: 0, Label: "No date", Count: 1},
	}, got.Years)
}

func TestRun_TimelineCustomFallback(t *testing.T) {
	labels := datex.DefaultLabels
	labels.Invalid = "Unknown"

	var out bytes.Buffer
	err := run(context.Background(), Options{Kind: KindTimeline, Labels: labels}, strings.NewReader(`[{"date":"soon","title":"Hearing"}]`), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"display_date": "Unknown"`)
}

func TestRun_Document(t *testing.T) {
	input := `{"title": "NDA", "content": "The Recipient shall\nkeep the information\nconfidential.", "created_at": "2023-06"}`

	tests := []struct {
		name     string
		view     document.ViewMode
		mode     string
		expected string
	}{
		{name: "default view", view: document.ViewDefault, mode: "default", expected: "The Recipient shall keep the information confidential."},
		{name: "unset view", view: "", mode: "default", expected: "The Recipient shall keep the information confidential."},
		{name: "history view", view: document.ViewHistory, mode: "history", expected: "The Recipient shall\nkeep the information\nconfidential."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), Options{Kind: KindDocument, View: tt.view, Labels: datex.DefaultLabels}, strings.NewReader(input), &out)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &got))
			assert.Equal(t, tt.expected, got["body"])
			assert.Equal(t, tt.mode, got["mode"])
			assert.Equal(t, "Jun 1, 2023", got["display_date"])
			assert.Equal(t, "2023-06-01", got["created_at"])
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		input string
		code  errorx.Code
	}{
		{name: "malformed timeline", kind: KindTimeline, input: `[{"date":`, code: errorx.CodeMalformedJSON},
		{name: "timeline not an array", kind: KindTimeline, input: `{"date":"2018"}`, code: errorx.CodeMalformedJSON},
		{name: "invalid event", kind: KindTimeline, input: `[{"date":"2018","title":""}]`, code: errorx.CodeValidationFailed},
		{name: "malformed document", kind: KindDocument, input: `nope`, code: errorx.CodeMalformedJSON},
		{name: "invalid document", kind: KindDocument, input: `{"title":"NDA"}`, code: errorx.CodeValidationFailed},
		{name: "unknown kind", kind: Kind("pdf"), input: `{}`, code: errorx.CodeUnsupportedKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), Options{Kind: tt.kind, Labels: datex.DefaultLabels}, strings.NewReader(tt.input), &out)
			require.Error(t, err)
			assert.True(t, errorx.IsCode(err, tt.code), "got %v", err)
			assert.Empty(t, out.String())
		})
	}
}

func TestRootCmd(t *testing.T) {
	t.Setenv("MODE", "test")

	t.Run("document history from stdin", func(t *testing.T) {
		var out bytes.Buffer
		root := newRootCmd(&cli{})
		root.SetIn(strings.NewReader(`{"title":"NDA","content":"a\nb","created_at":"soon"}`))
		root.SetOut(&out)
		root.SetArgs([]string{"document", "--history", "--fallback", "Unknown"})

		require.NoError(t, root.Execute())

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "a\nb", got["body"])
		assert.Equal(t, "history", got["mode"])
		assert.Equal(t, "Unknown", got["display_date"])
	})

	t.Run("timeline from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"date":"2018-08","title":"Signed"}]`), 0o600))

		var out bytes.Buffer
		root := newRootCmd(&cli{})
		root.SetOut(&out)
		root.SetArgs([]string{"timeline", "--in", path})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), `"display_date": "Aug 1, 2018"`)
	})

	t.Run("unknown flag", func(t *testing.T) {
		root := newRootCmd(&cli{})
		root.SetArgs([]string{"timeline", "--nope"})

		err := root.Execute()
		assert.True(t, errorx.IsCode(err, errorx.CodeInvalid), "got %v", err)
	})

	t.Run("invalid mode", func(t *testing.T) {
		t.Setenv("MODE", "staging")
		root := newRootCmd(&cli{})
		root.SetIn(strings.NewReader(`[]`))
		root.SetArgs([]string{"timeline"})

		err := root.Execute()
		assert.True(t, errorx.IsCode(err, errorx.CodeInvalid), "got %v", err)
	})

	t.Run("document view flag", func(t *testing.T) {
		var out bytes.Buffer
		root := newRootCmd(&cli{})
		root.SetIn(strings.NewReader(`{"title":"NDA","content":"a\nb"}`))
		root.SetOut(&out)
		root.SetArgs([]string{"document", "--view", "History"})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), `"mode": "history"`)
	})

	t.Run("unknown view", func(t *testing.T) {
		c := &cli{}
		root := newRootCmd(c)
		root.SetIn(strings.NewReader(`{"title":"NDA","content":"a"}`))
		root.SetArgs([]string{"document", "--view", "raw"})

		err := root.Execute()
		require.True(t, errorx.IsCode(err, errorx.CodeInvalid), "got %v", err)
		assert.Contains(t, errorx.As(err).Localize(c.localizer), "Unknown view mode raw, use default or history")
	})

	t.Run("unreadable input", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.json")
		c := &cli{}
		root := newRootCmd(c)
		root.SetArgs([]string{"timeline", "--in", path})

		err := root.Execute()
		require.True(t, errorx.IsCode(err, errorx.CodeInvalid), "got %v", err)
		assert.Contains(t, errorx.As(err).Localize(c.localizer), "Cannot read input file "+path)
	})
}
