package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"

	"gitlab.com/lexdraft/lexdraft-backend/internal/domain/document"
	"gitlab.com/lexdraft/lexdraft-backend/internal/domain/timeline"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/datex"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/errorx"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/logging"
)

type Kind string

const (
	KindTimeline Kind = "timeline"
	KindDocument Kind = "document"
)

type Options struct {
	Kind   Kind
	View   document.ViewMode
	Labels datex.Labels
}

type yearSummary struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type timelineOutput struct {
	Events []timeline.View `json:"events"`
	Years  []yearSummary   `json:"years"`
}

func run(ctx context.Context, opts Options, r io.Reader, w io.Writer) error {
	formatter := datex.NewFormatter(opts.Labels)

	var out any
	switch opts.Kind {
	case KindTimeline:
		tl, err := readTimeline(ctx, r)
		if err != nil {
			return err
		}
		out = timelineOutput{
			Events: tl.Views(formatter),
			Years:  summarizeYears(tl, formatter),
		}
		slog.InfoContext(ctx, "Timeline normalized", "events", tl.Len())
	case KindDocument:
		doc, err := readDocument(ctx, r)
		if err != nil {
			return err
		}
		view := doc.View(opts.View, formatter)
		out = view
		slog.InfoContext(ctx, "Document normalized", "id", doc.ID().String(), "mode", view.Mode)
	default:
		return errorx.NewUnsupportedKind(string(opts.Kind))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errorx.NewInternalError().WithCause(err)
	}

	return nil
}

func readTimeline(ctx context.Context, r io.Reader) (*timeline.Timeline, error) {
	var args []timeline.CreateArgs
	if err := json.NewDecoder(r).Decode(&args); err != nil {
		return nil, errorx.NewMalformedJSON().WithCause(err)
	}

	events := make([]*timeline.Event, 0, len(args))
	for i, a := range args {
		e, err := timeline.NewEvent(a)
		if err != nil {
			return nil, errorx.NewValidationFieldFailed("events[" + strconv.Itoa(i) + "]").WithCause(err)
		}
		if !e.HasValidDate() {
			slog.DebugContext(ctx, "Event without usable date", "index", i, "date", e.Date(), "title", logging.Excerpt(e.Title(), 0))
		}
		events = append(events, e)
	}

	return timeline.New(events...), nil
}

func readDocument(ctx context.Context, r io.Reader) (*document.Document, error) {
	var args document.CreateArgs
	if err := json.NewDecoder(r).Decode(&args); err != nil {
		return nil, errorx.NewMalformedJSON().WithCause(err)
	}

	doc, err := document.NewDocument(args)
	if err != nil {
		return nil, errorx.NewValidationFailed().WithCause(err)
	}

	slog.DebugContext(ctx, "Document decoded", "title", doc.Title(), "content", logging.Excerpt(doc.Content(), 0))

	return doc, nil
}

func summarizeYears(tl *timeline.Timeline, f *datex.Formatter) []yearSummary {
	groups := tl.ByYear()
	out := make([]yearSummary, 0, len(groups))
	for _, g := range groups {
		label := strconv.Itoa(g.Year)
		if g.Year == timeline.UndatedYear {
			label = f.Format("")
		}
		out = append(out, yearSummary{Year: g.Year, Label: label, Count: len(g.Events)})
	}
	return out
}
