package timeline

import (
	"slices"
	"strconv"

	"gitlab.com/lexdraft/lexdraft-backend/pkg/datex"
)

// UndatedYear is the YearGroup key of events without a usable date.
const UndatedYear = 0

// Sort orders events by date in place. Events without a usable date go after
// the dated ones; equal dates keep their original relative order.
func Sort(events []*Event) {
	slices.SortStableFunc(events, func(a, b *Event) int {
		return datex.Compare(a.date, b.date)
	})
}

// Timeline is an ordered set of events from one or more documents.
type Timeline struct {
	events []*Event
}

func New(events ...*Event) *Timeline {
	t := &Timeline{events: slices.Clone(events)}
	Sort(t.events)
	return t
}

func (t *Timeline) Add(events ...*Event) {
	t.events = append(t.events, events...)
	Sort(t.events)
}

func (t *Timeline) Len() int {
	return len(t.events)
}

func (t *Timeline) Events() []*Event {
	return slices.Clone(t.events)
}

type YearGroup struct {
	Year   int      `json:"year"`
	Events []*Event `json:"-"`
}

// ByYear groups the ordered events by the year of their normalized date.
// Undated events form the last group with Year set to UndatedYear.
func (t *Timeline) ByYear() []YearGroup {
	var (
		groups  []YearGroup
		undated []*Event
	)

	for _, e := range t.events {
		normalized, ok := e.NormalizedDate()
		if !ok {
			undated = append(undated, e)
			continue
		}

		year, _ := strconv.Atoi(normalized[:4])
		if n := len(groups); n > 0 && groups[n-1].Year == year {
			groups[n-1].Events = append(groups[n-1].Events, e)
			continue
		}
		groups = append(groups, YearGroup{Year: year, Events: []*Event{e}})
	}

	if len(undated) > 0 {
		groups = append(groups, YearGroup{Year: UndatedYear, Events: undated})
	}

	return groups
}

// Views returns the display projection of every event, in order.
func (t *Timeline) Views(f *datex.Formatter) []View {
	views := make([]View, 0, len(t.events))
	for _, e := range t.events {
		views = append(views, e.ViewWith(f))
	}
	return views
}
