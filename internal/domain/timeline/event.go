package timeline

import (
	"encoding/json"
	"fmt"

	"github.com/ARUMANDESU/validation"
	"github.com/google/uuid"

	"gitlab.com/lexdraft/lexdraft-backend/pkg/contentx"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/datex"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/validationx"
)

type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

func (id ID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uuid.UUID(id).String())
}

// UnmarshalJSON leaves the ID zero for an empty string; the extraction
// backend omits IDs for events it has not stored yet.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*id = ID(uuid.Nil)
		return nil
	}

	uid, err := uuid.Parse(s)
	if err != nil {
		return err
	}

	*id = ID(uid)
	return nil
}

// Event is a dated fact extracted from a legal document. The date is kept
// exactly as extracted; it may be partial, a placeholder or free text.
type Event struct {
	id          ID
	date        string
	title       string
	description string
	source      string
}

type CreateArgs struct {
	ID          ID     `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

func NewEvent(args CreateArgs) (*Event, error) {
	args.Title = contentx.NormalizeTitle(args.Title)
	args.Description = contentx.NormalizeContentLineBreaks(args.Description)
	args.Source = contentx.NormalizeTitle(args.Source)

	err := validation.ValidateStruct(
		&args,
		validation.Field(&args.Title, validationx.TitleRules...),
		validation.Field(&args.Description, validationx.DescriptionRules...),
		validation.Field(&args.Source, validation.RuneLength(0, validationx.MaxTitleLen)),
	)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	id := args.ID
	if id.IsZero() {
		id = NewID()
	}

	return &Event{
		id:          id,
		date:        args.Date,
		title:       args.Title,
		description: args.Description,
		source:      args.Source,
	}, nil
}

func (e *Event) ID() ID {
	return e.id
}

func (e *Event) Date() string {
	return e.date
}

func (e *Event) Title() string {
	return e.title
}

func (e *Event) Description() string {
	return e.description
}

func (e *Event) Source() string {
	return e.source
}

func (e *Event) HasValidDate() bool {
	return datex.IsValidDate(e.date)
}

func (e *Event) NormalizedDate() (string, bool) {
	return datex.GetNormalizedDate(e.date)
}

// View is the display projection of an event.
type View struct {
	ID           ID     `json:"id"`
	Date         string `json:"date,omitempty"`
	RawDate      string `json:"raw_date"`
	DisplayDate  string `json:"display_date"`
	HasValidDate bool   `json:"has_valid_date"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Source       string `json:"source,omitempty"`
}

func (e *Event) View() View {
	return e.ViewWith(nil)
}

// ViewWith uses f for the display date; nil means English labels.
func (e *Event) ViewWith(f *datex.Formatter) View {
	if f == nil {
		f = datex.NewFormatter(datex.DefaultLabels)
	}

	normalized, _ := e.NormalizedDate()

	return View{
		ID:           e.id,
		Date:         normalized,
		RawDate:      e.date,
		DisplayDate:  f.Format(e.date),
		HasValidDate: e.HasValidDate(),
		Title:        e.title,
		Description:  e.description,
		Source:       e.source,
	}
}
