package document

import (
	"encoding/json"
	"fmt"
	"strings"

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

type ViewMode string

const (
	// ViewDefault heals lines wrapped mid-sentence.
	ViewDefault ViewMode = "default"
	// ViewHistory renders every line break the backend sent.
	ViewHistory ViewMode = "history"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ViewDefault:
		return ViewDefault, nil
	case ViewHistory:
		return ViewHistory, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Document is a generated contract or other legal text. Content is kept as
// received; views normalize it on the way out.
type Document struct {
	id        ID
	title     string
	content   string
	createdAt string
}

type CreateArgs struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func NewDocument(args CreateArgs) (*Document, error) {
	args.Title = contentx.NormalizeTitle(args.Title)
	args.Content = strings.TrimSpace(args.Content)

	err := validation.ValidateStruct(
		&args,
		validation.Field(&args.Title, validationx.TitleRules...),
		validation.Field(&args.Content, validationx.ContentRules...),
	)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	id := args.ID
	if id.IsZero() {
		id = NewID()
	}

	return &Document{
		id:        id,
		title:     args.Title,
		content:   args.Content,
		createdAt: args.CreatedAt,
	}, nil
}

func (d *Document) ID() ID {
	return d.id
}

func (d *Document) Title() string {
	return d.title
}

// Content returns the text as received.
func (d *Document) Content() string {
	return d.content
}

func (d *Document) CreatedAt() string {
	return d.createdAt
}

func (d *Document) Body() string {
	return contentx.NormalizeContentLineBreaks(d.content)
}

func (d *Document) HistoryBody() string {
	return contentx.NormalizeContentLineBreaks(d.content, contentx.WithPreserveSingleNewlines(true))
}

// Paragraphs splits Body on paragraph breaks.
func (d *Document) Paragraphs() []string {
	body := d.Body()
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n\n")
}

type View struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	CreatedAt   string   `json:"created_at"`
	DisplayDate string   `json:"display_date"`
	Mode        ViewMode `json:"mode"`
	Body        string   `json:"body"`
}

// View renders the document for mode; f formats the creation date, nil means
// English labels.
func (d *Document) View(mode ViewMode, f *datex.Formatter) View {
	if f == nil {
		f = datex.NewFormatter(datex.DefaultLabels)
	}

	body := d.Body()
	if mode == ViewHistory {
		body = d.HistoryBody()
	} else {
		mode = ViewDefault
	}

	createdAt, _ := datex.GetNormalizedDate(d.createdAt)

	return View{
		ID:          d.id,
		Title:       d.title,
		CreatedAt:   createdAt,
		DisplayDate: f.Format(d.createdAt),
		Mode:        mode,
		Body:        body,
	}
}
