package content

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kabarettimpro/theater-api/internal/validation"
)

// Performance languages
const (
	LanguageGerman  = "de"
	LanguageEnglish = "en"
)

// Event represents a scheduled performance at the venue
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description,omitempty" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Language    string             `bson:"language" json:"language"`
	Category    string             `bson:"category" json:"category"`
	DurationMin *int               `bson:"duration_min,omitempty" json:"duration_min"`
	TicketURL   *string            `bson:"ticket_url,omitempty" json:"ticket_url"`
	CoverImage  *string            `bson:"cover_image,omitempty" json:"cover_image"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the name of the backing collection
func (Event) CollectionName() string {
	return "event"
}

// EventOut is the external projection of Event, without the internal identifier
type EventOut struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	Language    string    `json:"language"`
	Category    string    `json:"category"`
	DurationMin *int      `json:"duration_min"`
	TicketURL   *string   `json:"ticket_url"`
	CoverImage  *string   `json:"cover_image"`
}

// Out returns the external projection with internal-only fields dropped
func (e *Event) Out() *EventOut {
	return &EventOut{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Language:    e.Language,
		Category:    e.Category,
		DurationMin: e.DurationMin,
		TicketURL:   e.TicketURL,
		CoverImage:  e.CoverImage,
	}
}

// Validate checks if the event data is valid
func (e *Event) Validate() error {
	if err := validation.ValidateRequired(e.Title, "title"); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return errors.New("date is required")
	}
	if err := validation.ValidateLanguage(e.Language); err != nil {
		return err
	}
	if err := validation.ValidateRequired(e.Category, "category"); err != nil {
		return err
	}
	if e.DurationMin != nil {
		if err := validation.ValidatePositive(*e.DurationMin, "duration_min"); err != nil {
			return err
		}
	}
	if e.TicketURL != nil {
		if err := validation.ValidateURL(*e.TicketURL, "ticket_url"); err != nil {
			return err
		}
	}
	if e.CoverImage != nil {
		if err := validation.ValidateURL(*e.CoverImage, "cover_image"); err != nil {
			return err
		}
	}
	return nil
}
