package domain

import (
	"context"
	"time"
)

// Event represents a published event listing.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventInput carries the raw attributes submitted for an event before the
// validation pipeline has normalized them. Date is the unparsed string form.
type EventInput struct {
	Title       string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      []string
	Organizer   string
	Tags        []string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, event *Event) error
	List(ctx context.Context, params PaginationParams) ([]*Event, error)
	Count(ctx context.Context) (int, error)
}

// EventService defines event operations exposed to the delivery layer.
// Create and Update run the full validation pipeline before persisting.
type EventService interface {
	Create(ctx context.Context, input *EventInput) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// Update replaces the event identified by slug with the given attributes;
	// the slug is recomputed when the title changes.
	Update(ctx context.Context, slug string, input *EventInput) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
