package domain

import (
	"context"
	"time"
)

// Booking represents a reservation for an event, identified by email.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking returns a new Booking. ID is set by the repository on create.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
}

// BookingService defines booking operations exposed to the delivery layer.
type BookingService interface {
	// Create normalizes and validates the email, verifies the referenced
	// event exists, and persists the booking. Returns ErrEventNotFound when
	// eventID references no event.
	Create(ctx context.Context, eventID, email string) (*Booking, error)
}
