package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"eventlistings/internal/delivery/http/helpers"
	"eventlistings/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService implements domain.BookingService for controller tests.
type fakeBookingService struct {
	createFn func(ctx context.Context, eventID, email string) (*domain.Booking, error)

	lastEventID string
	lastEmail   string
}

func (f *fakeBookingService) Create(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	f.lastEventID = eventID
	f.lastEmail = email
	return f.createFn(ctx, eventID, email)
}

func TestBookingController_CreateBooking(t *testing.T) {
	sample := &domain.Booking{
		ID:        "b1",
		EventID:   "e1",
		Email:     "person@example.com",
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name       string
		form       url.Values
		createFn   func(ctx context.Context, eventID, email string) (*domain.Booking, error)
		wantStatus int
	}{
		{
			name: "valid booking returns 201",
			form: url.Values{"eventId": {"e1"}, "email": {"person@example.com"}},
			createFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
				return sample, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "validation error returns 400",
			form: url.Values{"eventId": {"e1"}, "email": {"not-an-email"}},
			createFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
				return nil, domain.NewValidationError("invalid email format")
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "dangling event reference returns 404",
			form: url.Values{"eventId": {"gone"}, "email": {"person@example.com"}},
			createFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
				return nil, domain.ErrEventNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "storage failure returns 500",
			form: url.Values{"eventId": {"e1"}, "email": {"person@example.com"}},
			createFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
				return nil, errors.New("db down")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{createFn: tt.createFn}
			ctrl := NewBookingController(testLogger(), svc)

			rr := postForm(ctrl.CreateBooking, "http://test/api/bookings", tt.form)

			require.Equal(t, tt.wantStatus, rr.Code)
			switch tt.wantStatus {
			case http.StatusCreated:
				var body BookingResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "Booking confirmed", body.Message)
				require.NotNil(t, body.Booking)
				assert.Equal(t, "e1", body.Booking.EventID)
			case http.StatusNotFound:
				var body helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "Event not found", body.Error)
			}
		})
	}
}

func TestBookingController_CreateBooking_PassesRawFormValues(t *testing.T) {
	svc := &fakeBookingService{
		createFn: func(_ context.Context, _, _ string) (*domain.Booking, error) {
			return &domain.Booking{}, nil
		},
	}
	ctrl := NewBookingController(testLogger(), svc)

	form := url.Values{"eventId": {"e1"}, "email": {"  Person@Example.COM  "}}
	rr := postForm(ctrl.CreateBooking, "http://test/api/bookings", form)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "e1", svc.lastEventID)
	// Normalization is the service's job; the controller passes the value through.
	assert.Equal(t, "  Person@Example.COM  ", svc.lastEmail)
}
