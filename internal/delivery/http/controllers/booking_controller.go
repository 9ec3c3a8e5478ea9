package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventlistings/internal/delivery/http/helpers"
	"eventlistings/internal/domain"
)

// BookingResponse is the response envelope carrying a single booking.
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book a spot at an event
// @Description Creates a booking from form-encoded eventId and email. The email is trimmed and lowercased; the referenced event must exist.
// @Tags bookings
// @Accept x-www-form-urlencoded
// @Produce json
// @Param eventId formData string true "Event ID"
// @Param email formData string true "Attendee email"
// @Success 201 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.FailureResponse
// @Router /api/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "invalid form data")
		return
	}
	booking, err := c.Service.Create(r.Context(), r.FormValue("eventId"), r.FormValue("email"))
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			helpers.WriteMessage(w, http.StatusBadRequest, strings.Join(ve.Messages, "; "))
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteFailure(w, http.StatusInternalServerError, "Failed to create booking", err.Error())
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, BookingResponse{Message: "Booking confirmed", Booking: booking})
}
