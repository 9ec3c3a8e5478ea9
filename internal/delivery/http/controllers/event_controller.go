package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventlistings/internal/delivery/http/helpers"
	"eventlistings/internal/domain"
)

// slugRegexp matches a normalized slug: lowercase alphanumerics and dashes.
var slugRegexp = regexp.MustCompile(`^[a-z0-9-]+$`)

// EventResponse is the response envelope carrying a single event.
type EventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// EventListResponse is the response envelope for GET /api/events.
type EventListResponse struct {
	Message    string                 `json:"message"`
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// formList returns the cleaned values for a repeated form key. A single value
// containing commas is treated as a comma-separated list.
func formList(values []string) []string {
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// eventInputFromForm maps the parsed form values onto an EventInput.
// Normalization and validation happen in the service.
func eventInputFromForm(r *http.Request) *domain.EventInput {
	return &domain.EventInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Overview:    r.FormValue("overview"),
		Image:       r.FormValue("image"),
		Venue:       r.FormValue("venue"),
		Location:    r.FormValue("location"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Mode:        r.FormValue("mode"),
		Audience:    r.FormValue("audience"),
		Agenda:      formList(r.Form["agenda"]),
		Organizer:   r.FormValue("organizer"),
		Tags:        formList(r.Form["tags"]),
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event listing from form-encoded fields. All text fields are required; the slug is generated from the title and must be unique.
// @Tags events
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "Event title"
// @Param description formData string true "Description"
// @Param overview formData string true "Overview"
// @Param image formData string true "Image URL"
// @Param venue formData string true "Venue"
// @Param location formData string true "Location"
// @Param date formData string true "Date (YYYY-MM-DD or RFC3339)"
// @Param time formData string true "Start time (HH:MM, 24-hour)"
// @Param mode formData string true "Mode"
// @Param audience formData string true "Audience"
// @Param agenda formData []string false "Agenda items (repeat the key or comma-separate)"
// @Param organizer formData string true "Organizer"
// @Param tags formData []string false "Tags (repeat the key or comma-separate)"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 409 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.FailureResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "invalid form data")
		return
	}
	event, err := c.Service.Create(r.Context(), eventInputFromForm(r))
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			helpers.WriteMessage(w, http.StatusBadRequest, strings.Join(ve.Messages, "; "))
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteMessage(w, http.StatusConflict, "an event with this title already exists")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteFailure(w, http.StatusInternalServerError, "Failed to create event", err.Error())
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{Message: "Event created successfully", Event: event})
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns the event whose slug matches the path parameter. The slug is trimmed and lowercased before lookup.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if !slugRegexp.MatchString(slug) {
		helpers.WriteError(w, http.StatusNotFound, "Event not found")
		return
	}
	event, err := c.Service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event fetched successfully", Event: event})
}

// ListEvents godoc
// @Summary List events
// @Description Returns events ordered by date, paginated via page and page_size query parameters.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{
		Message:    "Events fetched successfully",
		Events:     events,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the event identified by slug with the submitted form-encoded fields. The slug is recomputed when the title changes. Requires authentication.
// @Tags events
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Param title formData string true "Event title"
// @Param description formData string true "Description"
// @Param overview formData string true "Overview"
// @Param image formData string true "Image URL"
// @Param venue formData string true "Venue"
// @Param location formData string true "Location"
// @Param date formData string true "Date (YYYY-MM-DD or RFC3339)"
// @Param time formData string true "Start time (HH:MM, 24-hour)"
// @Param mode formData string true "Mode"
// @Param audience formData string true "Audience"
// @Param agenda formData []string false "Agenda items"
// @Param organizer formData string true "Organizer"
// @Param tags formData []string false "Tags"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.FailureResponse
// @Router /api/events/{slug} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if !slugRegexp.MatchString(slug) {
		helpers.WriteError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "invalid form data")
		return
	}
	event, err := c.Service.Update(r.Context(), slug, eventInputFromForm(r))
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			helpers.WriteMessage(w, http.StatusBadRequest, strings.Join(ve.Messages, "; "))
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteMessage(w, http.StatusConflict, "an event with this title already exists")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteFailure(w, http.StatusInternalServerError, "Failed to update event", err.Error())
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event updated successfully", Event: event})
}
