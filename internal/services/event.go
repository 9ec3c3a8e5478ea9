package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventlistings/internal/domain"
)

// timeRegexp matches a strict 24-hour clock value, e.g. "09:30" or "23:05".
var timeRegexp = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// dateFormats are accepted for the date attribute, tried in order. Parsed
// values are normalized to UTC.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, input *domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := validateEvent(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	event.Slug = domain.Slugify(event.Title)
	if event.Slug == "" {
		return nil, domain.NewValidationError("title must contain at least one alphanumeric character")
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, slug string, input *domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}

	event, err := validateEvent(input)
	if err != nil {
		return nil, err
	}

	event.ID = current.ID
	event.CreatedAt = current.CreatedAt
	event.UpdatedAt = time.Now().UTC()
	event.Slug = current.Slug
	if event.Title != current.Title {
		event.Slug = domain.Slugify(event.Title)
		if event.Slug == "" {
			return nil, domain.NewValidationError("title must contain at least one alphanumeric character")
		}
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	total, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

// validateEvent runs the event validation pipeline over raw input and returns
// a normalized Event. All failures are reported together in one
// ValidationError so callers see every problem at once.
func validateEvent(input *domain.EventInput) (*domain.Event, error) {
	if input == nil {
		return nil, domain.NewValidationError("missing event attributes")
	}

	var msgs []string

	event := &domain.Event{}

	type textField struct {
		name  string
		value string
		dst   *string
	}
	required := []textField{
		{"title", input.Title, &event.Title},
		{"description", input.Description, &event.Description},
		{"overview", input.Overview, &event.Overview},
		{"image", input.Image, &event.Image},
		{"venue", input.Venue, &event.Venue},
		{"location", input.Location, &event.Location},
		{"mode", input.Mode, &event.Mode},
		{"audience", input.Audience, &event.Audience},
		{"organizer", input.Organizer, &event.Organizer},
	}

	for _, f := range required {
		v := strings.TrimSpace(f.value)
		if v == "" {
			msgs = append(msgs, f.name+" is required")
			continue
		}
		*f.dst = v
	}

	if agenda, ok := cleanStringList(input.Agenda); ok {
		event.Agenda = agenda
	} else {
		msgs = append(msgs, "agenda must contain at least one non-empty item")
	}
	if tags, ok := cleanStringList(input.Tags); ok {
		event.Tags = tags
	} else {
		msgs = append(msgs, "tags must contain at least one non-empty item")
	}

	if date, ok := parseEventDate(input.Date); ok {
		event.Date = date
	} else {
		msgs = append(msgs, "date must be a valid calendar date")
	}

	eventTime := strings.TrimSpace(input.Time)
	if timeRegexp.MatchString(eventTime) {
		event.Time = eventTime
	} else {
		msgs = append(msgs, "time must match 24-hour HH:MM")
	}

	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}
	return event, nil
}

// cleanStringList trims each entry and drops empties. Returns false when no
// non-empty entries remain.
func cleanStringList(items []string) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// parseEventDate parses the raw date string against the accepted formats and
// normalizes the result to UTC.
func parseEventDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
