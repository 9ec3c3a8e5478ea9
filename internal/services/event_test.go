package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventlistings/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEventRepository struct {
	bySlug     map[string]*domain.Event
	byID       map[string]*domain.Event
	createErr  error
	updateErr  error
	listErr    error
	lastCreate *domain.Event
	lastUpdate *domain.Event
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.lastCreate = event
	event.ID = "ev-created"
	return nil
}

func (m *mockEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ev, ok := m.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ev, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.byID[id]
	return ok, nil
}

func (m *mockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastUpdate = event
	return nil
}

func (m *mockEventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Event, 0, len(m.bySlug))
	for _, ev := range m.bySlug {
		out = append(out, ev)
	}
	return out, nil
}

func (m *mockEventRepository) Count(ctx context.Context) (int, error) {
	if m.listErr != nil {
		return 0, m.listErr
	}
	return len(m.bySlug), nil
}

func validEventInput() *domain.EventInput {
	return &domain.EventInput{
		Title:       "Go Meetup 2025",
		Description: "An evening of talks",
		Overview:    "Talks and networking",
		Image:       "/images/go-meetup.png",
		Venue:       "Community Hall",
		Location:    "Springfield",
		Date:        "2025-11-05",
		Time:        "18:30",
		Mode:        "in-person",
		Audience:    "developers",
		Agenda:      []string{"Doors open", "Keynote"},
		Organizer:   "Go User Group",
		Tags:        []string{"go", "meetup"},
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mutate     func(*domain.EventInput)
		createErr  error
		wantErr    error
		wantValMsg string
		check      func(t *testing.T, ev *domain.Event)
	}{
		{
			name:   "success normalizes and derives slug",
			mutate: func(in *domain.EventInput) { in.Title = "  Go Meetup 2025  " },
			check: func(t *testing.T, ev *domain.Event) {
				assert.Equal(t, "Go Meetup 2025", ev.Title)
				assert.Equal(t, "go-meetup-2025", ev.Slug)
				assert.Equal(t, "18:30", ev.Time)
				assert.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), ev.Date)
				assert.False(t, ev.CreatedAt.IsZero())
				assert.False(t, ev.UpdatedAt.IsZero())
			},
		},
		{
			name:       "missing title",
			mutate:     func(in *domain.EventInput) { in.Title = "   " },
			wantValMsg: "title is required",
		},
		{
			name:       "time without leading zero rejected",
			mutate:     func(in *domain.EventInput) { in.Time = "9:30" },
			wantValMsg: "time must match 24-hour HH:MM",
		},
		{
			name:   "strict time accepted",
			mutate: func(in *domain.EventInput) { in.Time = "09:30" },
			check: func(t *testing.T, ev *domain.Event) {
				assert.Equal(t, "09:30", ev.Time)
			},
		},
		{
			name:       "empty agenda rejected",
			mutate:     func(in *domain.EventInput) { in.Agenda = []string{} },
			wantValMsg: "agenda must contain at least one non-empty item",
		},
		{
			name:       "agenda of blank strings rejected",
			mutate:     func(in *domain.EventInput) { in.Agenda = []string{"  ", ""} },
			wantValMsg: "agenda must contain at least one non-empty item",
		},
		{
			name:       "empty tags rejected",
			mutate:     func(in *domain.EventInput) { in.Tags = nil },
			wantValMsg: "tags must contain at least one non-empty item",
		},
		{
			name:       "invalid date rejected",
			mutate:     func(in *domain.EventInput) { in.Date = "2025-13-40" },
			wantValMsg: "date must be a valid calendar date",
		},
		{
			name:   "rfc3339 date accepted",
			mutate: func(in *domain.EventInput) { in.Date = "2025-11-05T18:00:00+02:00" },
			check: func(t *testing.T, ev *domain.Event) {
				assert.Equal(t, time.Date(2025, 11, 5, 16, 0, 0, 0, time.UTC), ev.Date)
			},
		},
		{
			name:       "title with no alphanumerics rejected",
			mutate:     func(in *domain.EventInput) { in.Title = "!!!" },
			wantValMsg: "title must contain at least one alphanumeric character",
		},
		{
			name:      "duplicate slug surfaces conflict",
			mutate:    func(in *domain.EventInput) {},
			createErr: domain.ErrConflict,
			wantErr:   domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepository{createErr: tt.createErr}
			svc := NewEventService(repo, 2*time.Second)

			input := validEventInput()
			tt.mutate(input)

			ev, err := svc.Create(ctx, input)
			if tt.wantValMsg != "" {
				require.Error(t, err)
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Messages, tt.wantValMsg)
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, ev)
			if tt.check != nil {
				tt.check(t, ev)
			}
		})
	}
}

func TestEventService_Create_AllFieldsReported(t *testing.T) {
	svc := NewEventService(&mockEventRepository{}, 2*time.Second)

	_, err := svc.Create(context.Background(), &domain.EventInput{})
	require.Error(t, err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Messages, "title is required")
	assert.Contains(t, ve.Messages, "organizer is required")
	assert.Contains(t, ve.Messages, "agenda must contain at least one non-empty item")
	assert.Contains(t, ve.Messages, "date must be a valid calendar date")
	assert.Contains(t, ve.Messages, "time must match 24-hour HH:MM")
}

func TestEventService_GetBySlug(t *testing.T) {
	existing := &domain.Event{ID: "ev-1", Title: "Go Meetup 2025", Slug: "go-meetup-2025"}
	repo := &mockEventRepository{bySlug: map[string]*domain.Event{"go-meetup-2025": existing}}
	svc := NewEventService(repo, 2*time.Second)

	ev, err := svc.GetBySlug(context.Background(), "go-meetup-2025")
	require.NoError(t, err)
	assert.Equal(t, existing, ev)

	_, err = svc.GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_Update(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Event{
		ID:        "ev-1",
		Title:     "Go Meetup 2025",
		Slug:      "go-meetup-2025",
		CreatedAt: created,
	}

	t.Run("title change recomputes slug", func(t *testing.T) {
		repo := &mockEventRepository{bySlug: map[string]*domain.Event{"go-meetup-2025": existing}}
		svc := NewEventService(repo, 2*time.Second)

		input := validEventInput()
		input.Title = "Go Conference 2025"
		ev, err := svc.Update(context.Background(), "go-meetup-2025", input)
		require.NoError(t, err)
		assert.Equal(t, "go-conference-2025", ev.Slug)
		assert.Equal(t, "ev-1", ev.ID)
		assert.Equal(t, created, ev.CreatedAt)
		assert.True(t, ev.UpdatedAt.After(created))
	})

	t.Run("unchanged title keeps slug", func(t *testing.T) {
		repo := &mockEventRepository{bySlug: map[string]*domain.Event{"go-meetup-2025": existing}}
		svc := NewEventService(repo, 2*time.Second)

		ev, err := svc.Update(context.Background(), "go-meetup-2025", validEventInput())
		require.NoError(t, err)
		assert.Equal(t, "go-meetup-2025", ev.Slug)
	})

	t.Run("unknown slug", func(t *testing.T) {
		svc := NewEventService(&mockEventRepository{}, 2*time.Second)
		_, err := svc.Update(context.Background(), "missing", validEventInput())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("conflict on recomputed slug", func(t *testing.T) {
		repo := &mockEventRepository{
			bySlug:    map[string]*domain.Event{"go-meetup-2025": existing},
			updateErr: domain.ErrConflict,
		}
		svc := NewEventService(repo, 2*time.Second)

		input := validEventInput()
		input.Title = "Taken Title"
		_, err := svc.Update(context.Background(), "go-meetup-2025", input)
		require.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestEventService_List(t *testing.T) {
	repo := &mockEventRepository{bySlug: map[string]*domain.Event{
		"a": {ID: "1", Slug: "a"},
		"b": {ID: "2", Slug: "b"},
	}}
	svc := NewEventService(repo, 2*time.Second)

	events, total, err := svc.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 2, total)

	repo.listErr = errors.New("boom")
	_, _, err = svc.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.Error(t, err)
}
