package events

import (
	"context"

	"github.com/kalokoh/event-management-system/internal/models"
)

type EventDBLayer interface {
	ListEvents(ctx context.Context) ([]models.EventWithCount, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, id int64) error
}

// EventService exposes the event CRUD lifecycle to the presentation
// layer.
type EventService struct {
	DB EventDBLayer
}

func NewEventService(db EventDBLayer) *EventService {
	return &EventService{DB: db}
}

// List returns every event with its live participant count, ordered
// by event id ascending.
func (s *EventService) List(ctx context.Context) ([]models.EventWithCount, error) {
	return s.DB.ListEvents(ctx)
}

// Create stores a new event and returns its assigned id.
func (s *EventService) Create(ctx context.Context, name, date, venue, organizer string) (int64, error) {
	event := models.Event{
		Name:      name,
		Date:      date,
		Venue:     venue,
		Organizer: organizer,
	}
	if err := s.DB.CreateEvent(ctx, &event); err != nil {
		return 0, err
	}
	return event.ID, nil
}

// Update replaces all four mutable fields of the event. Updating an
// id that does not exist is a silent no-op.
func (s *EventService) Update(ctx context.Context, id int64, name, date, venue, organizer string) error {
	return s.DB.UpdateEvent(ctx, models.Event{
		ID:        id,
		Name:      name,
		Date:      date,
		Venue:     venue,
		Organizer: organizer,
	})
}

// Delete removes the event and cascades to its participants, so no
// orphaned participant rows remain.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.DB.DeleteEvent(ctx, id)
}
