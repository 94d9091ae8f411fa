package participants

import (
	"context"

	"github.com/kalokoh/event-management-system/internal/errs"
	"github.com/kalokoh/event-management-system/internal/models"
)

type ParticipantDBLayer interface {
	CreateParticipant(ctx context.Context, participant *models.Participant) error
	ListByEvent(ctx context.Context, eventID int64) ([]models.Participant, error)
	CountByType(ctx context.Context, eventID int64) ([]models.TypeCount, error)
	TotalCount(ctx context.Context, eventID int64) (int, error)
	DeleteByEvent(ctx context.Context, eventID int64) error
	EventExists(ctx context.Context, eventID int64) (bool, error)
}

// ParticipantService registers and lists participants, always scoped
// to one event.
type ParticipantService struct {
	DB ParticipantDBLayer
}

func NewParticipantService(db ParticipantDBLayer) *ParticipantService {
	return &ParticipantService{DB: db}
}

// Register adds a participant to an existing event. The type must be
// Student or Staff and the event must exist; both checks run before
// anything reaches storage.
func (s *ParticipantService) Register(ctx context.Context, eventID int64, name, participantType string) (int64, error) {
	if !models.ValidParticipantType(participantType) {
		return 0, errs.ErrInvalidParticipantType
	}
	exists, err := s.DB.EventExists(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errs.ErrEventNotFound
	}

	participant := models.Participant{
		EventID: eventID,
		Name:    name,
		Type:    participantType,
	}
	if err := s.DB.CreateParticipant(ctx, &participant); err != nil {
		return 0, err
	}
	return participant.ID, nil
}

// List returns the event's participants ordered by name ascending.
func (s *ParticipantService) List(ctx context.Context, eventID int64) ([]models.Participant, error) {
	return s.DB.ListByEvent(ctx, eventID)
}

// CountByType returns the event's participant tally keyed by type.
func (s *ParticipantService) CountByType(ctx context.Context, eventID int64) (map[string]int, error) {
	counts, err := s.DB.CountByType(ctx, eventID)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]int, len(counts))
	for _, c := range counts {
		byType[c.Type] = c.Count
	}
	return byType, nil
}

// TotalCount returns the number of participants registered to the
// event.
func (s *ParticipantService) TotalCount(ctx context.Context, eventID int64) (int, error) {
	return s.DB.TotalCount(ctx, eventID)
}
