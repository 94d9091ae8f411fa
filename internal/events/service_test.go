package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kalokoh/event-management-system/internal/events"
	"github.com/kalokoh/event-management-system/internal/models"
)

// MockEventDBLayer is a mock implementation of the EventDBLayer interface
type MockEventDBLayer struct {
	mock.Mock
}

func (m *MockEventDBLayer) ListEvents(ctx context.Context) ([]models.EventWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventWithCount), args.Error(1)
}

func (m *MockEventDBLayer) CreateEvent(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventDBLayer) UpdateEvent(ctx context.Context, event models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventDBLayer) DeleteEvent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateReturnsAssignedID(t *testing.T) {
	mockDB := new(MockEventDBLayer)
	svc := events.NewEventService(mockDB)
	ctx := context.Background()

	mockDB.On("CreateEvent", ctx, mock.MatchedBy(func(e *models.Event) bool {
		return e.Name == "Tech Fair" && e.Date == "2025-05-01" && e.Venue == "Hall A" && e.Organizer == "CS Dept"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Event).ID = 7
	}).Return(nil)

	id, err := svc.Create(ctx, "Tech Fair", "2025-05-01", "Hall A", "CS Dept")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	mockDB.AssertExpectations(t)
}

func TestCreatePropagatesStorageError(t *testing.T) {
	mockDB := new(MockEventDBLayer)
	svc := events.NewEventService(mockDB)
	ctx := context.Background()

	storageErr := errors.New("database is locked")
	mockDB.On("CreateEvent", ctx, mock.Anything).Return(storageErr)

	_, err := svc.Create(ctx, "Tech Fair", "2025-05-01", "Hall A", "CS Dept")
	assert.ErrorIs(t, err, storageErr)
}

func TestUpdatePassesAllFields(t *testing.T) {
	mockDB := new(MockEventDBLayer)
	svc := events.NewEventService(mockDB)
	ctx := context.Background()

	mockDB.On("UpdateEvent", ctx, models.Event{
		ID: 3, Name: "Tech Expo", Date: "2025-05-02", Venue: "Hall B", Organizer: "IT Dept",
	}).Return(nil)

	err := svc.Update(ctx, 3, "Tech Expo", "2025-05-02", "Hall B", "IT Dept")
	assert.NoError(t, err)
	mockDB.AssertExpectations(t)
}

func TestDeleteDelegatesToCascade(t *testing.T) {
	mockDB := new(MockEventDBLayer)
	svc := events.NewEventService(mockDB)
	ctx := context.Background()

	mockDB.On("DeleteEvent", ctx, int64(5)).Return(nil)

	err := svc.Delete(ctx, 5)
	assert.NoError(t, err)
	mockDB.AssertExpectations(t)
}

func TestListReturnsRowsWithCounts(t *testing.T) {
	mockDB := new(MockEventDBLayer)
	svc := events.NewEventService(mockDB)
	ctx := context.Background()

	rows := []models.EventWithCount{
		{ID: 1, Name: "Tech Fair", Date: "2025-05-01", Venue: "Hall A", Organizer: "CS Dept", ParticipantCount: 3},
		{ID: 2, Name: "Open Day", Date: "2025-06-01", Venue: "Main Hall", Organizer: "Admissions", ParticipantCount: 0},
	}
	mockDB.On("ListEvents", ctx).Return(rows, nil)

	got, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}
