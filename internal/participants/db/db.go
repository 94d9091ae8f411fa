package db

import (
	"context"

	"github.com/kalokoh/event-management-system/internal/database"
	"github.com/kalokoh/event-management-system/internal/errs"
	"github.com/kalokoh/event-management-system/internal/models"
)

// DB runs participant queries against the shared store.
type DB struct {
	Store *database.Store
}

// CreateParticipant inserts a participant row and fills in its
// assigned id.
func (d *DB) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	err := d.Store.Write(func() error {
		_, err := d.Store.Bun.NewInsert().Model(participant).Exec(ctx)
		return err
	})
	if err != nil {
		return &errs.StorageError{Op: "create participant", Err: err}
	}
	return nil
}

// ListByEvent returns the event's participants ordered by name
// ascending, the order the report engine prints them in.
func (d *DB) ListByEvent(ctx context.Context, eventID int64) ([]models.Participant, error) {
	var participants []models.Participant
	err := d.Store.Bun.NewSelect().
		Model(&participants).
		Where("event_id = ?", eventID).
		Order("name").
		Scan(ctx)
	if err != nil {
		return nil, &errs.StorageError{Op: "list participants", Err: err}
	}
	return participants, nil
}

// CountByType groups the event's participants by type, ordered by
// type ascending.
func (d *DB) CountByType(ctx context.Context, eventID int64) ([]models.TypeCount, error) {
	var counts []models.TypeCount
	err := d.Store.Bun.NewRaw(`
		SELECT type, COUNT(*) AS total
		FROM participants
		WHERE event_id = ?
		GROUP BY type
		ORDER BY type
	`, eventID).Scan(ctx, &counts)
	if err != nil {
		return nil, &errs.StorageError{Op: "count participants by type", Err: err}
	}
	return counts, nil
}

// TotalCount returns the number of participants registered to the
// event.
func (d *DB) TotalCount(ctx context.Context, eventID int64) (int, error) {
	count, err := d.Store.Bun.NewSelect().
		Model((*models.Participant)(nil)).
		Where("event_id = ?", eventID).
		Count(ctx)
	if err != nil {
		return 0, &errs.StorageError{Op: "count participants", Err: err}
	}
	return count, nil
}

// CountAll returns the number of participants across all events.
func (d *DB) CountAll(ctx context.Context) (int, error) {
	count, err := d.Store.Bun.NewSelect().
		Model((*models.Participant)(nil)).
		Count(ctx)
	if err != nil {
		return 0, &errs.StorageError{Op: "count all participants", Err: err}
	}
	return count, nil
}

// DeleteByEvent removes every participant registered to the event.
// The event repository's cascade delete runs this inside its own
// transaction; this standalone form exists for direct callers.
func (d *DB) DeleteByEvent(ctx context.Context, eventID int64) error {
	err := d.Store.Write(func() error {
		_, err := d.Store.Bun.NewDelete().
			Model((*models.Participant)(nil)).
			Where("event_id = ?", eventID).
			Exec(ctx)
		return err
	})
	if err != nil {
		return &errs.StorageError{Op: "delete participants by event", Err: err}
	}
	return nil
}

// EventExists reports whether the referenced event exists. Used to
// reject registrations against missing events.
func (d *DB) EventExists(ctx context.Context, eventID int64) (bool, error) {
	exists, err := d.Store.Bun.NewSelect().
		Model((*models.Event)(nil)).
		Where("event_id = ?", eventID).
		Exists(ctx)
	if err != nil {
		return false, &errs.StorageError{Op: "event exists", Err: err}
	}
	return exists, nil
}
