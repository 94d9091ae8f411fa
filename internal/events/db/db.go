package db

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/kalokoh/event-management-system/internal/database"
	"github.com/kalokoh/event-management-system/internal/errs"
	"github.com/kalokoh/event-management-system/internal/models"
)

// DB runs event queries against the shared store.
type DB struct {
	Store *database.Store
}

// ListEvents returns one row per event joined with a live participant
// count, ordered by event id ascending.
func (d *DB) ListEvents(ctx context.Context) ([]models.EventWithCount, error) {
	var events []models.EventWithCount
	err := d.Store.Bun.NewRaw(`
		SELECT
			e.event_id,
			e.event_name,
			e.event_date,
			e.venue,
			e.organizer,
			COUNT(p.id) AS participant_count
		FROM events e
		LEFT JOIN participants p ON e.event_id = p.event_id
		GROUP BY e.event_id
		ORDER BY e.event_id
	`).Scan(ctx, &events)
	if err != nil {
		return nil, &errs.StorageError{Op: "list events", Err: err}
	}
	return events, nil
}

// CreateEvent inserts a new event and fills in its assigned id. All
// four fields are stored verbatim; the date string is not validated.
func (d *DB) CreateEvent(ctx context.Context, event *models.Event) error {
	err := d.Store.Write(func() error {
		_, err := d.Store.Bun.NewInsert().Model(event).Exec(ctx)
		return err
	})
	if err != nil {
		return &errs.StorageError{Op: "create event", Err: err}
	}
	return nil
}

// UpdateEvent replaces the four mutable fields of the event with the
// given id. An unknown id affects zero rows and is not an error.
func (d *DB) UpdateEvent(ctx context.Context, event models.Event) error {
	err := d.Store.Write(func() error {
		_, err := d.Store.Bun.NewUpdate().
			Model(&event).
			Column("event_name", "event_date", "venue", "organizer").
			Where("event_id = ?", event.ID).
			Exec(ctx)
		return err
	})
	if err != nil {
		return &errs.StorageError{Op: "update event", Err: err}
	}
	return nil
}

// DeleteEvent removes the event's participants and then the event
// itself. Both deletes run in one transaction so a failure leaves
// neither applied.
func (d *DB) DeleteEvent(ctx context.Context, id int64) error {
	err := d.Store.Write(func() error {
		return d.Store.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewDelete().
				Model((*models.Participant)(nil)).
				Where("event_id = ?", id).
				Exec(ctx); err != nil {
				return err
			}
			_, err := tx.NewDelete().
				Model((*models.Event)(nil)).
				Where("event_id = ?", id).
				Exec(ctx)
			return err
		})
	})
	if err != nil {
		return &errs.StorageError{Op: "delete event", Err: err}
	}
	return nil
}

// EventExists reports whether an event with the given id exists.
func (d *DB) EventExists(ctx context.Context, id int64) (bool, error) {
	exists, err := d.Store.Bun.NewSelect().
		Model((*models.Event)(nil)).
		Where("event_id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, &errs.StorageError{Op: "event exists", Err: err}
	}
	return exists, nil
}

// CountEvents returns the total number of events.
func (d *DB) CountEvents(ctx context.Context) (int, error) {
	count, err := d.Store.Bun.NewSelect().
		Model((*models.Event)(nil)).
		Count(ctx)
	if err != nil {
		return 0, &errs.StorageError{Op: "count events", Err: err}
	}
	return count, nil
}

// ListUpcoming returns events dated on or after asOf (YYYY-MM-DD),
// ordered by date ascending. The comparison is lexicographic, which
// matches calendar order for this date form.
func (d *DB) ListUpcoming(ctx context.Context, asOf string) ([]models.Event, error) {
	var events []models.Event
	err := d.Store.Bun.NewSelect().
		Model(&events).
		Where("event_date >= ?", asOf).
		Order("event_date").
		Scan(ctx)
	if err != nil {
		return nil, &errs.StorageError{Op: "list upcoming events", Err: err}
	}
	return events, nil
}

// ListByDate returns all events ordered by date ascending.
func (d *DB) ListByDate(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := d.Store.Bun.NewSelect().
		Model(&events).
		Order("event_date").
		Scan(ctx)
	if err != nil {
		return nil, &errs.StorageError{Op: "list events by date", Err: err}
	}
	return events, nil
}
