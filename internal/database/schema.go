package database

import (
	"context"

	"github.com/kalokoh/event-management-system/internal/errs"
	"github.com/kalokoh/event-management-system/internal/models"
)

// EnsureSchema lazily creates the users, events and participants
// tables and seeds the default credential pair. It is idempotent and
// safe to call on every startup: existing tables are left untouched
// and the seed is an insert-if-absent on the username. Any failure is
// returned as a *errs.SchemaError and must be treated as fatal.
func (s *Store) EnsureSchema(ctx context.Context, seedUsername, seedPassword string) error {
	err := s.Write(func() error {
		tables := []interface{}{
			(*models.User)(nil),
			(*models.Event)(nil),
			(*models.Participant)(nil),
		}
		for _, m := range tables {
			q := s.Bun.NewCreateTable().Model(m).IfNotExists()
			if _, ok := m.(*models.Participant); ok {
				q = q.ForeignKey(`("event_id") REFERENCES "events" ("event_id")`)
			}
			if _, err := q.Exec(ctx); err != nil {
				return err
			}
		}

		seed := models.User{Username: seedUsername, Password: seedPassword}
		_, err := s.Bun.NewInsert().
			Model(&seed).
			On("CONFLICT (username) DO NOTHING").
			Exec(ctx)
		return err
	})
	if err != nil {
		return &errs.SchemaError{Err: err}
	}
	return nil
}
