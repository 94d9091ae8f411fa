package auth

import (
	"context"

	"github.com/kalokoh/event-management-system/internal/database"
	"github.com/kalokoh/event-management-system/internal/errs"
	"github.com/kalokoh/event-management-system/internal/models"
)

// DB looks credentials up in the shared store.
type DB struct {
	Store *database.Store
}

// CredentialsMatch reports whether a user row exists whose username
// and password exactly match the given values. The comparison is
// case-sensitive string equality; credentials are stored in cleartext.
func (d *DB) CredentialsMatch(ctx context.Context, username, password string) (bool, error) {
	exists, err := d.Store.Bun.NewSelect().
		Model((*models.User)(nil)).
		Where("username = ?", username).
		Where("password = ?", password).
		Exists(ctx)
	if err != nil {
		return false, &errs.StorageError{Op: "authenticate", Err: err}
	}
	return exists, nil
}
