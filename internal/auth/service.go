package auth

import (
	"context"
)

type AuthDBLayer interface {
	CredentialsMatch(ctx context.Context, username, password string) (bool, error)
}

// Service performs the credential check. A failed check is a normal
// boolean outcome, never an error; only storage failures are errors.
type Service struct {
	DB AuthDBLayer
}

func NewService(db AuthDBLayer) *Service {
	return &Service{DB: db}
}

// Authenticate reports whether the username/password pair matches a
// stored account. No side effects, no retries.
func (s *Service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	return s.DB.CredentialsMatch(ctx, username, password)
}
