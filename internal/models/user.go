package models

import (
	"github.com/uptrace/bun"
)

// User is a login account. One default account is seeded at schema
// creation; users are never updated or deleted by the application.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Username string `bun:"username,unique,notnull" json:"username"`
	Password string `bun:"password,notnull" json:"-"`
}
