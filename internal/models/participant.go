package models

import (
	"github.com/uptrace/bun"
)

// Participant types accepted by the registry.
const (
	TypeStudent = "Student"
	TypeStaff   = "Staff"
)

// Participant is a Student or Staff member registered to exactly one
// event. Participants are created and deleted, never updated.
type Participant struct {
	bun.BaseModel `bun:"table:participants"`

	ID      int64  `bun:"id,pk,autoincrement" json:"id"`
	EventID int64  `bun:"event_id,notnull" json:"event_id"`
	Name    string `bun:"name,notnull" json:"name"`
	Type    string `bun:"type,notnull" json:"type"`
}

// TypeCount is a per-type participant tally for one event.
type TypeCount struct {
	Type  string `bun:"type" json:"type"`
	Count int    `bun:"total" json:"count"`
}

// ValidParticipantType reports whether t is one of the accepted
// participant types.
func ValidParticipantType(t string) bool {
	return t == TypeStudent || t == TypeStaff
}
