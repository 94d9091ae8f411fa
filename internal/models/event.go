package models

import (
	"github.com/uptrace/bun"
)

// Event is a scheduled university activity. Date is stored verbatim as
// a YYYY-MM-DD string, so lexicographic comparison orders by calendar
// date.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID        int64  `bun:"event_id,pk,autoincrement" json:"event_id"`
	Name      string `bun:"event_name,notnull" json:"event_name"`
	Date      string `bun:"event_date,notnull" json:"event_date"`
	Venue     string `bun:"venue,notnull" json:"venue"`
	Organizer string `bun:"organizer,notnull" json:"organizer"`
}

// EventWithCount is an event row joined with a live participant count.
// The count is recomputed on every read, never cached.
type EventWithCount struct {
	ID               int64  `bun:"event_id" json:"event_id"`
	Name             string `bun:"event_name" json:"event_name"`
	Date             string `bun:"event_date" json:"event_date"`
	Venue            string `bun:"venue" json:"venue"`
	Organizer        string `bun:"organizer" json:"organizer"`
	ParticipantCount int    `bun:"participant_count" json:"participant_count"`
}
