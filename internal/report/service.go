// Package report composes the detailed event report: summary
// statistics, upcoming events and a per-event participant breakdown,
// all recomputed at request time.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kalokoh/event-management-system/internal/models"
)

const (
	sectionBar  = "===================================================="
	sectionLine = "----------------------------------------------------"
)

type EventDBLayer interface {
	CountEvents(ctx context.Context) (int, error)
	ListUpcoming(ctx context.Context, asOf string) ([]models.Event, error)
	ListByDate(ctx context.Context) ([]models.Event, error)
}

type ParticipantDBLayer interface {
	CountAll(ctx context.Context) (int, error)
	TotalCount(ctx context.Context, eventID int64) (int, error)
	CountByType(ctx context.Context, eventID int64) ([]models.TypeCount, error)
	ListByEvent(ctx context.Context, eventID int64) ([]models.Participant, error)
}

// Service assembles the report text. It mutates nothing; every call
// re-runs the aggregation queries against the live store.
type Service struct {
	Events       EventDBLayer
	Participants ParticipantDBLayer
}

func NewService(events EventDBLayer, participants ParticipantDBLayer) *Service {
	return &Service{Events: events, Participants: participants}
}

// Generate produces the full report as plain text. asOf drives the
// upcoming-events filter and the report timestamp; generatedBy is
// printed in the header. On a storage failure partway through, the
// accumulated text is returned with a visible error marker appended,
// together with the error, instead of being discarded.
func (s *Service) Generate(ctx context.Context, asOf time.Time, generatedBy string) (string, error) {
	var b strings.Builder

	b.WriteString(sectionBar + "\n")
	b.WriteString("   LIMKOKWING UNIVERSITY EVENT MANAGEMENT REPORT\n")
	b.WriteString(sectionBar + "\n")
	fmt.Fprintf(&b, "Generated By : %s\n", generatedBy)
	fmt.Fprintf(&b, "Generated On : %s\n\n", asOf.Format("2006-01-02 15:04:05"))

	if err := s.writeSummary(ctx, &b); err != nil {
		return abort(&b, err)
	}
	if err := s.writeUpcoming(ctx, &b, asOf.Format("2006-01-02")); err != nil {
		return abort(&b, err)
	}
	if err := s.writeBreakdown(ctx, &b); err != nil {
		return abort(&b, err)
	}

	return b.String(), nil
}

func abort(b *strings.Builder, err error) (string, error) {
	fmt.Fprintf(b, "\nERROR: report truncated: %v\n", err)
	return b.String(), err
}

func (s *Service) writeSummary(ctx context.Context, b *strings.Builder) error {
	totalEvents, err := s.Events.CountEvents(ctx)
	if err != nil {
		return err
	}
	totalParticipants, err := s.Participants.CountAll(ctx)
	if err != nil {
		return err
	}

	b.WriteString("SUMMARY STATISTICS\n")
	b.WriteString(sectionLine + "\n")
	fmt.Fprintf(b, "Total Events        : %d\n", totalEvents)
	fmt.Fprintf(b, "Total Participants : %d\n", totalParticipants)
	if totalEvents > 0 {
		// Integer division on purpose: the average truncates.
		fmt.Fprintf(b, "Average Participants/Event : %d\n", totalParticipants/totalEvents)
	}
	b.WriteString("\n")
	return nil
}

func (s *Service) writeUpcoming(ctx context.Context, b *strings.Builder, asOf string) error {
	upcoming, err := s.Events.ListUpcoming(ctx, asOf)
	if err != nil {
		return err
	}

	b.WriteString("UPCOMING EVENTS\n")
	b.WriteString(sectionLine + "\n")
	for _, e := range upcoming {
		fmt.Fprintf(b, "Event Name : %s\n", e.Name)
		fmt.Fprintf(b, "Date       : %s\n", e.Date)
		fmt.Fprintf(b, "Venue      : %s\n", e.Venue)
		fmt.Fprintf(b, "Organizer  : %s\n", e.Organizer)
		b.WriteString(sectionLine + "\n")
	}
	if len(upcoming) == 0 {
		b.WriteString("No upcoming events found.\n")
	}
	return nil
}

func (s *Service) writeBreakdown(ctx context.Context, b *strings.Builder) error {
	events, err := s.Events.ListByDate(ctx)
	if err != nil {
		return err
	}

	b.WriteString("\nDETAILED EVENT BREAKDOWN\n")
	b.WriteString(sectionBar + "\n")

	for _, e := range events {
		fmt.Fprintf(b, "\nEvent: %s\n", e.Name)
		fmt.Fprintf(b, "Date : %s\n", e.Date)
		fmt.Fprintf(b, "Venue: %s\n", e.Venue)
		fmt.Fprintf(b, "Organizer: %s\n", e.Organizer)

		total, err := s.Participants.TotalCount(ctx, e.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "Total Participants: %d\n", total)

		byType, err := s.Participants.CountByType(ctx, e.ID)
		if err != nil {
			return err
		}
		for _, tc := range byType {
			fmt.Fprintf(b, "  - %s: %d\n", tc.Type, tc.Count)
		}

		if total > 0 {
			participants, err := s.Participants.ListByEvent(ctx, e.ID)
			if err != nil {
				return err
			}
			b.WriteString("Participant List:\n")
			for _, p := range participants {
				fmt.Fprintf(b, "   • %s (%s)\n", p.Name, p.Type)
			}
		} else {
			b.WriteString("No participants registered.\n")
		}

		b.WriteString(sectionLine + "\n")
	}
	return nil
}
