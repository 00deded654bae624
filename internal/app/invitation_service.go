package app

import (
	"context"
	"fmt"

	"github.com/sugar-studio/booking-api/internal/clock"
	"github.com/sugar-studio/booking-api/internal/domain"
	"github.com/sugar-studio/booking-api/internal/ics"
	"github.com/sugar-studio/booking-api/internal/mail"
)

// Mailer is the outbound transport invitations are handed to.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
	Sender() string
}

// InvitationService composes the calendar invitation for a booking and
// dispatches it by email.
type InvitationService struct {
	mailer Mailer
	clock  clock.Clock
}

func NewInvitationService(mailer Mailer, clk clock.Clock) *InvitationService {
	return &InvitationService{mailer: mailer, clock: clk}
}

// SendInvitation builds the ICS document and the HTML body from the booking
// snapshot and sends them to the invitation recipient. Transport failures
// come back wrapped with their original cause intact.
func (s *InvitationService) SendInvitation(ctx context.Context, inv domain.Invitation) error {
	if inv.To == "" {
		return domain.ErrRecipientRequired
	}

	b := inv.Booking
	start, end, err := ics.EventTimes(b.Date, b.Time, b.Duration)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	sender := s.mailer.Sender()

	event := ics.Event{
		UID:       ics.NewUID(now),
		CreatedAt: now,
		Start:     start,
		End:       end,
		Summary:   fmt.Sprintf("%s - %s", b.Course, b.Center.Title),
		Description: fmt.Sprintf(
			`Learning Session\n\nStudent: %s\nCourse: %s\nLesson: %s\nDuration: %d hours\n\nLocation: %s`,
			b.Name, b.Course, b.Lesson, b.Duration, b.Center.Address,
		),
		Location:       b.Center.Address,
		OrganizerName:  b.Center.Organization,
		OrganizerEmail: sender,
		AttendeeName:   b.Name,
		AttendeeEmail:  b.Email,
	}

	html, err := renderInvitationHTML(invitationView{
		Organization: b.Center.Organization,
		Branch:       b.Branch,
		Date:         start.Format("Monday, January 2, 2006"),
		Time:         formatTimeAMPM(start.Hour(), start.Minute()),
		Duration:     b.Duration,
		Address:      b.Center.Address,
		Course:       b.Course,
		Lesson:       b.Lesson,
		Contact:      sender,
	})
	if err != nil {
		return fmt.Errorf("render invitation email: %w", err)
	}

	msg := mail.Message{
		FromName: b.Center.Organization,
		To:       inv.To,
		Subject:  fmt.Sprintf("Calendar Invitation: %s - %s", b.Course, b.Center.Title),
		HTML:     html,
		Calendar: event.Encode(),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMailSendFailed, err)
	}
	return nil
}

// formatTimeAMPM renders a 12-hour clock time: 0:00 is 12:00 AM, 12:00 is
// 12:00 PM, 13:05 is 1:05 PM.
func formatTimeAMPM(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}
