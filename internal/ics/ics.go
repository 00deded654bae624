// Package ics generates the iCalendar invitation attached to booking
// confirmation emails. Lines are emitted in a fixed order so the output
// stays byte-compatible with what existing calendar clients were fed.
package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sugar-studio/booking-api/internal/domain"
)

const (
	prodID    = "-//Sugar Studio//Booking System//EN"
	uidDomain = "sugar-studio.com"

	dateLayout      = "2006-01-02"
	timestampLayout = "20060102T150405Z"
)

// EventTimes computes the start and end instants of a booked session from a
// "YYYY-MM-DD" date, a "HH:MM" time of day (minutes optional) and a duration
// in whole hours. Seconds are always zero; the end is start plus duration on
// the wall clock. Malformed input is rejected rather than propagated.
func EventTimes(date, timeOfDay string, durationHours int) (start, end time.Time, err error) {
	if durationHours <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d hours", domain.ErrInvalidDuration, durationHours)
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}

	hour, minute, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	end = start.Add(time.Duration(durationHours) * time.Hour)
	return start, end, nil
}

func parseTimeOfDay(timeOfDay string) (hour, minute int, err error) {
	hourStr, minuteStr, hasMinute := strings.Cut(timeOfDay, ":")

	hour, err = strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, timeOfDay)
	}
	if !hasMinute {
		return hour, 0, nil
	}

	minute, err = strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, timeOfDay)
	}
	return hour, minute, nil
}

// FormatTimestamp renders an instant in the compact UTC form iCalendar uses,
// e.g. 20240601T143000Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// NewUID builds a globally unique event identifier. The random suffix keeps
// two invitations distinct even when generated in the same millisecond.
func NewUID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("booking-%d-%s@%s", now.UnixMilli(), suffix, uidDomain)
}

// Event holds everything that ends up inside the single VEVENT block.
type Event struct {
	UID            string
	CreatedAt      time.Time
	Start          time.Time
	End            time.Time
	Summary        string
	Description    string
	Location       string
	OrganizerName  string
	OrganizerEmail string
	AttendeeName   string
	AttendeeEmail  string
}

// Encode renders the full VCALENDAR document. Every line, including the
// last, is CRLF-terminated.
func (e Event) Encode() string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:REQUEST",
		"BEGIN:VEVENT",
		"UID:" + e.UID,
		"DTSTAMP:" + FormatTimestamp(e.CreatedAt),
		"DTSTART:" + FormatTimestamp(e.Start),
		"DTEND:" + FormatTimestamp(e.End),
		"SUMMARY:" + e.Summary,
		"DESCRIPTION:" + e.Description,
		"LOCATION:" + e.Location,
		fmt.Sprintf("ORGANIZER;CN=%s:MAILTO:%s", e.OrganizerName, e.OrganizerEmail),
		fmt.Sprintf("ATTENDEE;CN=%s;RSVP=TRUE:MAILTO:%s", e.AttendeeName, e.AttendeeEmail),
		"STATUS:CONFIRMED",
		"TRANSP:OPAQUE",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
