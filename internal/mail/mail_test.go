package mail

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildMsg(t *testing.T) {
	msg := Message{
		FromName: "Sugar Studio",
		To:       "jane@example.com",
		Subject:  "Calendar Invitation: Watercolor Painting - Downtown Studio",
		HTML:     "<div>Session Details</div>",
		Calendar: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
	}

	m, err := buildMsg("bookings@sugar-studio.com", msg)
	if err != nil {
		t.Fatalf("buildMsg: %v", err)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("write message: %v", err)
	}
	raw := buf.String()

	for _, want := range []string{
		"Subject: Calendar Invitation: Watercolor Painting - Downtown Studio",
		"To: <jane@example.com>",
		"bookings@sugar-studio.com",
		"Sugar Studio",
		"booking-invitation.ics",
		"text/calendar",
		"method=REQUEST",
		"text/html",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("rendered message missing %q\n%s", want, raw)
		}
	}
}

func TestBuildMsgRejectsBadAddresses(t *testing.T) {
	msg := Message{FromName: "Sugar Studio", To: "not-an-address"}
	if _, err := buildMsg("bookings@sugar-studio.com", msg); err == nil {
		t.Fatalf("expected error for invalid recipient")
	}

	msg = Message{FromName: "Sugar Studio", To: "jane@example.com"}
	if _, err := buildMsg("not-an-address", msg); err == nil {
		t.Fatalf("expected error for invalid sender")
	}
}
