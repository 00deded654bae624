// Package mail delivers composed invitation emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

const (
	attachmentName        = "booking-invitation.ics"
	attachmentContentType = "text/calendar; charset=utf-8; method=REQUEST"
)

// Message is one outbound invitation email: an HTML body plus the calendar
// document attached as an .ics file.
type Message struct {
	FromName string
	To       string
	Subject  string
	HTML     string
	Calendar string
}

// Config carries the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTP sends messages through an authenticated SMTP relay. The sender
// address is the authenticated account; the display name varies per message.
type SMTP struct {
	client *gomail.Client
	sender string
}

func NewSMTP(cfg Config) (*SMTP, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTP{client: client, sender: cfg.Username}, nil
}

// Sender returns the address invitations are sent from.
func (s *SMTP) Sender() string {
	return s.sender
}

// Send delivers one message. Transport errors are wrapped, not swallowed, so
// callers can still distinguish auth, network and recipient failures.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(s.sender, msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

func buildMsg(sender string, msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(msg.FromName, sender); err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	err := m.AttachReader(attachmentName, strings.NewReader(msg.Calendar),
		gomail.WithFileContentType(gomail.ContentType(attachmentContentType)))
	if err != nil {
		return nil, fmt.Errorf("attach calendar: %w", err)
	}
	return m, nil
}
