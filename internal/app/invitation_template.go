package app

import (
	"html/template"
	"strings"
)

type invitationView struct {
	Organization string
	Branch       string
	Date         string
	Time         string
	Duration     int
	Address      string
	Course       string
	Lesson       string
	Contact      string
}

func renderInvitationHTML(view invitationView) (string, error) {
	var sb strings.Builder
	if err := invitationTemplate.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var invitationTemplate = template.Must(template.New("invitation").Parse(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="text-align: center; margin-bottom: 30px;">
          <h1 style="color: #1e293b; margin-bottom: 10px;">🎓 Learning Session Confirmed</h1>
          <p style="color: #64748b; font-size: 16px;">Your booking has been successfully scheduled</p>
        </div>

        <div style="background: #f8fafc; border-radius: 12px; padding: 20px; margin-bottom: 20px; border-left: 4px solid #10b981;">
          <h2 style="color: #1e293b; margin-top: 0; margin-bottom: 15px;">Session Details</h2>
          <table style="width: 100%; border-collapse: collapse;">
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151; width: 120px;">Organization:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Organization}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151;">Branch:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Branch}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151;">Date:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Date}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151;">Time:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Time}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151;">Duration:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Duration}} hours</td>
            </tr>
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151;">Location:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Address}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151;">Course:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Course}}</td>
            </tr>
            <tr>
              <td style="padding: 8px 0; font-weight: 600; color: #374151;">Lesson:</td>
              <td style="padding: 8px 0; color: #1e293b;">{{.Lesson}}</td>
            </tr>
          </table>
        </div>

        <div style="background: #eff6ff; border-radius: 12px; padding: 20px; margin-bottom: 20px; border-left: 4px solid #3b82f6;">
          <h3 style="color: #1e293b; margin-top: 0; margin-bottom: 10px;">📅 Calendar Invitation</h3>
          <p style="color: #475569; margin-bottom: 15px;">
            A calendar invitation (.ics file) is attached to this email. Click on the attachment to add this event to your calendar.
          </p>
          <p style="color: #475569; font-size: 14px; margin: 0;">
            You can also add this event to your calendar using these links:<br>
            • <a href="https://calendar.google.com" style="color: #3b82f6;">Google Calendar</a><br>
            • <a href="https://outlook.live.com" style="color: #3b82f6;">Outlook Calendar</a>
          </p>
        </div>

        <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0;">
          <p style="color: #64748b; font-size: 14px; margin: 0;">
            If you have any questions, please contact us at <a href="mailto:{{.Contact}}" style="color: #3b82f6;">{{.Contact}}</a>
          </p>
        </div>
      </div>
`))
