package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sugar-studio/booking-api/internal/domain"
)

// InvitationSender is the minimal interface needed for the send-invitation
// endpoint.
type InvitationSender interface {
	SendInvitation(ctx context.Context, inv domain.Invitation) error
}

// HandleSendInvitation returns an HTTP handler that emails a calendar
// invitation for a confirmed booking.
func HandleSendInvitation(svc InvitationSender, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req sendInvitationRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}

		err := svc.SendInvitation(r.Context(), req.toDomain())
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecipientRequired):
				writeError(w, http.StatusBadRequest, codeRecipientRequired, err.Error())
			case errors.Is(err, domain.ErrInvalidDate):
				writeError(w, http.StatusBadRequest, codeInvalidDate, err.Error())
			case errors.Is(err, domain.ErrInvalidTime):
				writeError(w, http.StatusBadRequest, codeInvalidTime, err.Error())
			case errors.Is(err, domain.ErrInvalidDuration):
				writeError(w, http.StatusBadRequest, codeInvalidDuration, err.Error())
			case errors.Is(err, domain.ErrMailSendFailed):
				logger.Printf("send invitation to %s: %v", req.To, err)
				writeError(w, http.StatusBadGateway, codeMailSendFailed, "failed to send calendar invitation")
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, sendInvitationResponse{
			Message: "Calendar invitation sent successfully",
		})
	}
}

type sendInvitationRequest struct {
	To          string            `json:"to"`
	BookingData invitationPayload `json:"bookingData"`
}

type invitationPayload struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Course   string        `json:"course"`
	Lesson   string        `json:"lesson"`
	Branch   string        `json:"branch"`
	Date     string        `json:"date"`
	Time     string        `json:"time"`
	Duration int           `json:"duration"`
	Center   centerPayload `json:"center"`
}

type centerPayload struct {
	Title   string `json:"title"`
	Org     string `json:"org"`
	Address string `json:"address"`
}

func (r sendInvitationRequest) toDomain() domain.Invitation {
	return domain.Invitation{
		To: r.To,
		Booking: domain.InvitationBooking{
			Name:     r.BookingData.Name,
			Email:    r.BookingData.Email,
			Course:   r.BookingData.Course,
			Lesson:   r.BookingData.Lesson,
			Branch:   r.BookingData.Branch,
			Date:     r.BookingData.Date,
			Time:     r.BookingData.Time,
			Duration: r.BookingData.Duration,
			Center: domain.Center{
				Title:        r.BookingData.Center.Title,
				Organization: r.BookingData.Center.Org,
				Address:      r.BookingData.Center.Address,
			},
		},
	}
}

type sendInvitationResponse struct {
	Message string `json:"message"`
}
