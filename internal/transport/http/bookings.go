package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sugar-studio/booking-api/internal/domain"
)

// BookingCollection is the minimal interface needed for the /bookings
// collection endpoints.
type BookingCollection interface {
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

// BookingItem is the minimal interface needed for single-booking endpoints.
type BookingItem interface {
	Get(ctx context.Context, id string) (domain.Booking, error)
	Update(ctx context.Context, id string, b domain.Booking) (domain.Booking, error)
	Delete(ctx context.Context, id string) (domain.Booking, error)
}

// BookingCounter is the minimal interface needed for the count endpoint.
type BookingCounter interface {
	CountByDate(ctx context.Context, date string) (int64, error)
}

// HandleBookings returns an HTTP handler for creating and listing bookings.
func HandleBookings(svc BookingCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			bookings, err := svc.List(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]bookingResponse, 0, len(bookings))
			for _, b := range bookings {
				resp = append(resp, newBookingResponse(b))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req bookingRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
				return
			}

			created, err := svc.Create(r.Context(), req.toDomain())
			if err != nil {
				writeBookingError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, newBookingResponse(created))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleBookingByID returns an HTTP handler for get/update/delete of one
// booking by its identifier.
func HandleBookingByID(svc BookingItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseItemPath(r.URL.Path, "bookings")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodGet:
			b, err := svc.Get(r.Context(), id)
			if err != nil {
				writeBookingError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, newBookingResponse(b))
		case http.MethodPut:
			var req bookingRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
				return
			}

			updated, err := svc.Update(r.Context(), id, req.toDomain())
			if err != nil {
				writeBookingError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, newBookingResponse(updated))
		case http.MethodDelete:
			removed, err := svc.Delete(r.Context(), id)
			if err != nil {
				writeBookingError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, newBookingResponse(removed))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleBookingCount returns an HTTP handler for the bookings-per-date
// read model.
func HandleBookingCount(svc BookingCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		date, ok := parseCountPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		count, err := svc.CountByDate(r.Context(), date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, countResponse{Date: date, Count: count})
	}
}

func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, codeMissingField, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, codeBookingNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// parseItemPath extracts the trailing id from /<resource>/<id>.
func parseItemPath(path, resource string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != resource || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func parseCountPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "bookings" || parts[1] != "count" || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

type bookingRequest struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Lesson string `json:"lesson"`
	Course string `json:"course"`
	Branch string `json:"branch"`
}

func (r bookingRequest) toDomain() domain.Booking {
	return domain.Booking{
		Date:   r.Date,
		Name:   r.Name,
		Email:  r.Email,
		Lesson: r.Lesson,
		Course: r.Course,
		Branch: r.Branch,
	}
}

type bookingResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Lesson string `json:"lesson"`
	Course string `json:"course"`
	Branch string `json:"branch"`
}

func newBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:     b.ID,
		Date:   b.Date,
		Name:   b.Name,
		Email:  b.Email,
		Lesson: b.Lesson,
		Course: b.Course,
		Branch: b.Branch,
	}
}

type countResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
