package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sugar-studio/booking-api/internal/domain"
)

type stubBookingService struct {
	booking  domain.Booking
	bookings []domain.Booking
	count    int64
	err      error
}

func (s *stubBookingService) Create(context.Context, domain.Booking) (domain.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) List(context.Context) ([]domain.Booking, error) {
	return s.bookings, s.err
}

func (s *stubBookingService) Get(context.Context, string) (domain.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) Update(context.Context, string, domain.Booking) (domain.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) Delete(context.Context, string) (domain.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) CountByDate(context.Context, string) (int64, error) {
	return s.count, s.err
}

var stubBooking = domain.Booking{
	ID:     "66a0b1c2d3e4f5a6b7c8d9e0",
	Date:   "2024-06-01",
	Name:   "Jane Doe",
	Email:  "jane@example.com",
	Lesson: "Color Mixing",
	Course: "Watercolor Painting",
	Branch: "Downtown",
}

const validBookingBody = `{"date":"2024-06-01","name":"Jane Doe","email":"jane@example.com","lesson":"Color Mixing","course":"Watercolor Painting","branch":"Downtown"}`

func TestHandleBookings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "create success",
			method:         http.MethodPost,
			body:           validBookingBody,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":"66a0b1c2d3e4f5a6b7c8d9e0"`,
		},
		{
			name:           "create invalid json",
			method:         http.MethodPost,
			body:           `{"date":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create missing field",
			method:         http.MethodPost,
			body:           validBookingBody,
			serviceErr:     fmt.Errorf("%w: branch", domain.ErrMissingField),
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "missing_required_field",
		},
		{
			name:           "list success",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"name":"Jane Doe"`,
		},
		{
			name:           "list internal error",
			method:         http.MethodGet,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "method not allowed",
			method:         http.MethodDelete,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubBookingService{
				booking:  stubBooking,
				bookings: []domain.Booking{stubBooking},
				err:      tt.serviceErr,
			}

			req := httptest.NewRequest(tt.method, "/bookings", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			HandleBookings(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected body to contain %q, got %s", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleBookingByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "get success",
			method:         http.MethodGet,
			path:           "/bookings/66a0b1c2d3e4f5a6b7c8d9e0",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"course":"Watercolor Painting"`,
		},
		{
			name:           "get not found",
			method:         http.MethodGet,
			path:           "/bookings/66a000000000000000000000",
			serviceErr:     domain.ErrBookingNotFound,
			expectedStatus: http.StatusNotFound,
			expectedSubstr: "booking_not_found",
		},
		{
			name:           "get invalid id",
			method:         http.MethodGet,
			path:           "/bookings/nope",
			serviceErr:     domain.ErrInvalidID,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_id",
		},
		{
			name:           "update success",
			method:         http.MethodPut,
			path:           "/bookings/66a0b1c2d3e4f5a6b7c8d9e0",
			body:           validBookingBody,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update invalid json",
			method:         http.MethodPut,
			path:           "/bookings/66a0b1c2d3e4f5a6b7c8d9e0",
			body:           `{"date":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "update not found",
			method:         http.MethodPut,
			path:           "/bookings/66a000000000000000000000",
			body:           validBookingBody,
			serviceErr:     domain.ErrBookingNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "delete success",
			method:         http.MethodDelete,
			path:           "/bookings/66a0b1c2d3e4f5a6b7c8d9e0",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"id":"66a0b1c2d3e4f5a6b7c8d9e0"`,
		},
		{
			name:           "delete not found is repeatable",
			method:         http.MethodDelete,
			path:           "/bookings/66a000000000000000000000",
			serviceErr:     domain.ErrBookingNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "nested path rejected",
			method:         http.MethodGet,
			path:           "/bookings/a/b",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "method not allowed",
			method:         http.MethodPatch,
			path:           "/bookings/66a0b1c2d3e4f5a6b7c8d9e0",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubBookingService{booking: stubBooking, err: tt.serviceErr}

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			HandleBookingByID(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected body to contain %q, got %s", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleBookingCount(t *testing.T) {
	t.Parallel()

	t.Run("returns date and count", func(t *testing.T) {
		svc := &stubBookingService{count: 3}

		req := httptest.NewRequest(http.MethodGet, "/bookings/count/2024-06-01", nil)
		rec := httptest.NewRecorder()
		HandleBookingCount(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		for _, want := range []string{`"date":"2024-06-01"`, `"count":3`} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected body to contain %q, got %s", want, body)
			}
		}
	})

	t.Run("missing date segment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings/count/", nil)
		rec := httptest.NewRecorder()
		HandleBookingCount(&stubBookingService{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("post not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/bookings/count/2024-06-01", nil)
		rec := httptest.NewRecorder()
		HandleBookingCount(&stubBookingService{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
	})
}
