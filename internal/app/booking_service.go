package app

import (
	"context"
	"fmt"

	"github.com/sugar-studio/booking-api/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)
	FindAll(ctx context.Context) ([]domain.Booking, error)
	FindByID(ctx context.Context, id string) (domain.Booking, error)
	Update(ctx context.Context, id string, b domain.Booking) (domain.Booking, error)
	Delete(ctx context.Context, id string) (domain.Booking, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type BookingService struct {
	repo BookingRepository
}

func NewBookingService(repo BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

// Create stores a new booking. Every field is required.
func (s *BookingService) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if err := validateBooking(b); err != nil {
		return domain.Booking{}, err
	}
	return s.repo.Create(ctx, b)
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.FindAll(ctx)
}

func (s *BookingService) Get(ctx context.Context, id string) (domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the whole booking document identified by id.
func (s *BookingService) Update(ctx context.Context, id string, b domain.Booking) (domain.Booking, error) {
	if err := validateBooking(b); err != nil {
		return domain.Booking{}, err
	}
	return s.repo.Update(ctx, id, b)
}

func (s *BookingService) Delete(ctx context.Context, id string) (domain.Booking, error) {
	return s.repo.Delete(ctx, id)
}

// CountByDate counts bookings stored with exactly the given date string.
func (s *BookingService) CountByDate(ctx context.Context, date string) (int64, error) {
	return s.repo.CountByDate(ctx, date)
}

func validateBooking(b domain.Booking) error {
	fields := map[string]string{
		"date":   b.Date,
		"name":   b.Name,
		"email":  b.Email,
		"lesson": b.Lesson,
		"course": b.Course,
		"branch": b.Branch,
	}
	for _, name := range []string{"date", "name", "email", "lesson", "course", "branch"} {
		if fields[name] == "" {
			return fmt.Errorf("%w: %s", domain.ErrMissingField, name)
		}
	}
	return nil
}
