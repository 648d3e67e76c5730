package ports

import (
	"context"

	"github.com/sulabook/sulabook/internal/core/domain"
)

// BookingInput carries the fields snapshotted onto a new booking.
type BookingInput struct {
	ServiceID    string `validate:"required"`
	ServiceTitle string `validate:"required"`
	ServiceImage string
	Price        float64 `validate:"gte=0"`
	Date         string  `validate:"required"`
	Time         string  `validate:"required"`
	Guests       int     `validate:"gte=1"`
}

// BookingService owns the booking ledger and the favorites set. The current
// session is passed explicitly; a nil session degrades every operation to a
// no-op or empty result rather than an error, except AddBooking which refuses
// to create an ownerless record.
type BookingService interface {
	// Load populates the in-memory booking and favorite caches from the
	// store. Called once at process start; the caches are the source of
	// truth for reads during the session's lifetime.
	Load(ctx context.Context) error

	AddBooking(ctx context.Context, sess *domain.Session, input BookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	UserBookings(sess *domain.Session) []domain.Booking
	ToggleFavorite(ctx context.Context, sess *domain.Session, serviceID string) error
	IsFavorite(sess *domain.Session, serviceID string) bool
}
