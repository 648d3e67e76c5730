package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sulabook/sulabook/internal/core/domain"
	"github.com/sulabook/sulabook/internal/core/ports"
	"github.com/sulabook/sulabook/internal/core/storage"
)

// BookingService implements the booking ledger and the favorites set.
//
// Reads are served from in-memory caches populated by Load and kept in sync
// by the mutators. The caches are not re-synchronized if the store is changed
// by another writer; that staleness window is part of the contract.
type BookingService struct {
	kv       ports.KVStore
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time

	bookings  []domain.Booking
	favorites []string
}

func NewBookingService(kv ports.KVStore, log zerolog.Logger) *BookingService {
	return &BookingService{
		kv:       kv,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// Load populates the booking and favorite caches from the store.
func (s *BookingService) Load(ctx context.Context) error {
	s.bookings = storage.ReadAll[domain.Booking](ctx, s.kv, ports.KeyBookings)
	s.favorites = storage.ReadAll[string](ctx, s.kv, ports.KeyFavorites)
	return nil
}

// AddBooking appends a confirmed booking owned by the session user. The
// service fields in input are snapshotted as-is onto the new record. A nil
// session is refused: a booking without an owner would be unreachable by
// every later read.
func (s *BookingService) AddBooking(ctx context.Context, sess *domain.Session, input ports.BookingInput) (*domain.Booking, error) {
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid booking input: %w", err)
	}

	booking := domain.Booking{
		ID:           uuid.NewString(),
		UserID:       sess.ID,
		ServiceID:    input.ServiceID,
		ServiceTitle: input.ServiceTitle,
		ServiceImage: input.ServiceImage,
		Price:        input.Price,
		Date:         input.Date,
		Time:         input.Time,
		Guests:       input.Guests,
		Status:       domain.StatusConfirmed,
		CreatedAt:    s.now().UTC(),
	}

	all := storage.ReadAll[domain.Booking](ctx, s.kv, ports.KeyBookings)
	all = append(all, booking)
	if err := storage.WriteAll(ctx, s.kv, ports.KeyBookings, all); err != nil {
		s.log.Error().Err(err).Msg("failed to persist bookings")
		return nil, err
	}
	s.bookings = all

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("user_id", sess.ID).
		Str("service_id", input.ServiceID).
		Msg("booking created")
	return &booking, nil
}

// CancelBooking moves the matching booking to cancelled, leaving every other
// record untouched. Unknown ids and already-cancelled bookings are no-ops.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) error {
	all := storage.ReadAll[domain.Booking](ctx, s.kv, ports.KeyBookings)
	for i := range all {
		if all[i].ID == bookingID {
			all[i].Status = domain.StatusCancelled
		}
	}
	if err := storage.WriteAll(ctx, s.kv, ports.KeyBookings, all); err != nil {
		s.log.Error().Err(err).Msg("failed to persist bookings")
		return err
	}
	s.bookings = all

	s.log.Info().Str("booking_id", bookingID).Msg("booking cancelled")
	return nil
}

// UserBookings returns the cached bookings owned by the session user, in
// insertion order. Empty when logged out.
func (s *BookingService) UserBookings(sess *domain.Session) []domain.Booking {
	if sess == nil {
		return nil
	}
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.UserID == sess.ID {
			out = append(out, b)
		}
	}
	return out
}

// ToggleFavorite flips membership of the session user's favorite key for
// serviceID. No-op when logged out.
func (s *BookingService) ToggleFavorite(ctx context.Context, sess *domain.Session, serviceID string) error {
	if sess == nil {
		return nil
	}

	key := domain.FavoriteKey(sess.ID, serviceID)
	current := storage.ReadAll[string](ctx, s.kv, ports.KeyFavorites)

	updated := make([]string, 0, len(current)+1)
	found := false
	for _, k := range current {
		if k == key {
			found = true
			continue
		}
		updated = append(updated, k)
	}
	if !found {
		updated = append(updated, key)
	}

	if err := storage.WriteAll(ctx, s.kv, ports.KeyFavorites, updated); err != nil {
		s.log.Error().Err(err).Msg("failed to persist favorites")
		return err
	}
	s.favorites = updated

	s.log.Debug().Str("user_id", sess.ID).Str("service_id", serviceID).Bool("favorite", !found).Msg("favorite toggled")
	return nil
}

// IsFavorite reports membership against the cached favorites set. False when
// logged out.
func (s *BookingService) IsFavorite(sess *domain.Session, serviceID string) bool {
	if sess == nil {
		return false
	}
	key := domain.FavoriteKey(sess.ID, serviceID)
	for _, k := range s.favorites {
		if k == key {
			return true
		}
	}
	return false
}
