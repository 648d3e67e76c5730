package view

import (
	"sort"

	"github.com/sulabook/sulabook/internal/core/domain"
)

// StatusAll selects bookings of every status.
const StatusAll = "all"

// Booking sort keys.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortPrice  = "price"
)

// BookingQuery holds the mutable filter parameters for a user's bookings.
type BookingQuery struct {
	Status string
	SortBy string
}

// FilterBookings returns the bookings matching q, sorted per q.SortBy. The
// input slice is never mutated. Sorts are stable, so ties keep their prior
// relative order.
func FilterBookings(bookings []domain.Booking, q BookingQuery) []domain.Booking {
	result := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if q.Status != "" && q.Status != StatusAll && string(b.Status) != q.Status {
			continue
		}
		result = append(result, b)
	}

	switch q.SortBy {
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	case SortPrice:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

// BookingStats aggregates a user's booking history.
type BookingStats struct {
	Total      int
	Confirmed  int
	Cancelled  int
	TotalSpent float64
}

// Stats computes aggregate counts over bookings. TotalSpent sums the price of
// confirmed bookings only.
func Stats(bookings []domain.Booking) BookingStats {
	stats := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed:
			stats.Confirmed++
			stats.TotalSpent += b.Price
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}
