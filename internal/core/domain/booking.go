package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a ledger entry owned by a single user. ServiceTitle,
// ServiceImage and Price are snapshotted at booking time and deliberately do
// not track later catalog edits.
type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	ServiceID    string        `json:"serviceId"`
	ServiceTitle string        `json:"serviceTitle"`
	ServiceImage string        `json:"serviceImage"`
	Price        float64       `json:"price"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Guests       int           `json:"guests"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// FavoriteKey builds the compound membership key for the favorites set.
func FavoriteKey(userID, serviceID string) string {
	return fmt.Sprintf("%s_%s", userID, serviceID)
}
