package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

// Known statuses. Admin status updates accept values outside this set,
// so BookingStatus is stored as-is and never used as an enum gate.
const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	ShowID      uuid.UUID     `db:"show_id"`
	TotalAmount float64       `db:"total_amount"`
	Status      BookingStatus `db:"status"`
	PaymentMode string        `db:"payment_mode"`
	BookingTime time.Time     `db:"booking_time"`
}

// Active reports whether the booking still holds its seats.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}
