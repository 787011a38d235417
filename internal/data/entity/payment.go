package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
)

// Payment is one-to-one with its booking; amount always equals the
// booking's total at the time the payment row was created.
type Payment struct {
	Base
	BookingID   uuid.UUID     `db:"booking_id"`
	PaymentMode string        `db:"payment_mode"`
	Amount      float64       `db:"amount"`
	Status      PaymentStatus `db:"status"`
	PaidAt      time.Time     `db:"paid_at"`
}
