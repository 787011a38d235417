package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingDetail is the read projection used by the booking query endpoints.
// Payment fields are pointers: a booking without a settled payment reports
// them as absent instead of failing the whole row.
type BookingDetail struct {
	BookingID   uuid.UUID
	UserID      uuid.UUID
	UserName    string
	UserEmail   string
	MovieTitle  string
	TheaterName string
	StartTime   time.Time
	Status      BookingStatus
	BookingTime time.Time
	PaymentMode *string
	TotalAmount *float64
	SeatNos     []string
}

// PaymentDetail joins a payment with its booking's show context.
type PaymentDetail struct {
	PaymentID   uuid.UUID
	BookingID   uuid.UUID
	PaymentMode string
	Amount      float64
	Status      PaymentStatus
	PaidAt      time.Time
	MovieTitle  string
	TheaterName string
	ShowTime    time.Time
}

// ReceiptData carries everything the receipt renderer needs for one booking.
type ReceiptData struct {
	BookingID   uuid.UUID
	UserName    string
	MovieTitle  string
	TheaterName string
	ShowTime    time.Time
	SeatNos     []string
	PaymentMode string
	TotalAmount float64
	BookingTime time.Time
}
