package entity

import "github.com/google/uuid"

// BookingSeat links one booking, one seat and one show.
// (booking_id, seat_id, show_id) is unique; a (show_id, seat_id) pair may
// appear in at most one active booking at a time.
type BookingSeat struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	SeatID    uuid.UUID `db:"seat_id"`
	ShowID    uuid.UUID `db:"show_id"`
}
