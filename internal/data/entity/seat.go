package entity

import "github.com/google/uuid"

// Seat belongs to exactly one show; seat_no is unique within that show.
// is_booked is the contended hold flag and is only flipped inside the
// allocator's transaction.
type Seat struct {
	Base
	ShowID   uuid.UUID `db:"show_id"`
	SeatNo   string    `db:"seat_no"` // A1, A2, B1, etc.
	Price    float64   `db:"price"`
	IsBooked bool      `db:"is_booked"`
}
