package entity

import (
	"time"

	"github.com/google/uuid"
)

type Show struct {
	Base
	MovieID      uuid.UUID `db:"movie_id"`
	TheaterID    uuid.UUID `db:"theater_id"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	PricePerSeat float64   `db:"price_per_seat"`
}
