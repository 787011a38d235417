package entity

import (
	"time"
)

type Movie struct {
	Base
	Title             string    `db:"title"`
	Description       *string   `db:"description"`
	Genre             string    `db:"genre"`
	Language          string    `db:"language"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	ReleaseDate       time.Time `db:"release_date"`
}
