package repository

import (
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Movie       MovieRepository
	Theater     TheaterRepository
	Show        ShowRepository
	Seat        SeatRepository
	Booking     BookingRepository
	BookingSeat BookingSeatRepository
	Payment     PaymentRepository
	Allocation  AllocationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Movie:       NewMovieRepository(db, log),
		Theater:     NewTheaterRepository(db, log),
		Show:        NewShowRepository(db, log),
		Seat:        NewSeatRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		BookingSeat: NewBookingSeatRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Allocation:  NewAllocationRepository(db, log),
	}
}
