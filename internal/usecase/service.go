package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Movie   MovieService
	Theater TheaterService
	Show    ShowService
	Seat    SeatService
	Booking BookingService
	Payment PaymentService
	Receipt ReceiptService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Movie:   NewMovieService(repo, log),
		Theater: NewTheaterService(repo, log),
		Show:    NewShowService(repo, log),
		Seat:    NewSeatService(repo, log),
		Booking: NewBookingService(repo, log),
		Payment: NewPaymentService(repo, log),
		Receipt: NewReceiptService(repo, log),
	}
}
