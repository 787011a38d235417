package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeat(
	r chi.Router,
	seatHandler *adaptor.SeatHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Seat inventory is admin-only; availability reads hang off the show routes
	r.Route("/api/admin/seats", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", seatHandler.AddSeats)
		r.Put("/{id}", seatHandler.UpdateSeat)
		r.Delete("/{id}", seatHandler.DeleteSeat)
	})
}
