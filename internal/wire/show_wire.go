package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShow(
	r chi.Router,
	showHandler *adaptor.ShowHandler,
	seatHandler *adaptor.SeatHandler,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public: browsing shows and seat availability needs no account
	r.Get("/api/shows", showHandler.GetUpcomingShows)
	r.Get("/api/shows/{id}", showHandler.GetShowByID)
	r.Get("/api/shows/{id}/seats", seatHandler.GetSeatsByShow)
	r.Get("/api/shows/{id}/seats/available", seatHandler.GetAvailableSeats)
	r.Get("/api/shows/{id}/seats/booked", bookingHandler.GetBookedSeats)

	// Admin management
	r.Route("/api/admin/shows", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", showHandler.CreateShow)
		r.Put("/{id}", showHandler.UpdateShow)
		r.Delete("/{id}", showHandler.DeleteShow)
		r.Get("/{id}/bookings", bookingHandler.GetBookingsByShow)
	})
}
