package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Protected: all booking operations act on behalf of the session user
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/bookings/seats", bookingHandler.BookSeats)
		r.Post("/api/bookings/show", bookingHandler.BookShow)
		r.Get("/api/bookings", bookingHandler.GetMyBookings)
		r.Get("/api/bookings/details", bookingHandler.GetMyBookingDetails)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
		r.Get("/api/bookings/{id}/receipt", bookingHandler.GetReceipt)
	})

	// Admin oversight
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", bookingHandler.GetAllBookings)
		r.Get("/range", bookingHandler.GetBookingsByDateRange)
		r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
