package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/payments", paymentHandler.MakePayment)
		r.Get("/api/payments", paymentHandler.GetMyPayments)
		r.Get("/api/bookings/{id}/payment", paymentHandler.GetPaymentByBookingID)
		r.Post("/api/bookings/{id}/payment/retry", paymentHandler.RetryPayment)
	})

	// Admin
	r.Route("/api/admin/users/{id}/payments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", paymentHandler.GetPaymentsByUser)
	})
}
