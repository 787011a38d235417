package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTheater(
	r chi.Router,
	theaterHandler *adaptor.TheaterHandler,
	showHandler *adaptor.ShowHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public catalog
	r.Get("/api/theaters", theaterHandler.GetTheaters)
	r.Get("/api/theaters/{id}", theaterHandler.GetTheaterByID)
	r.Get("/api/theaters/{id}/shows", showHandler.GetShowsByTheater)

	// Admin management
	r.Route("/api/admin/theaters", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", theaterHandler.CreateTheater)
		r.Put("/{id}", theaterHandler.UpdateTheater)
		r.Delete("/{id}", theaterHandler.DeleteTheater)
	})
}
