package adaptor

import (
	"errors"
	"net/http"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Movie   *MovieHandler
	Theater *TheaterHandler
	Show    *ShowHandler
	Seat    *SeatHandler
	Booking *BookingHandler
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Theater: NewTheaterHandler(service.Theater, log),
		Show:    NewShowHandler(service.Show, log),
		Seat:    NewSeatHandler(service.Seat, log),
		Booking: NewBookingHandler(service.Booking, service.Receipt, log),
		Payment: NewPaymentHandler(service.Payment, log),
	}
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed: not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrSeatsUnavailable):
		log.Warn(operation+" failed: seats unavailable", zap.Error(err))
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, nil)

	case errors.Is(err, entity.ErrInvalidState):
		log.Warn(operation+" failed: invalid state", zap.Error(err))
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, nil)

	case errors.Is(err, entity.ErrInvalidArgument):
		log.Warn(operation+" failed: invalid argument", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" failed: forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, entity.ErrAlreadyExists):
		log.Warn(operation+" failed: already exists", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// urlParamUUID extracts and parses a UUID path parameter. Writes a 400 and
// returns false when the value is malformed.
func urlParamUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// requireUser pulls the authenticated user's ID out of the request context.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}
