package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type TheaterHandler struct {
	service usecase.TheaterService
	log     *zap.Logger
}

func NewTheaterHandler(service usecase.TheaterService, log *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		service: service,
		log:     log,
	}
}

// GetTheaters handles GET /api/theaters
func (h *TheaterHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	if city := r.URL.Query().Get("city"); city != "" {
		resp, err := h.service.GetTheatersByCity(r.Context(), city)
		if err != nil {
			handleServiceError(w, h.log, err, "get theaters by city")
			return
		}
		utils.ResponseSuccess(w, "Theaters retrieved", resp)
		return
	}

	req := paginationFromQuery(r)

	resp, err := h.service.GetTheaters(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get theaters")
		return
	}

	utils.ResponseSuccess(w, "Theaters retrieved", resp)
}

// GetTheaterByID handles GET /api/theaters/{id}
func (h *TheaterHandler) GetTheaterByID(w http.ResponseWriter, r *http.Request) {
	theaterID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetTheaterByID(r.Context(), theaterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get theater")
		return
	}

	utils.ResponseSuccess(w, "Theater retrieved", resp)
}

// CreateTheater handles POST /api/admin/theaters
func (h *TheaterHandler) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTheaterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateTheater(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create theater")
		return
	}

	utils.ResponseCreated(w, "Theater created", resp)
}

// UpdateTheater handles PUT /api/admin/theaters/{id}
func (h *TheaterHandler) UpdateTheater(w http.ResponseWriter, r *http.Request) {
	theaterID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateTheaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateTheater(r.Context(), theaterID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update theater")
		return
	}

	utils.ResponseSuccess(w, "Theater updated", resp)
}

// DeleteTheater handles DELETE /api/admin/theaters/{id}
func (h *TheaterHandler) DeleteTheater(w http.ResponseWriter, r *http.Request) {
	theaterID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTheater(r.Context(), theaterID); err != nil {
		handleServiceError(w, h.log, err, "delete theater")
		return
	}

	utils.ResponseSuccess(w, "Theater deleted", nil)
}
