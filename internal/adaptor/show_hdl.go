package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.ShowService
	log     *zap.Logger
}

func NewShowHandler(service usecase.ShowService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log,
	}
}

// GetUpcomingShows handles GET /api/shows
func (h *ShowHandler) GetUpcomingShows(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	resp, err := h.service.GetUpcomingShows(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get upcoming shows")
		return
	}

	utils.ResponseSuccess(w, "Shows retrieved", resp)
}

// GetShowByID handles GET /api/shows/{id}
func (h *ShowHandler) GetShowByID(w http.ResponseWriter, r *http.Request) {
	showID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetShowByID(r.Context(), showID)
	if err != nil {
		handleServiceError(w, h.log, err, "get show")
		return
	}

	utils.ResponseSuccess(w, "Show retrieved", resp)
}

// GetShowsByMovie handles GET /api/movies/{id}/shows
func (h *ShowHandler) GetShowsByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetShowsByMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get shows by movie")
		return
	}

	utils.ResponseSuccess(w, "Shows retrieved", resp)
}

// GetShowsByTheater handles GET /api/theaters/{id}/shows
func (h *ShowHandler) GetShowsByTheater(w http.ResponseWriter, r *http.Request) {
	theaterID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetShowsByTheater(r.Context(), theaterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get shows by theater")
		return
	}

	utils.ResponseSuccess(w, "Shows retrieved", resp)
}

// CreateShow handles POST /api/admin/shows
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateShow(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create show")
		return
	}

	utils.ResponseCreated(w, "Show created", resp)
}

// UpdateShow handles PUT /api/admin/shows/{id}
func (h *ShowHandler) UpdateShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateShow(r.Context(), showID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update show")
		return
	}

	utils.ResponseSuccess(w, "Show updated", resp)
}

// DeleteShow handles DELETE /api/admin/shows/{id}
func (h *ShowHandler) DeleteShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteShow(r.Context(), showID); err != nil {
		handleServiceError(w, h.log, err, "delete show")
		return
	}

	utils.ResponseSuccess(w, "Show deleted", nil)
}
