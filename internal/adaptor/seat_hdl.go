package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log,
	}
}

// AddSeats handles POST /api/admin/seats
func (h *SeatHandler) AddSeats(w http.ResponseWriter, r *http.Request) {
	var req request.AddSeatsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.AddSeats(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add seats")
		return
	}

	utils.ResponseCreated(w, "Seats added", resp)
}

// GetSeatsByShow handles GET /api/shows/{id}/seats
func (h *SeatHandler) GetSeatsByShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetSeatsByShow(r.Context(), showID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seats")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved", resp)
}

// GetAvailableSeats handles GET /api/shows/{id}/seats/available
func (h *SeatHandler) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	showID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetAvailableSeats(r.Context(), showID)
	if err != nil {
		handleServiceError(w, h.log, err, "get available seats")
		return
	}

	utils.ResponseSuccess(w, "Available seats retrieved", resp)
}

// UpdateSeat handles PUT /api/admin/seats/{id}
func (h *SeatHandler) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	seatID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateSeat(r.Context(), seatID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update seat")
		return
	}

	utils.ResponseSuccess(w, "Seat updated", resp)
}

// DeleteSeat handles DELETE /api/admin/seats/{id}
func (h *SeatHandler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	seatID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSeat(r.Context(), seatID); err != nil {
		handleServiceError(w, h.log, err, "delete seat")
		return
	}

	utils.ResponseSuccess(w, "Seat deleted", nil)
}
