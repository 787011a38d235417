package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	receipt usecase.ReceiptService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, receipt usecase.ReceiptService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		receipt: receipt,
		log:     log,
	}
}

// BookSeats handles POST /api/bookings/seats
func (h *BookingHandler) BookSeats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.BookSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.BookSeats(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book seats")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", resp)
}

// BookShow handles POST /api/bookings/show
func (h *BookingHandler) BookShow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.BookShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.BookShow(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book show")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed and paid", resp)
}

// CancelBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", resp)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	resp, err := h.service.GetBookingByID(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", resp)
}

// GetMyBookings handles GET /api/bookings
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	req := paginationFromQuery(r)

	resp, err := h.service.GetUserBookings(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// GetMyBookingDetails handles GET /api/bookings/details
func (h *BookingHandler) GetMyBookingDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetUserBookingDetails(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking details")
		return
	}

	utils.ResponseSuccess(w, "Booking details retrieved", resp)
}

// GetBookedSeats handles GET /api/shows/{id}/seats/booked
func (h *BookingHandler) GetBookedSeats(w http.ResponseWriter, r *http.Request) {
	showID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetBookedSeatNumbers(r.Context(), showID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booked seats")
		return
	}

	utils.ResponseSuccess(w, "Booked seats retrieved", resp)
}

// GetReceipt handles GET /api/bookings/{id}/receipt
func (h *BookingHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	pdf, err := h.receipt.GetReceiptPDF(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, bookingID.String()))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateBookingStatus(r.Context(), bookingID, req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", resp)
}

// GetBookingsByShow handles GET /api/admin/shows/{id}/bookings
func (h *BookingHandler) GetBookingsByShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetBookingsByShow(r.Context(), showID)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings by show")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// GetBookingsByDateRange handles GET /api/admin/bookings/range?from=&to=
func (h *BookingHandler) GetBookingsByDateRange(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid from date, expected YYYY-MM-DD", nil)
		return
	}

	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid to date, expected YYYY-MM-DD", nil)
		return
	}

	// Make the range inclusive of the whole end day
	to = to.Add(24*time.Hour - time.Nanosecond)

	resp, err := h.service.GetBookingsByDateRange(r.Context(), from, to)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings by date range")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// GetAllBookings handles GET /api/admin/bookings
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAllBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}
