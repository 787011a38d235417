package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

// MakePayment handles POST /api/payments
func (h *PaymentHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.MakePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.MakePayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "make payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded", resp)
}

// RetryPayment handles POST /api/bookings/{id}/payment/retry
func (h *PaymentHandler) RetryPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.RetryPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.RetryPayment(r.Context(), userID, bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "retry payment")
		return
	}

	utils.ResponseSuccess(w, "Payment retried", resp)
}

// GetMyPayments handles GET /api/payments
func (h *PaymentHandler) GetMyPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetPaymentsForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved", resp)
}

// GetPaymentByBookingID handles GET /api/bookings/{id}/payment
func (h *PaymentHandler) GetPaymentByBookingID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	resp, err := h.service.GetPaymentByBookingID(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "Payment retrieved", resp)
}

// GetPaymentsByUser handles GET /api/admin/users/{id}/payments
func (h *PaymentHandler) GetPaymentsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlParamUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetPaymentsForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payments by user")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved", resp)
}
