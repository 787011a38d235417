package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID          string               `json:"id"`
	BookingID   string               `json:"booking_id"`
	PaymentMode string               `json:"payment_mode"`
	Amount      float64              `json:"amount"`
	Status      entity.PaymentStatus `json:"status"`
	PaidAt      time.Time            `json:"paid_at"`
}

type PaymentDetailResponse struct {
	PaymentID   string               `json:"payment_id"`
	BookingID   string               `json:"booking_id"`
	PaymentMode string               `json:"payment_mode"`
	Amount      float64              `json:"amount"`
	Status      entity.PaymentStatus `json:"status"`
	PaidAt      time.Time            `json:"paid_at"`
	MovieTitle  string               `json:"movie_title"`
	TheaterName string               `json:"theater_name"`
	ShowTime    time.Time            `json:"show_time"`
}

// Helper converters
func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          payment.ID.String(),
		BookingID:   payment.BookingID.String(),
		PaymentMode: payment.PaymentMode,
		Amount:      payment.Amount,
		Status:      payment.Status,
		PaidAt:      payment.PaidAt,
	}
}

func PaymentDetailToResponse(d *entity.PaymentDetail) PaymentDetailResponse {
	return PaymentDetailResponse{
		PaymentID:   d.PaymentID.String(),
		BookingID:   d.BookingID.String(),
		PaymentMode: d.PaymentMode,
		Amount:      d.Amount,
		Status:      d.Status,
		PaidAt:      d.PaidAt,
		MovieTitle:  d.MovieTitle,
		TheaterName: d.TheaterName,
		ShowTime:    d.ShowTime,
	}
}

func PaymentDetailsToResponse(details []*entity.PaymentDetail) []PaymentDetailResponse {
	responses := make([]PaymentDetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, PaymentDetailToResponse(d))
	}
	return responses
}
