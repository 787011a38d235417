package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	ShowID      string               `json:"show_id"`
	TotalAmount float64              `json:"total_amount"`
	Status      entity.BookingStatus `json:"status"`
	PaymentMode string               `json:"payment_mode,omitempty"`
	SeatNumbers []string             `json:"seat_numbers,omitempty"`
	BookingTime time.Time            `json:"booking_time"`
}

// BookingDetailResponse is the joined read view. Payment fields default to
// "N/A" / 0.0 when the booking has no settled payment.
type BookingDetailResponse struct {
	BookingID   string               `json:"booking_id"`
	UserName    string               `json:"user_name"`
	UserEmail   string               `json:"user_email"`
	MovieTitle  string               `json:"movie_title"`
	TheaterName string               `json:"theater_name"`
	ShowTime    time.Time            `json:"show_time"`
	Status      entity.BookingStatus `json:"status"`
	BookingTime time.Time            `json:"booking_time"`
	PaymentMode string               `json:"payment_mode"`
	TotalAmount float64              `json:"total_amount"`
	SeatNumbers []string             `json:"seat_numbers"`
}

// CancellationReceipt confirms a cancellation and lists the freed seats.
type CancellationReceipt struct {
	BookingID   string    `json:"booking_id"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	SeatNumbers []string  `json:"seat_numbers"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, seatNos []string) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		ShowID:      booking.ShowID.String(),
		TotalAmount: booking.TotalAmount,
		Status:      booking.Status,
		PaymentMode: booking.PaymentMode,
		SeatNumbers: seatNos,
		BookingTime: booking.BookingTime,
	}
}

func BookingDetailToResponse(d *entity.BookingDetail) BookingDetailResponse {
	resp := BookingDetailResponse{
		BookingID:   d.BookingID.String(),
		UserName:    d.UserName,
		UserEmail:   d.UserEmail,
		MovieTitle:  d.MovieTitle,
		TheaterName: d.TheaterName,
		ShowTime:    d.StartTime,
		Status:      d.Status,
		BookingTime: d.BookingTime,
		PaymentMode: "N/A",
		SeatNumbers: d.SeatNos,
	}

	if d.PaymentMode != nil {
		resp.PaymentMode = *d.PaymentMode
	}
	if d.TotalAmount != nil {
		resp.TotalAmount = *d.TotalAmount
	}
	if resp.SeatNumbers == nil {
		resp.SeatNumbers = []string{}
	}

	return resp
}

func BookingDetailsToResponse(details []*entity.BookingDetail) []BookingDetailResponse {
	responses := make([]BookingDetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, BookingDetailToResponse(d))
	}
	return responses
}
