package response

import (
	"movie-booking/internal/data/entity"
)

type SeatResponse struct {
	ID       string  `json:"id"`
	ShowID   string  `json:"show_id"`
	SeatNo   string  `json:"seat_no"`
	Price    float64 `json:"price"`
	IsBooked bool    `json:"is_booked"`
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:       seat.ID.String(),
		ShowID:   seat.ShowID.String(),
		SeatNo:   seat.SeatNo,
		Price:    seat.Price,
		IsBooked: seat.IsBooked,
	}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	responses := make([]SeatResponse, 0, len(seats))
	for _, s := range seats {
		responses = append(responses, SeatToResponse(s))
	}
	return responses
}
