package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type ShowResponse struct {
	ID           string    `json:"id"`
	MovieID      string    `json:"movie_id"`
	TheaterID    string    `json:"theater_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	PricePerSeat float64   `json:"price_per_seat"`
	CreatedAt    time.Time `json:"created_at"`
}

func ShowToResponse(show *entity.Show) ShowResponse {
	return ShowResponse{
		ID:           show.ID.String(),
		MovieID:      show.MovieID.String(),
		TheaterID:    show.TheaterID.String(),
		StartTime:    show.StartTime,
		EndTime:      show.EndTime,
		PricePerSeat: show.PricePerSeat,
		CreatedAt:    show.CreatedAt,
	}
}

func ShowsToResponse(shows []*entity.Show) []ShowResponse {
	responses := make([]ShowResponse, 0, len(shows))
	for _, s := range shows {
		responses = append(responses, ShowToResponse(s))
	}
	return responses
}
