package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type TheaterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:        theater.ID.String(),
		Name:      theater.Name,
		City:      theater.City,
		Address:   theater.Address,
		Capacity:  theater.Capacity,
		CreatedAt: theater.CreatedAt,
	}
}

func TheatersToResponse(theaters []*entity.Theater) []TheaterResponse {
	responses := make([]TheaterResponse, 0, len(theaters))
	for _, t := range theaters {
		responses = append(responses, TheaterToResponse(t))
	}
	return responses
}
