package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type MovieResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	Genre             string    `json:"genre"`
	Language          string    `json:"language"`
	DurationInMinutes int       `json:"duration_in_minutes"`
	ReleaseDate       time.Time `json:"release_date"`
	CreatedAt         time.Time `json:"created_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		Genre:             movie.Genre,
		Language:          movie.Language,
		DurationInMinutes: movie.DurationInMinutes,
		ReleaseDate:       movie.ReleaseDate,
		CreatedAt:         movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		responses = append(responses, MovieToResponse(m))
	}
	return responses
}
