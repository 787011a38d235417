package request

type CreateMovieRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Genre             string  `json:"genre" validate:"required,min=2,max=50"`
	Language          string  `json:"language" validate:"required,min=2,max=50"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,min=1,max=600"`
	ReleaseDate       string  `json:"release_date" validate:"required"`
}

type UpdateMovieRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Genre             string  `json:"genre" validate:"required,min=2,max=50"`
	Language          string  `json:"language" validate:"required,min=2,max=50"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,min=1,max=600"`
	ReleaseDate       string  `json:"release_date" validate:"required"`
}
