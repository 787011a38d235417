package request

type CreateShowRequest struct {
	MovieID      string  `json:"movie_id" validate:"required,uuid4"`
	TheaterID    string  `json:"theater_id" validate:"required,uuid4"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
	PricePerSeat float64 `json:"price_per_seat" validate:"required,min=0"`
}

type UpdateShowRequest struct {
	MovieID      string  `json:"movie_id" validate:"required,uuid4"`
	TheaterID    string  `json:"theater_id" validate:"required,uuid4"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
	PricePerSeat float64 `json:"price_per_seat" validate:"required,min=0"`
}
