package request

type SeatInput struct {
	SeatNo string  `json:"seat_no" validate:"required,min=1,max=10"`
	Price  float64 `json:"price" validate:"required,min=0"`
}

// AddSeatsRequest creates the seat inventory for a show in one batch.
type AddSeatsRequest struct {
	ShowID string      `json:"show_id" validate:"required,uuid4"`
	Seats  []SeatInput `json:"seats" validate:"required,min=1,dive"`
}

type UpdateSeatRequest struct {
	SeatNo string  `json:"seat_no" validate:"required,min=1,max=10"`
	Price  float64 `json:"price" validate:"required,min=0"`
}
