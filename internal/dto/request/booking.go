package request

// BookSeatsRequest reserves seats by their IDs. No payment is written;
// settlement happens later through the payment endpoints.
type BookSeatsRequest struct {
	ShowID  string   `json:"show_id" validate:"required,uuid4"`
	SeatIDs []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
}

// BookShowRequest reserves seats by seat number and settles payment in the
// same unit of work.
type BookShowRequest struct {
	ShowID      string   `json:"show_id" validate:"required,uuid4"`
	SeatNos     []string `json:"seat_numbers" validate:"required,min=1,dive,min=1,max=10"`
	PaymentMode string   `json:"payment_mode" validate:"required,min=2,max=30"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,min=2,max=30"`
}

type BookingDateRangeRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}
