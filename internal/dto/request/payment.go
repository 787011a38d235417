package request

// MakePaymentRequest settles an unpaid booking. The amount is derived from
// the booking's total on the server side and never taken from the client.
type MakePaymentRequest struct {
	BookingID   string `json:"booking_id" validate:"required,uuid4"`
	PaymentMode string `json:"payment_mode" validate:"required,min=2,max=30"`
}

type RetryPaymentRequest struct {
	PaymentMode string `json:"payment_mode" validate:"required,min=2,max=30"`
}
