package request

type CreateTheaterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	City     string `json:"city" validate:"required,min=1,max=100"`
	Address  string `json:"address" validate:"required,min=1,max=255"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type UpdateTheaterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	City     string `json:"city" validate:"required,min=1,max=100"`
	Address  string `json:"address" validate:"required,min=1,max=255"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}
