package rent

type CreateRequestReq struct {
	BookID          string  `json:"book_id" validate:"required"`
	DeliveryAddress *string `json:"delivery_address,omitempty"`
}
