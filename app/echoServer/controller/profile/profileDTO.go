package profile

type UpdateLocationReq struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Address   string  `json:"address,omitempty"`
}

type UpdateContactReq struct {
	ContactNumber string `json:"contact_number" validate:"required"`
}

type UpdateVisibilityReq struct {
	VisibleName     bool `json:"visible_name"`
	VisibleEmail    bool `json:"visible_email"`
	VisibleContact  bool `json:"visible_contact"`
	VisibleAddress  bool `json:"visible_address"`
	VisibleLocation bool `json:"visible_location"`
}
