package model

import "time"

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	IsAdmin       bool      `json:"is_admin"`
	Address       *string   `json:"address,omitempty"`
	ContactNumber *string   `json:"contact_number,omitempty"`
	Location      *Location `json:"location,omitempty"`
	ReportCount   int       `json:"report_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Visibility holds the per-field switches a user controls for their public
// profile. One row per user, created at signup.
type Visibility struct {
	UserID          string `json:"user_id"`
	VisibleName     bool   `json:"visible_name"`
	VisibleEmail    bool   `json:"visible_email"`
	VisibleContact  bool   `json:"visible_contact"`
	VisibleAddress  bool   `json:"visible_address"`
	VisibleLocation bool   `json:"visible_location"`
}

// PublicProfile is the projection other users see. ID is always present;
// every other field is nil unless its visibility flag is on.
type PublicProfile struct {
	ID            string    `json:"id"`
	Name          *string   `json:"name,omitempty"`
	Email         *string   `json:"email,omitempty"`
	ContactNumber *string   `json:"contact_number,omitempty"`
	Address       *string   `json:"address,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

// RegisterReq represents the signup payload
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginReq represents the login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
