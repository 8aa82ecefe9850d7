package models

import (
	"time"

	"github.com/jimmyqrg/parkoreen-sub001/internal/palette"
)

// User is a row in the shared users table. The account service owns
// writes; the coordinator only reads identity and the persisted color.
type User struct {
	ID              int       `json:"id"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"display_name"`
	PasswordHash    string    `json:"-"`
	ColorHue        float64   `json:"color_hue"`
	ColorSaturation float64   `json:"color_saturation"`
	ColorLightness  float64   `json:"color_lightness"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Color() palette.Color {
	return palette.Color{H: u.ColorHue, S: u.ColorSaturation, L: u.ColorLightness}
}
