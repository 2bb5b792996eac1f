package dto

import "time"

// AdminUserDTO is the admin list projection of a user; the password hash
// and the Telegram link never leave the server.
type AdminUserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
