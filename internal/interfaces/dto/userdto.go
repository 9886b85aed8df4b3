// Package dto holds the wire representations shared by the HTTP handlers.
// Field names follow the JSON contract the web client expects; password
// material never appears in any response type.
package dto

import (
	"time"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt(),
	}
}
