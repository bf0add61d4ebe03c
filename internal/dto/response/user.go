package response

import (
	"time"

	"kinohub/internal/data/entity"
	"kinohub/pkg/permission"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name,omitempty"`
	LastName  string          `json:"last_name,omitempty"`
	Bio       string          `json:"bio,omitempty"`
	Role      permission.Role `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// Helper converter
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
