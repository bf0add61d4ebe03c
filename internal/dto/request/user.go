package request

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

// UpdateMeRequest is the self-service PATCH. Role is deliberately absent:
// callers cannot escalate themselves.
type UpdateMeRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}
