package request

type SignUpRequest struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type TokenRequest struct {
	Username         string `json:"username" validate:"required,max=150"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}
