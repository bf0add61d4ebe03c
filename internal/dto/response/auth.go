package response

// SignUpResponse echoes the registered fields; the confirmation code
// itself only travels by email.
type SignUpResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
