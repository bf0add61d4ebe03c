package adaptor

import (
	"errors"
	"net/http"

	"kinohub/internal/dto/request"
	"kinohub/internal/usecase"
	"kinohub/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// SignUp handles POST /auth/signup. Repeating the same (username, email)
// pair re-issues the code, so the endpoint is safe to retry. A dispatch
// failure still returns 200: the account exists and a retry sends a
// fresh code.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrCodeDispatch) {
			utils.ResponseSuccess(w, "Registered, but the confirmation code could not be delivered; retry to receive a new one", resp)
			return
		}
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Confirmation code sent", resp)
}

// Token handles POST /auth/token, exchanging a confirmation code for an
// access token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.TokenReceive(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Token issued", resp)
}
