package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"kinohub/internal/dto/request"
	"kinohub/internal/usecase"
	"kinohub/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Title:    NewTitleHandler(service.Title, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
	}
}

// decodeAndValidate parses the JSON body into req and runs struct
// validation. Writes the error response itself and reports success.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return false
	}

	return true
}

// parsePagination reads page and per_page query parameters with defaults.
func parsePagination(r *http.Request) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}

// handleServiceError maps usecase sentinel errors to HTTP responses.
// Conflicts come back as 400 to match the validation error shape.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrConflict),
		errors.Is(err, usecase.ErrBadRequest),
		errors.Is(err, usecase.ErrInvalidCode):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, "You do not have permission to perform this action")
	default:
		log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
