package adaptor

import (
	"net/http"

	"kinohub/internal/dto/request"
	"kinohub/internal/usecase"
	"kinohub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// commentPath reads the nested title/review path pair shared by every
// comment endpoint.
func commentPath(w http.ResponseWriter, r *http.Request) (titleID, reviewID uuid.UUID, ok bool) {
	titleID, ok = parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}
	reviewID, ok = parseUUIDParam(w, r, "reviewID")
	return
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), titleID, reviewID, parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved", resp)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}

	var req request.CreateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	caller := utils.GetCallerFromContext(r.Context())
	resp, err := h.service.Create(r.Context(), caller, titleID, reviewID, req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Comment created", resp)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(w, r, "commentID")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Comment retrieved", resp)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(w, r, "commentID")
	if !ok {
		return
	}

	var req request.UpdateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	caller := utils.GetCallerFromContext(r.Context())
	resp, err := h.service.Update(r.Context(), caller, titleID, reviewID, commentID, req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Comment updated", resp)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(w, r, "commentID")
	if !ok {
		return
	}

	caller := utils.GetCallerFromContext(r.Context())
	if err := h.service.Delete(r.Context(), caller, titleID, reviewID, commentID); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
