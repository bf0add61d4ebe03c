package adaptor

import (
	"net/http"

	"kinohub/internal/dto/request"
	"kinohub/internal/usecase"
	"kinohub/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), titleID, parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", resp)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	caller := utils.GetCallerFromContext(r.Context())
	resp, err := h.service.Create(r.Context(), caller, titleID, req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Review created", resp)
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(w, r, "reviewID")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), titleID, reviewID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Review retrieved", resp)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(w, r, "reviewID")
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	caller := utils.GetCallerFromContext(r.Context())
	resp, err := h.service.Update(r.Context(), caller, titleID, reviewID, req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Review updated", resp)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(w, r, "reviewID")
	if !ok {
		return
	}

	caller := utils.GetCallerFromContext(r.Context())
	if err := h.service.Delete(r.Context(), caller, titleID, reviewID); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
