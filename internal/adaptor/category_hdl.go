package adaptor

import (
	"net/http"

	"kinohub/internal/dto/request"
	"kinohub/internal/usecase"
	"kinohub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	resp, err := h.service.List(r.Context(), search, parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", resp)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Category created", resp)
}

// Get rejects single-category reads: categories are reference data only
// listed as a collection.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "Categories can only be listed")
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
