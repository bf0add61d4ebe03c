package adaptor

import (
	"net/http"

	"kinohub/internal/dto/request"
	"kinohub/internal/usecase"
	"kinohub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	resp, err := h.service.List(r.Context(), search, parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved", resp)
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGenreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Genre created", resp)
}

// Get rejects single-genre reads, matching the category collection.
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "Genres can only be listed")
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
