package adaptor

import (
	"net/http"

	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/internal/usecase"
	"kinohub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// parseUUIDParam reads a UUID path parameter. A malformed value means the
// resource cannot exist, so it maps to 404.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseNotFound(w, "Resource not found")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /titles with category, genre, name and year filters.
func (h *TitleHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.TitleFilter{
		CategorySlug: query.Get("category"),
		GenreSlug:    query.Get("genre"),
		Name:         query.Get("name"),
		Year:         utils.ParseInt(query.Get("year"), 0),
	}

	resp, err := h.service.List(r.Context(), filter, parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Titles retrieved", resp)
}

func (h *TitleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTitleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Title created", resp)
}

func (h *TitleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Title retrieved", resp)
}

func (h *TitleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}

	var req request.UpdateTitleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Title updated", resp)
}

func (h *TitleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "titleID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
