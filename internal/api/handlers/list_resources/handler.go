package list_resources

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kittyofheaven/kaizen-booking/internal/api/handlers"
	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/internal/service/catalog"
)

const (
	msgInvalidKind = "неизвестный тип объекта"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := domain.ResourceKind(mux.Vars(r)["kind"])

	resources, fallback, err := h.service.List(r.Context(), kind)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidKind):
			h.logger.Warn("GET /resources/{kind} - Unknown kind: %s", kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("GET /resources/{kind} - Failed to list resources: kind=%s, error=%v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{kind} - Resources listed: kind=%s, count=%d, fallback=%v", kind, len(resources), fallback)
	handlers.RespondJSON(w, http.StatusOK, FromResources(kind, resources, fallback))
}
