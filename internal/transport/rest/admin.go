package rest

import (
	"log/slog"
	"net/http"
	"time"
)

// dictionaryInvalidator marks the cached dictionary tables stale so the next
// lookup reloads from the database.
type dictionaryInvalidator interface {
	Invalidate()
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	dict dictionaryInvalidator
	log  *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(dict dictionaryInvalidator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		dict: dict,
		log:  logger.With("handler", "admin"),
	}
}

// RefreshDictionary handles POST /v1/admin/refresh. It invalidates the
// dictionary snapshots; reload happens lazily on the next lookup.
func (h *AdminHandler) RefreshDictionary(w http.ResponseWriter, r *http.Request) {
	h.dict.Invalidate()
	h.log.InfoContext(r.Context(), "dictionary refresh requested")

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"refreshed_at": time.Now().UTC(),
	})
}
