package rest

import "net/http"

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Health    *HealthHandler
	Translate *TranslateHandler
	Admin     *AdminHandler
}

// NewRouter assembles the REST route table.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("POST /v1/translate", deps.Translate.Translate)
	mux.HandleFunc("POST /v1/chat/translate", deps.Translate.TranslateChat)

	mux.HandleFunc("POST /v1/admin/refresh", deps.Admin.RefreshDictionary)

	return mux
}
