package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	merchantSessionPath   = "/merchant-session/new"
	versionPath           = "/api/version"
	healthPath            = "/health"
	domainAssociationPath = "/.well-known/apple-developer-merchantid-domain-association"
)

// Init builds the router. It satisfies the server's startup contract.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get(healthPath, h.health)
	router.Get(versionPath, h.getServerVersion)
	router.Get(domainAssociationPath, h.getDomainAssociation)

	router.Post(merchantSessionPath, h.createMerchantSession)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
