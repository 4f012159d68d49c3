package http

import (
	"net/http"

	"github.com/MKhiriev/go-apple-pay/internal/logger"
)

// getDomainAssociation serves the file Apple fetches to verify that the
// merchant owns the domain.
func (h *Handler) getDomainAssociation(w http.ResponseWriter, r *http.Request) {
	if h.domainAssociationFile == "" {
		logger.FromRequest(r).Warn().Err(ErrDomainAssociationNotConfigured).Send()
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	http.ServeFile(w, r, h.domainAssociationFile)
}
