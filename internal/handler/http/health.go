package http

import (
	"net/http"

	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}
