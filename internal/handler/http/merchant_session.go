package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-apple-pay/internal/app"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/utils"
	"github.com/MKhiriev/go-apple-pay/models"
)

// maxMerchantRequestBytes bounds the {"validationUrl": ...} body.
const maxMerchantRequestBytes = 16 << 10

func (h *Handler) createMerchantSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ValidateMerchantRequest
	if err := utils.ReadJSON(w, r, &request, maxMerchantRequestBytes); err != nil {
		log.Err(err).Msg(app.MsgInvalidDataProvided)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	request.DomainName = requestHost(r)

	session, err := h.services.MerchantSessionService.CreateMerchantSession(ctx, request)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).
			Str("validation_url", request.ValidationURL).
			Int("status", status).
			Msg(app.MsgMerchantSessionNotCreated)
		http.Error(w, messageFromStatus(status), status)
		return
	}

	if err = writeMerchantSession(w, session); err != nil {
		log.Err(err).Msg("error writing merchant session")
	}
}

// writeMerchantSession relays the document exactly as Apple sent it.
// json.Marshal would compact it and escape HTML characters.
func writeMerchantSession(w http.ResponseWriter, session models.MerchantSession) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(session.Raw())
	return err
}

// requestHost returns the host the page was served from, without port.
func requestHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.Host)
	if err != nil {
		return r.Host
	}
	return host
}
