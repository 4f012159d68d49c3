package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-apple-pay/internal/adapter"
	"github.com/MKhiriev/go-apple-pay/internal/app"
	"github.com/MKhiriev/go-apple-pay/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidValidationURL:   http.StatusBadRequest,
	service.ErrInvalidMerchantRequest: http.StatusInternalServerError,

	adapter.ErrUpstream:  http.StatusBadGateway,
	adapter.ErrParse:     http.StatusBadGateway,
	adapter.ErrTransport: http.StatusBadGateway,
	adapter.ErrCancelled: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidValidationURL,
	http.StatusBadGateway:          app.MsgMerchantSessionFailed,
	http.StatusGatewayTimeout:      app.MsgMerchantSessionTimeout,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func messageFromStatus(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
