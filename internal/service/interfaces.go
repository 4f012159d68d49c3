package service

import (
	"context"

	"github.com/MKhiriev/go-apple-pay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MerchantSessionService obtains merchant sessions on behalf of the web page.
type MerchantSessionService interface {
	// CreateMerchantSession requests a merchant session from the gateway
	// named by request.ValidationURL and returns it unchanged.
	CreateMerchantSession(ctx context.Context, request models.ValidateMerchantRequest) (models.MerchantSession, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
