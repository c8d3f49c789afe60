package apierrors

import (
	"errors"

	"campaign-server/internal/provider"

	"github.com/gin-gonic/gin"
)

// ProviderError writes the response for a gateway failure and reports whether err was one
func ProviderError(c *gin.Context, err error) bool {
	var unavailable *provider.UnavailableError
	switch {
	case errors.Is(err, provider.ErrConfigurationMissing):
		ServiceUnavailable(c, "CONFIGURATION_MISSING", "WhatsApp gateway is not configured", err)
	case errors.As(err, &unavailable):
		BadGateway(c, "PROVIDER_UNAVAILABLE", "WhatsApp gateway did not respond", map[string]interface{}{
			"provider":    unavailable.Provider,
			"operation":   unavailable.Operation,
			"status_code": unavailable.StatusCode,
		}, err)
	case errors.Is(err, provider.ErrProviderUnavailable):
		BadGateway(c, "PROVIDER_UNAVAILABLE", "WhatsApp gateway did not respond", nil, err)
	case errors.Is(err, provider.ErrUnknownProvider):
		BadRequest(c, "UNKNOWN_PROVIDER", "Unknown WhatsApp provider")
	default:
		return false
	}
	return true
}
