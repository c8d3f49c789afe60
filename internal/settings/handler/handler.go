package handler

import (
	"errors"
	"net/http"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/observability"
	"campaign-server/internal/settings/processor"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SettingsProcessor
	logger    *observability.Logger
}

func New(processor processor.SettingsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpdateGatewaySettingsRequest represents the HTTP request for updating gateway credentials
type UpdateGatewaySettingsRequest struct {
	WahaHost        string `json:"waha_host" binding:"omitempty,url"`
	WahaAPIKey      string `json:"waha_api_key"`
	EvolutionHost   string `json:"evolution_host" binding:"omitempty,url"`
	EvolutionAPIKey string `json:"evolution_api_key"`
}

// UpdateTenantSettingsRequest represents the HTTP request for updating tenant AI keys
type UpdateTenantSettingsRequest struct {
	OpenAIAPIKey *string `json:"openai_api_key,omitempty"`
	GroqAPIKey   *string `json:"groq_api_key,omitempty"`
}

// HandleGetGatewaySettings returns the masked gateway settings
func (h *Handler) HandleGetGatewaySettings(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := h.superAdminScope(c); !ok {
		return
	}

	settings, err := h.processor.GetGatewaySettings(ctx)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings.Masked())
}

// HandleUpdateGatewaySettings replaces the gateway settings
func (h *Handler) HandleUpdateGatewaySettings(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.superAdminScope(c)
	if !ok {
		return
	}

	var req UpdateGatewaySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	settings, err := h.processor.UpdateGatewaySettings(ctx, scope, store.UpdateGlobalSettingsParams{
		WahaHost:        req.WahaHost,
		WahaAPIKey:      req.WahaAPIKey,
		EvolutionHost:   req.EvolutionHost,
		EvolutionAPIKey: req.EvolutionAPIKey,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings.Masked())
}

// HandleGetTenantSettings returns the masked AI keys of the caller's tenant
func (h *Handler) HandleGetTenantSettings(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := tenancy.FromGin(c)
	if !ok {
		apierrors.Unauthorized(c, "Tenant not found in context")
		return
	}

	keys, err := h.processor.GetTenantAIKeys(ctx, scope.TenantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, keys)
}

// HandleUpdateTenantSettings stores the AI keys of the caller's tenant
func (h *Handler) HandleUpdateTenantSettings(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := tenancy.FromGin(c)
	if !ok {
		apierrors.Unauthorized(c, "Tenant not found in context")
		return
	}

	var req UpdateTenantSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	keys, err := h.processor.UpdateTenantAIKeys(ctx, scope.TenantID, store.UpdateTenantSettingsParams{
		OpenAIAPIKey: req.OpenAIAPIKey,
		GroqAPIKey:   req.GroqAPIKey,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, keys)
}

func (h *Handler) superAdminScope(c *gin.Context) (tenancy.Scope, bool) {
	scope, ok := tenancy.FromGin(c)
	if !ok {
		apierrors.Unauthorized(c, "Tenant not found in context")
		return tenancy.Scope{}, false
	}
	if !scope.IsSuperAdmin() {
		apierrors.Forbidden(c, "FORBIDDEN", "Only a super admin can manage gateway settings")
		return tenancy.Scope{}, false
	}
	return scope, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrForbidden):
		apierrors.Forbidden(c, "FORBIDDEN", "Only a super admin can manage gateway settings")
	default:
		apierrors.InternalError(c, err)
	}
}
