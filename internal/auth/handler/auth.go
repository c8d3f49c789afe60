package handler

import (
	"net/http"
	"strings"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/auth/processor"
	"campaign-server/internal/observability"
	"campaign-server/internal/tenancy"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware validates the bearer token and stores the caller's scope on the context
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}

	scope, err := h.authProcessor.Scope(claims)
	if err != nil {
		h.logger.WarnWithError(ctx, "rejected token claims", err)
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}

	tenancy.Set(c, scope)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: scope.TenantID.String()},
		observability.Field{Key: "role", Value: scope.Role},
	))
	c.Next()
}

// GetUserInfo returns the scope resolved from the caller's token
func (h *Handler) GetUserInfo(c *gin.Context) {
	scope, ok := tenancy.FromGin(c)
	if !ok {
		apierrors.Unauthorized(c, "Tenant not found in context")
		return
	}

	resp := gin.H{
		"role": scope.Role,
		"name": scope.UserName,
	}
	if scope.Owner() != nil {
		resp["tenantId"] = scope.TenantID
	}
	if scope.UserID != nil {
		resp["userId"] = *scope.UserID
	}
	c.JSON(http.StatusOK, resp)
}
