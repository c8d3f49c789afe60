package handler

import (
	"context"
	"errors"
	"net/http"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/observability"
	"campaign-server/internal/sessions/processor"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.SessionProcessor
	logger    *observability.Logger
}

func New(processor processor.SessionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateSessionRequest represents the HTTP request for creating a session
type CreateSessionRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Provider string `json:"provider" binding:"required,oneof=WAHA EVOLUTION"`
	// TenantID lets a super admin create the session for a tenant
	TenantID string `json:"tenantId" binding:"omitempty,uuid"`
}

// AssignTenantRequest represents the HTTP request for moving a session to another tenant
type AssignTenantRequest struct {
	TenantID string `json:"tenantId" binding:"required,uuid"`
}

// HandleListSessions lists the sessions of the caller after reconciling them
func (h *Handler) HandleListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	sessions, err := h.processor.ListSessions(ctx, scope)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// HandleGetSession returns one session
func (h *Handler) HandleGetSession(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	session, err := h.processor.GetSession(ctx, scope, c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// HandleCreateSession creates a session on the chosen provider
func (h *Handler) HandleCreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	if req.TenantID != "" {
		scope = scope.WithTenant(uuid.MustParse(req.TenantID))
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: scope.TenantID.String()},
		observability.Field{Key: "provider", Value: req.Provider},
	)

	session, err := h.processor.CreateSession(ctx, scope, req.Name, req.Provider)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// HandleStartSession starts a session
func (h *Handler) HandleStartSession(c *gin.Context) {
	h.lifecycle(c, h.processor.StartSession)
}

// HandleStopSession stops a session
func (h *Handler) HandleStopSession(c *gin.Context) {
	h.lifecycle(c, h.processor.StopSession)
}

// HandleRestartSession restarts a session
func (h *Handler) HandleRestartSession(c *gin.Context) {
	h.lifecycle(c, h.processor.RestartSession)
}

func (h *Handler) lifecycle(c *gin.Context, action func(ctx context.Context, scope tenancy.Scope, name string) (store.WhatsAppSession, error)) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	session, err := action(ctx, scope, c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// HandleDeleteSession deletes a session
func (h *Handler) HandleDeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteSession(ctx, scope, c.Param("name")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleGetQRCode returns a QR code to pair the session
func (h *Handler) HandleGetQRCode(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	qr, err := h.processor.IssueQRCode(ctx, scope, c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, qr)
}

// HandleGetStatus returns the live status of a session
func (h *Handler) HandleGetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	status, err := h.processor.GetStatus(ctx, scope, c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleGetIdentity returns the WhatsApp account behind a session
func (h *Handler) HandleGetIdentity(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	me, err := h.processor.GetIdentity(ctx, scope, c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       me.ID,
		"pushName": me.PushName,
		"lid":      me.LID,
		"jid":      me.JID,
	})
}

// HandleAssignTenant moves a session to another tenant
func (h *Handler) HandleAssignTenant(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	var req AssignTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid tenant ID format")
		return
	}

	session, err := h.processor.AssignTenant(ctx, scope, c.Param("name"), tenantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) getScope(c *gin.Context) (tenancy.Scope, bool) {
	scope, ok := tenancy.FromGin(c)
	if !ok {
		apierrors.Unauthorized(c, "Tenant not found in context")
		return tenancy.Scope{}, false
	}
	return scope, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	if apierrors.ProviderError(c, err) {
		return
	}

	var notConnectable *processor.NotConnectableError
	switch {
	case errors.Is(err, processor.ErrSessionNotFound):
		apierrors.NotFound(c, "Session not found")
	case errors.Is(err, processor.ErrDuplicateSession):
		apierrors.Conflict(c, "DUPLICATE_SESSION", "A session with this name already exists")
	case errors.Is(err, processor.ErrInvalidSessionName):
		apierrors.BadRequest(c, "INVALID_SESSION_NAME", "Session name must contain letters or digits")
	case errors.As(err, &notConnectable):
		apierrors.BadRequestWithDetails(c, "SESSION_NOT_CONNECTABLE", "Session cannot be connected right now", map[string]interface{}{
			"status": string(notConnectable.Status),
		})
	case errors.Is(err, processor.ErrForbidden):
		apierrors.Forbidden(c, "FORBIDDEN", "Only a super admin can do this")
	case errors.Is(err, tenancy.ErrTenantRequired):
		apierrors.BadRequest(c, "TENANT_REQUIRED", "A tenant is required")
	default:
		apierrors.InternalError(c, err)
	}
}
