package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/campaign/processor"
	contacts "campaign-server/internal/contacts/processor"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name             string          `json:"name" binding:"required,min=1,max=255"`
	TargetTags       []string        `json:"targetTags" binding:"omitempty,dive,uuid"`
	SessionNames     []string        `json:"sessionNames" binding:"required,min=1,dive,min=1"`
	MessageType      string          `json:"messageType" binding:"required,oneof=text image video audio document sequence openai groq wait"`
	MessageContent   json.RawMessage `json:"messageContent" binding:"required"`
	RandomDelay      int             `json:"randomDelay" binding:"min=0"`
	StartImmediately bool            `json:"startImmediately"`
	ScheduledFor     *time.Time      `json:"scheduledFor,omitempty"`
}

// UpdateCampaignRequest represents the HTTP request for editing a campaign
type UpdateCampaignRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=255"`
	MessageType    string          `json:"messageType" binding:"required,oneof=text image video audio document sequence openai groq wait"`
	MessageContent json.RawMessage `json:"messageContent" binding:"required"`
	RandomDelay    int             `json:"randomDelay" binding:"min=0"`
	ScheduledFor   *time.Time      `json:"scheduledFor,omitempty"`
}

// ToggleCampaignRequest represents the HTTP request for pausing or resuming a campaign
type ToggleCampaignRequest struct {
	Action string `json:"action" binding:"required,oneof=pause resume"`
}

// PreviewAIRequest represents the HTTP request for generating a sample AI message
type PreviewAIRequest struct {
	MessageType    string          `json:"messageType" binding:"required,oneof=openai groq"`
	MessageContent json.RawMessage `json:"messageContent" binding:"required"`
}

// HandleListCampaigns lists campaigns with search and pagination
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.processor.ListCampaigns(ctx, scope, c.Query("search"), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetCampaign returns a campaign with its messages
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, scope, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleCreateCampaign validates and plans a campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	categoryIDs := make([]uuid.UUID, 0, len(req.TargetTags))
	for _, tag := range req.TargetTags {
		id, err := uuid.Parse(tag)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "Invalid category ID format")
			return
		}
		categoryIDs = append(categoryIDs, id)
	}

	campaign, err := h.processor.CreateCampaign(ctx, scope, processor.CreateCampaignParams{
		Name:             req.Name,
		CategoryIDs:      categoryIDs,
		SessionNames:     req.SessionNames,
		MessageType:      req.MessageType,
		MessageContent:   req.MessageContent,
		RandomDelay:      req.RandomDelay,
		StartImmediately: req.StartImmediately,
		ScheduledFor:     req.ScheduledFor,
	})
	if err != nil {
		if errors.Is(err, contacts.ErrNoEligibleContacts) {
			apierrors.BadRequestWithDetails(c, "NO_ELIGIBLE_CONTACTS", "No contacts found in the selected categories", map[string]interface{}{
				"category_ids": categoryIDs,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleUpdateCampaign edits a campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, scope, id, processor.UpdateCampaignParams{
		Name:           req.Name,
		MessageType:    req.MessageType,
		MessageContent: req.MessageContent,
		RandomDelay:    req.RandomDelay,
		ScheduledFor:   req.ScheduledFor,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign deletes a campaign and its messages
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(ctx, scope, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleToggleCampaign pauses or resumes a campaign
func (h *Handler) HandleToggleCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req ToggleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.ToggleCampaign(ctx, scope, id, req.Action)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleGetReport returns the delivery report of a campaign
func (h *Handler) HandleGetReport(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	report, err := h.processor.BuildReport(ctx, scope, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleListActiveSessions lists the sessions a campaign can send through
func (h *Handler) HandleListActiveSessions(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	sessions, err := h.processor.ListActiveSessions(ctx, scope)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if sessions == nil {
		sessions = []store.WhatsAppSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// HandleListContactTags lists the categories a campaign can target
func (h *Handler) HandleListContactTags(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	categories, err := h.processor.ListContactTags(ctx, scope)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tags := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		tags = append(tags, gin.H{"id": category.ID, "name": category.Name, "color": category.Color})
	}
	c.JSON(http.StatusOK, tags)
}

// HandlePreviewAIContent generates a sample of an openai or groq message
func (h *Handler) HandlePreviewAIContent(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	var req PreviewAIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	text, err := h.processor.PreviewAIContent(ctx, scope, req.MessageType, req.MessageContent)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func parseCampaignID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID format")
		return uuid.Nil, false
	}
	return id, true
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

	var inactive *processor.InactiveSessionsError
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.As(err, &inactive):
		code, message := "PARTIALLY_INACTIVE_SESSIONS", "Some of the selected sessions are not active"
		if inactive.None {
			code, message = "NO_ACTIVE_SESSIONS", "None of the selected sessions is active"
		}
		names := inactive.Names
		if names == nil {
			names = []string{}
		}
		apierrors.BadRequestWithDetails(c, code, message, map[string]interface{}{
			"inactive_sessions": names,
		})
	case errors.Is(err, contacts.ErrNoEligibleContacts):
		apierrors.BadRequest(c, "NO_ELIGIBLE_CONTACTS", "No contacts found in the selected categories")
	case errors.Is(err, processor.ErrInvalidMessageContent):
		apierrors.BadRequest(c, "INVALID_MESSAGE_CONTENT", err.Error())
	case errors.Is(err, processor.ErrInvalidAction):
		apierrors.BadRequest(c, "INVALID_ACTION", "Action must be pause or resume")
	case errors.Is(err, processor.ErrNotAIContent):
		apierrors.BadRequest(c, "INVALID_MESSAGE_TYPE", "Only openai and groq messages can be previewed")
	case errors.Is(err, tenancy.ErrTenantRequired):
		apierrors.BadRequest(c, "TENANT_REQUIRED", "A tenant is required")
	default:
		apierrors.InternalError(c, err)
	}
}
