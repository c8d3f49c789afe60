package handler

import (
	"errors"
	"net/http"
	"strconv"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/contacts/processor"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Handler struct {
	processor processor.ContactProcessor
	logger    *observability.Logger
}

func New(processor processor.ContactProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ContactRequest represents the HTTP request for creating or replacing a contact
type ContactRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=255"`
	Phone      string   `json:"phone" binding:"required,min=8,max=32"`
	Email      *string  `json:"email,omitempty" binding:"omitempty,email"`
	Notes      *string  `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Tags       []string `json:"tags,omitempty" binding:"omitempty,dive,min=1,max=50"`
	CategoryID *string  `json:"categoryId,omitempty" binding:"omitempty,uuid"`
}

// CategoryRequest represents the HTTP request for creating or replacing a category
type CategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Color       string  `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

func (r ContactRequest) params() (processor.ContactParams, error) {
	params := processor.ContactParams{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Notes: r.Notes,
		Tags:  r.Tags,
	}
	if r.CategoryID != nil && *r.CategoryID != "" {
		id, err := uuid.Parse(*r.CategoryID)
		if err != nil {
			return processor.ContactParams{}, err
		}
		params.CategoryID = &id
	}
	if params.Tags == nil {
		params.Tags = []string{}
	}
	return params, nil
}

// HandleListContacts lists contacts with search and pagination
func (h *Handler) HandleListContacts(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	page, limit := pagination(c)
	result, err := h.processor.ListContacts(ctx, scope, c.Query("search"), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if result.Items == nil {
		result.Items = []store.Contact{}
	}
	c.JSON(http.StatusOK, result)
}

// HandleGetContact returns a contact with its category
func (h *Handler) HandleGetContact(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "Invalid contact ID format")
	if !ok {
		return
	}

	contact, err := h.processor.GetContact(ctx, scope, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// HandleCreateContact creates a contact
func (h *Handler) HandleCreateContact(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	params, err := req.params()
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid category ID format")
		return
	}

	contact, err := h.processor.CreateContact(ctx, scope, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// HandleUpdateContact replaces a contact
func (h *Handler) HandleUpdateContact(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "Invalid contact ID format")
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	params, err := req.params()
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid category ID format")
		return
	}

	contact, err := h.processor.UpdateContact(ctx, scope, id, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// HandleDeleteContact deletes a contact
func (h *Handler) HandleDeleteContact(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "Invalid contact ID format")
	if !ok {
		return
	}

	if err := h.processor.DeleteContact(ctx, scope, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListCategories lists categories with search and pagination
func (h *Handler) HandleListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	page, limit := pagination(c)
	result, err := h.processor.ListCategories(ctx, scope, c.Query("search"), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if result.Items == nil {
		result.Items = []store.Category{}
	}
	c.JSON(http.StatusOK, result)
}

// HandleCreateCategory creates a category
func (h *Handler) HandleCreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	category, err := h.processor.CreateCategory(ctx, scope, processor.CategoryParams{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// HandleUpdateCategory replaces a category
func (h *Handler) HandleUpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "Invalid category ID format")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	category, err := h.processor.UpdateCategory(ctx, scope, id, processor.CategoryParams{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// HandleDeleteCategory deletes a category
func (h *Handler) HandleDeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "Invalid category ID format")
	if !ok {
		return
	}

	if err := h.processor.DeleteCategory(ctx, scope, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListContactTags lists the categories a campaign can target
func (h *Handler) HandleListContactTags(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := h.getScope(c)
	if !ok {
		return
	}

	tags, err := h.processor.ListContactTags(ctx, scope)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if tags == nil {
		tags = []store.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func parseID(c *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", message)
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
	switch {
	case errors.Is(err, processor.ErrContactNotFound):
		apierrors.NotFound(c, "Contact not found")
	case errors.Is(err, processor.ErrCategoryNotFound):
		apierrors.NotFound(c, "Category not found")
	case errors.Is(err, processor.ErrInvalidPhoneNumber):
		apierrors.BadRequest(c, "INVALID_PHONE_NUMBER", "Phone number is not valid")
	case errors.Is(err, tenancy.ErrTenantRequired):
		apierrors.BadRequest(c, "TENANT_REQUIRED", "A tenant is required")
	default:
		apierrors.InternalError(c, err)
	}
}
