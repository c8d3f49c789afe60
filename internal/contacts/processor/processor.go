package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
)

// ContactStore defines the database operations required by ContactProcessor
type ContactStore interface {
	CreateContact(ctx context.Context, params store.CreateContactParams) (store.Contact, error)
	GetContactByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (store.Contact, error)
	ListContacts(ctx context.Context, params store.ListContactsParams) ([]store.Contact, int, error)
	UpdateContact(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params store.UpdateContactParams) (store.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error
	ListContactsByCategories(ctx context.Context, tenantID uuid.UUID, categoryIDs []uuid.UUID) ([]store.Contact, error)

	CreateCategory(ctx context.Context, params store.CreateCategoryParams) (store.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (store.Category, error)
	ListCategories(ctx context.Context, params store.ListCategoriesParams) ([]store.Category, int, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params store.UpdateCategoryParams) (store.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error
}

var (
	ErrContactNotFound    = errors.New("contact not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrNoEligibleContacts = errors.New("no eligible contacts for the selected categories")
)

// DefaultRegion is the region assumed for phone numbers written without a country code
const DefaultRegion = "BR"

const defaultCategoryColor = "#3B82F6"

type ContactProcessor struct {
	store  ContactStore
	logger *observability.Logger
}

func New(store ContactStore, logger *observability.Logger) ContactProcessor {
	return ContactProcessor{
		store:  store,
		logger: logger,
	}
}

// ContactParams represents the writable fields of a contact
type ContactParams struct {
	Name       string
	Phone      string
	Email      *string
	Notes      *string
	Tags       []string
	CategoryID *uuid.UUID
}

// CategoryParams represents the writable fields of a category
type CategoryParams struct {
	Name        string
	Color       string
	Description *string
}

// Page is a paginated list result
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func newPage[T any](items []T, total, page, limit int) Page[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page[T]{Items: items, TotalCount: total, Page: page, PageSize: limit, TotalPages: totalPages}
}

// NormalizePhone parses a phone number, assuming DefaultRegion when no country
// code is given, and formats it as E.164
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPhoneNumber)
	}

	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhoneNumber, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhoneNumber, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// ResolveSegment returns every contact of the tenant whose category is one of categoryIDs.
// Contacts without a category never qualify; an empty selection is not "all".
func (p *ContactProcessor) ResolveSegment(ctx context.Context, tenantID uuid.UUID, categoryIDs []uuid.UUID) ([]store.Contact, error) {
	if len(categoryIDs) == 0 {
		return nil, ErrNoEligibleContacts
	}

	contacts, err := p.store.ListContactsByCategories(ctx, tenantID, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve segment: %w", err)
	}
	if len(contacts) == 0 {
		return nil, ErrNoEligibleContacts
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: tenantID.String()},
		observability.Field{Key: "segment_size", Value: len(contacts)},
	)
	p.logger.Debug(ctx, "segment resolved")

	return contacts, nil
}

// CreateContact creates a contact under the caller's tenant
func (p *ContactProcessor) CreateContact(ctx context.Context, scope tenancy.Scope, params ContactParams) (store.Contact, error) {
	tenantID, err := scope.RequireTenant()
	if err != nil {
		return store.Contact{}, err
	}

	phone, err := NormalizePhone(params.Phone)
	if err != nil {
		return store.Contact{}, err
	}

	if err := p.checkCategory(ctx, tenantID, params.CategoryID); err != nil {
		return store.Contact{}, err
	}

	contact, err := p.store.CreateContact(ctx, store.CreateContactParams{
		TenantID:   tenantID,
		Name:       strings.TrimSpace(params.Name),
		Phone:      phone,
		Email:      params.Email,
		Notes:      params.Notes,
		Tags:       params.Tags,
		CategoryID: params.CategoryID,
	})
	if err != nil {
		return store.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// GetContact returns a contact with its category
func (p *ContactProcessor) GetContact(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (store.Contact, error) {
	contact, err := p.store.GetContactByID(ctx, id, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Contact{}, ErrContactNotFound
		}
		return store.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}

	if contact.CategoryID != nil {
		category, err := p.store.GetCategoryByID(ctx, *contact.CategoryID, &contact.TenantID)
		if err == nil {
			contact.Category = &category
		} else if !errors.Is(err, store.ErrNotFound) {
			p.logger.WarnWithError(ctx, "failed to load contact category", err)
		}
	}
	return contact, nil
}

// ListContacts returns a page of contacts matching search
func (p *ContactProcessor) ListContacts(ctx context.Context, scope tenancy.Scope, search string, page, limit int) (Page[store.Contact], error) {
	contacts, total, err := p.store.ListContacts(ctx, store.ListContactsParams{
		TenantID: scope.Filter(),
		Search:   strings.TrimSpace(search),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return Page[store.Contact]{}, fmt.Errorf("failed to list contacts: %w", err)
	}
	return newPage(contacts, total, page, limit), nil
}

// UpdateContact replaces the writable fields of a contact
func (p *ContactProcessor) UpdateContact(ctx context.Context, scope tenancy.Scope, id uuid.UUID, params ContactParams) (store.Contact, error) {
	existing, err := p.store.GetContactByID(ctx, id, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Contact{}, ErrContactNotFound
		}
		return store.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}

	phone, err := NormalizePhone(params.Phone)
	if err != nil {
		return store.Contact{}, err
	}

	if err := p.checkCategory(ctx, existing.TenantID, params.CategoryID); err != nil {
		return store.Contact{}, err
	}

	contact, err := p.store.UpdateContact(ctx, id, scope.Filter(), store.UpdateContactParams{
		Name:       strings.TrimSpace(params.Name),
		Phone:      phone,
		Email:      params.Email,
		Notes:      params.Notes,
		Tags:       params.Tags,
		CategoryID: params.CategoryID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Contact{}, ErrContactNotFound
		}
		return store.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// DeleteContact removes a contact. Planned campaign messages keep their snapshot.
func (p *ContactProcessor) DeleteContact(ctx context.Context, scope tenancy.Scope, id uuid.UUID) error {
	if err := p.store.DeleteContact(ctx, id, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

func (p *ContactProcessor) checkCategory(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := p.store.GetCategoryByID(ctx, *categoryID, &tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}
	return nil
}

// CreateCategory creates a category under the caller's tenant
func (p *ContactProcessor) CreateCategory(ctx context.Context, scope tenancy.Scope, params CategoryParams) (store.Category, error) {
	tenantID, err := scope.RequireTenant()
	if err != nil {
		return store.Category{}, err
	}

	category, err := p.store.CreateCategory(ctx, store.CreateCategoryParams{
		TenantID:    tenantID,
		Name:        strings.TrimSpace(params.Name),
		Color:       colorOrDefault(params.Color),
		Description: params.Description,
	})
	if err != nil {
		return store.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// ListCategories returns a page of categories matching search
func (p *ContactProcessor) ListCategories(ctx context.Context, scope tenancy.Scope, search string, page, limit int) (Page[store.Category], error) {
	categories, total, err := p.store.ListCategories(ctx, store.ListCategoriesParams{
		TenantID: scope.Filter(),
		Search:   strings.TrimSpace(search),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return Page[store.Category]{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return newPage(categories, total, page, limit), nil
}

// ListContactTags returns every category in scope, for the campaign target picker
func (p *ContactProcessor) ListContactTags(ctx context.Context, scope tenancy.Scope) ([]store.Category, error) {
	categories, _, err := p.store.ListCategories(ctx, store.ListCategoriesParams{
		TenantID: scope.Filter(),
		Limit:    1000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contact tags: %w", err)
	}
	return categories, nil
}

// UpdateCategory replaces the writable fields of a category
func (p *ContactProcessor) UpdateCategory(ctx context.Context, scope tenancy.Scope, id uuid.UUID, params CategoryParams) (store.Category, error) {
	category, err := p.store.UpdateCategory(ctx, id, scope.Filter(), store.UpdateCategoryParams{
		Name:        strings.TrimSpace(params.Name),
		Color:       colorOrDefault(params.Color),
		Description: params.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Category{}, ErrCategoryNotFound
		}
		return store.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category; its contacts become uncategorized
func (p *ContactProcessor) DeleteCategory(ctx context.Context, scope tenancy.Scope, id uuid.UUID) error {
	if err := p.store.DeleteCategory(ctx, id, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func colorOrDefault(color string) string {
	if strings.TrimSpace(color) == "" {
		return defaultCategoryColor
	}
	return color
}
