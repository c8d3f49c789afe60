package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateContactParams represents parameters for creating a contact.
// Phone must already be normalized.
type CreateContactParams struct {
	TenantID   uuid.UUID
	Name       string
	Phone      string
	Email      *string
	Notes      *string
	Tags       []string
	CategoryID *uuid.UUID
}

// UpdateContactParams represents parameters for updating a contact
type UpdateContactParams struct {
	Name       string
	Phone      string
	Email      *string
	Notes      *string
	Tags       []string
	CategoryID *uuid.UUID
}

// ListContactsParams filters and paginates contacts
type ListContactsParams struct {
	TenantID *uuid.UUID
	Search   string
	Limit    int
	Offset   int
}

const contactColumns = `id, tenant_id, name, phone, email, notes, tags, category_id, created_at, updated_at`

const sqlCreateContact = `
INSERT INTO contacts (tenant_id, name, phone, email, notes, tags, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + contactColumns

// CreateContact creates a new contact
func (s *Store) CreateContact(ctx context.Context, params CreateContactParams) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlCreateContact,
		params.TenantID,
		params.Name,
		params.Phone,
		params.Email,
		params.Notes,
		StringArray(params.Tags),
		params.CategoryID)
	if err != nil {
		s.logger.Error(ctx, "failed to create contact", err)
		return Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

const sqlGetContactByID = `
SELECT ` + contactColumns + `
FROM contacts
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// GetContactByID retrieves a contact within the tenant filter
func (s *Store) GetContactByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlGetContactByID, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get contact by id", err)
		return Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return contact, nil
}

const sqlListContacts = `
SELECT ` + contactColumns + `
FROM contacts
WHERE ($1::uuid IS NULL OR tenant_id = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

const sqlCountContacts = `
SELECT COUNT(*)
FROM contacts
WHERE ($1::uuid IS NULL OR tenant_id = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')
`

// ListContacts retrieves a page of contacts and the total matching count
func (s *Store) ListContacts(ctx context.Context, params ListContactsParams) ([]Contact, int, error) {
	contacts := []Contact{}
	err := s.db.SelectContext(ctx, &contacts, sqlListContacts, params.TenantID, params.Search, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list contacts", err)
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountContacts, params.TenantID, params.Search)
	if err != nil {
		s.logger.Error(ctx, "failed to count contacts", err)
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return contacts, total, nil
}

const sqlUpdateContact = `
UPDATE contacts
SET name = $3, phone = $4, email = $5, notes = $6, tags = $7, category_id = $8, updated_at = NOW()
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
RETURNING ` + contactColumns

// UpdateContact updates a contact within the tenant filter
func (s *Store) UpdateContact(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params UpdateContactParams) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlUpdateContact,
		id,
		tenantID,
		params.Name,
		params.Phone,
		params.Email,
		params.Notes,
		StringArray(params.Tags),
		params.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update contact", err)
		return Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

const sqlDeleteContact = `
DELETE FROM contacts
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// DeleteContact removes a contact. Campaign messages keep their snapshot.
func (s *Store) DeleteContact(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteContact, id, tenantID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete contact", err)
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// No LIMIT: a campaign must reach every contact in the segment.
const sqlListContactsByCategories = `
SELECT ` + contactColumns + `
FROM contacts
WHERE tenant_id = ?
  AND category_id IS NOT NULL
  AND category_id IN (?)
ORDER BY created_at ASC
`

// ListContactsByCategories returns every contact of the tenant whose category is in categoryIDs.
// Contacts without a category never match.
func (s *Store) ListContactsByCategories(ctx context.Context, tenantID uuid.UUID, categoryIDs []uuid.UUID) ([]Contact, error) {
	contacts := []Contact{}
	if len(categoryIDs) == 0 {
		return contacts, nil
	}

	query, args, err := sqlx.In(sqlListContactsByCategories, tenantID, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build segment query: %w", err)
	}

	err = s.db.SelectContext(ctx, &contacts, s.db.Rebind(query), args...)
	if err != nil {
		s.logger.Error(ctx, "failed to list contacts by categories", err)
		return nil, fmt.Errorf("failed to list contacts by categories: %w", err)
	}
	return contacts, nil
}
