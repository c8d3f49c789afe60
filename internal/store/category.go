package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateCategoryParams represents parameters for creating a category
type CreateCategoryParams struct {
	TenantID    uuid.UUID
	Name        string
	Color       string
	Description *string
}

// UpdateCategoryParams represents parameters for updating a category
type UpdateCategoryParams struct {
	Name        string
	Color       string
	Description *string
}

// ListCategoriesParams filters and paginates categories
type ListCategoriesParams struct {
	TenantID *uuid.UUID
	Search   string
	Limit    int
	Offset   int
}

const categoryColumns = `id, tenant_id, name, color, description, created_at, updated_at`

const sqlCreateCategory = `
INSERT INTO categories (tenant_id, name, color, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + categoryColumns

// CreateCategory creates a new category
func (s *Store) CreateCategory(ctx context.Context, params CreateCategoryParams) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlCreateCategory,
		params.TenantID,
		params.Name,
		params.Color,
		params.Description)
	if err != nil {
		s.logger.Error(ctx, "failed to create category", err)
		return Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

const sqlGetCategoryByID = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// GetCategoryByID retrieves a category within the tenant filter
func (s *Store) GetCategoryByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlGetCategoryByID, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get category by id", err)
		return Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}
	return category, nil
}

const sqlListCategories = `
SELECT ` + categoryColumns + `
FROM categories
WHERE ($1::uuid IS NULL OR tenant_id = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
ORDER BY name ASC
LIMIT $3 OFFSET $4
`

const sqlCountCategories = `
SELECT COUNT(*)
FROM categories
WHERE ($1::uuid IS NULL OR tenant_id = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
`

// ListCategories retrieves a page of categories and the total matching count
func (s *Store) ListCategories(ctx context.Context, params ListCategoriesParams) ([]Category, int, error) {
	categories := []Category{}
	err := s.db.SelectContext(ctx, &categories, sqlListCategories, params.TenantID, params.Search, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list categories", err)
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountCategories, params.TenantID, params.Search)
	if err != nil {
		s.logger.Error(ctx, "failed to count categories", err)
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return categories, total, nil
}

const sqlUpdateCategory = `
UPDATE categories
SET name = $3, color = $4, description = $5, updated_at = NOW()
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
RETURNING ` + categoryColumns

// UpdateCategory updates a category within the tenant filter
func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params UpdateCategoryParams) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlUpdateCategory, id, tenantID, params.Name, params.Color, params.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update category", err)
		return Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// Contacts keep existing: the foreign key nulls their category reference.
const sqlDeleteCategory = `
DELETE FROM categories
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// DeleteCategory removes a category
func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCategory, id, tenantID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete category", err)
		return fmt.Errorf("failed to delete category: %w", err)
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
