// Package tenancy carries the caller's tenant scope from the auth middleware to the processors.
package tenancy

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Keys set on the gin context by the JWT middleware
const (
	ContextKeyTenantID = "Tenant-ID"
	ContextKeyRole     = "Role"
	ContextKeyUserID   = "User-ID"
	ContextKeyUserName = "User-Name"
)

const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleUser       = "USER"
)

// ErrTenantRequired is returned when a tenant-owned row is created by a caller without a tenant
var ErrTenantRequired = errors.New("tenant is required")

// Scope is the tenant and role of the caller
type Scope struct {
	TenantID uuid.UUID
	Role     string
	UserID   *uuid.UUID
	UserName string
}

func (s Scope) IsSuperAdmin() bool {
	return s.Role == RoleSuperAdmin
}

// Filter returns the tenant filter for store queries. A SUPERADMIN sees every tenant.
func (s Scope) Filter() *uuid.UUID {
	if s.IsSuperAdmin() {
		return nil
	}
	id := s.TenantID
	return &id
}

// Owner returns the tenant that new rows are created under
func (s Scope) Owner() *uuid.UUID {
	if s.TenantID == uuid.Nil {
		return nil
	}
	id := s.TenantID
	return &id
}

// RequireTenant returns the tenant new tenant-owned rows are created under. A SUPERADMIN
// token may carry no tenant; such a caller must name one with WithTenant first.
func (s Scope) RequireTenant() (uuid.UUID, error) {
	if s.TenantID == uuid.Nil {
		return uuid.Nil, ErrTenantRequired
	}
	return s.TenantID, nil
}

// WithTenant returns a copy of s acting for tenantID. Only a SUPERADMIN may switch tenants.
func (s Scope) WithTenant(tenantID uuid.UUID) Scope {
	if !s.IsSuperAdmin() || tenantID == uuid.Nil {
		return s
	}
	s.TenantID = tenantID
	return s
}

// FromGin reads the scope the middleware stored on c
func FromGin(c *gin.Context) (Scope, bool) {
	tenantID, ok := c.Get(ContextKeyTenantID)
	if !ok {
		return Scope{}, false
	}
	id, ok := tenantID.(uuid.UUID)
	if !ok {
		return Scope{}, false
	}

	scope := Scope{TenantID: id, Role: c.GetString(ContextKeyRole), UserName: c.GetString(ContextKeyUserName)}
	if userID, ok := c.Get(ContextKeyUserID); ok {
		if uid, ok := userID.(uuid.UUID); ok {
			scope.UserID = &uid
		}
	}
	return scope, true
}

// Set stores scope on c
func Set(c *gin.Context, scope Scope) {
	c.Set(ContextKeyTenantID, scope.TenantID)
	c.Set(ContextKeyRole, scope.Role)
	c.Set(ContextKeyUserName, scope.UserName)
	if scope.UserID != nil {
		c.Set(ContextKeyUserID, *scope.UserID)
	}
}
