package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateSessionParams represents parameters for registering a new session
type CreateSessionParams struct {
	Name        string
	DisplayName string
	Status      string
	Provider    string
	TenantID    *uuid.UUID
}

// SessionIdentity is the remote account snapshot of a connected session
type SessionIdentity struct {
	ID       string
	PushName string
	LID      string
	JID      string
}

// UpdateSessionStatusParams represents a reconciled status write
type UpdateSessionStatusParams struct {
	Name     string
	Status   string
	Identity *SessionIdentity
}

const sessionColumns = `id, name, display_name, status, provider, me_id, me_push_name, me_lid, me_jid,
    qr, qr_expires_at, tenant_id, created_at, updated_at`

const sqlCreateSession = `
INSERT INTO whatsapp_sessions (name, display_name, status, provider, tenant_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + sessionColumns

// CreateSession inserts a new session row. A name that already exists yields ErrDuplicate.
func (s *Store) CreateSession(ctx context.Context, params CreateSessionParams) (WhatsAppSession, error) {
	var session WhatsAppSession
	err := s.db.GetContext(ctx, &session, sqlCreateSession,
		params.Name,
		params.DisplayName,
		params.Status,
		params.Provider,
		params.TenantID)
	if err != nil {
		if isUniqueViolation(err) {
			return WhatsAppSession{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create session", err)
		return WhatsAppSession{}, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

const sqlGetSessionByName = `
SELECT ` + sessionColumns + `
FROM whatsapp_sessions
WHERE name = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// GetSessionByName retrieves a session by name. A nil tenantID disables the tenant filter.
func (s *Store) GetSessionByName(ctx context.Context, name string, tenantID *uuid.UUID) (WhatsAppSession, error) {
	var session WhatsAppSession
	err := s.db.GetContext(ctx, &session, sqlGetSessionByName, name, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WhatsAppSession{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get session by name", err)
		return WhatsAppSession{}, fmt.Errorf("failed to get session by name: %w", err)
	}
	return session, nil
}

const sqlListSessions = `
SELECT ` + sessionColumns + `
FROM whatsapp_sessions
WHERE ($1::uuid IS NULL OR tenant_id = $1)
ORDER BY created_at DESC
`

// ListSessions retrieves all sessions visible to the tenant filter
func (s *Store) ListSessions(ctx context.Context, tenantID *uuid.UUID) ([]WhatsAppSession, error) {
	var sessions []WhatsAppSession
	err := s.db.SelectContext(ctx, &sessions, sqlListSessions, tenantID)
	if err != nil {
		s.logger.Error(ctx, "failed to list sessions", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

const sqlListWorkingSessions = `
SELECT ` + sessionColumns + `
FROM whatsapp_sessions
WHERE status = 'WORKING' AND ($1::uuid IS NULL OR tenant_id = $1)
ORDER BY created_at DESC
`

// ListWorkingSessions retrieves the sessions currently able to send
func (s *Store) ListWorkingSessions(ctx context.Context, tenantID *uuid.UUID) ([]WhatsAppSession, error) {
	var sessions []WhatsAppSession
	err := s.db.SelectContext(ctx, &sessions, sqlListWorkingSessions, tenantID)
	if err != nil {
		s.logger.Error(ctx, "failed to list working sessions", err)
		return nil, fmt.Errorf("failed to list working sessions: %w", err)
	}
	return sessions, nil
}

const sqlGetWorkingSessionsByNames = `
SELECT ` + sessionColumns + `
FROM whatsapp_sessions
WHERE name IN (?) AND status = 'WORKING' AND (?::uuid IS NULL OR tenant_id = ?)
`

// GetWorkingSessionsByNames returns the subset of names that exist in scope and are WORKING
func (s *Store) GetWorkingSessionsByNames(ctx context.Context, names []string, tenantID *uuid.UUID) ([]WhatsAppSession, error) {
	sessions := []WhatsAppSession{}
	if len(names) == 0 {
		return sessions, nil
	}
	query, args, err := sqlx.In(sqlGetWorkingSessionsByNames, names, tenantID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to build working sessions query: %w", err)
	}
	err = s.db.SelectContext(ctx, &sessions, s.db.Rebind(query), args...)
	if err != nil {
		s.logger.Error(ctx, "failed to get working sessions by names", err)
		return nil, fmt.Errorf("failed to get working sessions by names: %w", err)
	}
	return sessions, nil
}

const sqlGetSessionsByNames = `
SELECT ` + sessionColumns + `
FROM whatsapp_sessions
WHERE name IN (?)
`

// GetSessionsByNames returns whichever of the named sessions still exist
func (s *Store) GetSessionsByNames(ctx context.Context, names []string) ([]WhatsAppSession, error) {
	sessions := []WhatsAppSession{}
	if len(names) == 0 {
		return sessions, nil
	}
	query, args, err := sqlx.In(sqlGetSessionsByNames, names)
	if err != nil {
		return nil, fmt.Errorf("failed to build sessions query: %w", err)
	}
	err = s.db.SelectContext(ctx, &sessions, s.db.Rebind(query), args...)
	if err != nil {
		s.logger.Error(ctx, "failed to get sessions by names", err)
		return nil, fmt.Errorf("failed to get sessions by names: %w", err)
	}
	return sessions, nil
}

// The QR cache only survives while the session is still awaiting a scan.
const sqlUpdateSessionStatus = `
UPDATE whatsapp_sessions SET
    status = $2,
    me_id = CASE WHEN $2 = 'WORKING' THEN COALESCE($3, me_id) ELSE NULL END,
    me_push_name = CASE WHEN $2 = 'WORKING' THEN COALESCE($4, me_push_name) ELSE NULL END,
    me_lid = CASE WHEN $2 = 'WORKING' THEN COALESCE($5, me_lid) ELSE NULL END,
    me_jid = CASE WHEN $2 = 'WORKING' THEN COALESCE($6, me_jid) ELSE NULL END,
    qr = CASE WHEN $2 = 'SCAN_QR_CODE' THEN qr ELSE NULL END,
    qr_expires_at = CASE WHEN $2 = 'SCAN_QR_CODE' THEN qr_expires_at ELSE NULL END,
    updated_at = NOW()
WHERE name = $1
RETURNING ` + sessionColumns

// UpdateSessionStatus writes a status keyed by session name. The identity is
// only kept for WORKING sessions; a WORKING write without one keeps the stored identity.
// A session deleted in the meantime is reported as ErrNotFound and not recreated.
func (s *Store) UpdateSessionStatus(ctx context.Context, params UpdateSessionStatusParams) (WhatsAppSession, error) {
	var meID, mePushName, meLID, meJID *string
	if params.Identity != nil && params.Status == SessionStatusWorking {
		meID = nullIfEmpty(params.Identity.ID)
		mePushName = nullIfEmpty(params.Identity.PushName)
		meLID = nullIfEmpty(params.Identity.LID)
		meJID = nullIfEmpty(params.Identity.JID)
	}

	var session WhatsAppSession
	err := s.db.GetContext(ctx, &session, sqlUpdateSessionStatus,
		params.Name,
		params.Status,
		meID,
		mePushName,
		meLID,
		meJID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WhatsAppSession{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update session status", err)
		return WhatsAppSession{}, fmt.Errorf("failed to update session status: %w", err)
	}
	return session, nil
}

const sqlSaveSessionQR = `
UPDATE whatsapp_sessions SET
    status = 'SCAN_QR_CODE',
    qr = $2,
    qr_expires_at = $3,
    me_id = NULL,
    me_push_name = NULL,
    me_lid = NULL,
    me_jid = NULL,
    updated_at = NOW()
WHERE name = $1
RETURNING ` + sessionColumns

// SaveSessionQR caches an issued QR code and marks the session as awaiting a scan
func (s *Store) SaveSessionQR(ctx context.Context, name, qr string, expiresAt time.Time) (WhatsAppSession, error) {
	var session WhatsAppSession
	err := s.db.GetContext(ctx, &session, sqlSaveSessionQR, name, qr, expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WhatsAppSession{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to save session qr", err)
		return WhatsAppSession{}, fmt.Errorf("failed to save session qr: %w", err)
	}
	return session, nil
}

const sqlAssignSessionTenant = `
UPDATE whatsapp_sessions
SET tenant_id = $2, updated_at = NOW()
WHERE name = $1
RETURNING ` + sessionColumns

// AssignSessionTenant moves a session to another tenant. It does not filter by tenant.
func (s *Store) AssignSessionTenant(ctx context.Context, name string, tenantID uuid.UUID) (WhatsAppSession, error) {
	var session WhatsAppSession
	err := s.db.GetContext(ctx, &session, sqlAssignSessionTenant, name, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WhatsAppSession{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to assign session tenant", err)
		return WhatsAppSession{}, fmt.Errorf("failed to assign session tenant: %w", err)
	}
	return session, nil
}

const sqlDeleteSession = `
DELETE FROM whatsapp_sessions
WHERE name = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// DeleteSession removes a session row
func (s *Store) DeleteSession(ctx context.Context, name string, tenantID *uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteSession, name, tenantID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete session", err)
		return fmt.Errorf("failed to delete session: %w", err)
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

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
