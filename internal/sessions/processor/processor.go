package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor
//go:generate go run go.uber.org/mock/mockgen@latest -source=../../provider/provider.go -destination=provider_mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"campaign-server/internal/events"
	"campaign-server/internal/observability"
	"campaign-server/internal/provider"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SessionStore defines the database operations required by SessionProcessor
type SessionStore interface {
	CreateSession(ctx context.Context, params store.CreateSessionParams) (store.WhatsAppSession, error)
	GetSessionByName(ctx context.Context, name string, tenantID *uuid.UUID) (store.WhatsAppSession, error)
	ListSessions(ctx context.Context, tenantID *uuid.UUID) ([]store.WhatsAppSession, error)
	ListWorkingSessions(ctx context.Context, tenantID *uuid.UUID) ([]store.WhatsAppSession, error)
	UpdateSessionStatus(ctx context.Context, params store.UpdateSessionStatusParams) (store.WhatsAppSession, error)
	SaveSessionQR(ctx context.Context, name, qr string, expiresAt time.Time) (store.WhatsAppSession, error)
	AssignSessionTenant(ctx context.Context, name string, tenantID uuid.UUID) (store.WhatsAppSession, error)
	DeleteSession(ctx context.Context, name string, tenantID *uuid.UUID) error
}

// ProviderResolver returns the gateway implementation for a persisted provider name
type ProviderResolver interface {
	For(kind string) (provider.Provider, error)
}

// EventPublisher publishes session lifecycle events
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, tenantID *uuid.UUID, data map[string]interface{})
}

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrDuplicateSession      = errors.New("session already exists")
	ErrSessionNotConnectable = errors.New("session cannot be connected")
	ErrInvalidSessionName    = errors.New("invalid session name")
	ErrForbidden             = errors.New("operation requires a super admin")
)

// NotConnectableError reports the effective status of a session that cannot issue a QR code
type NotConnectableError struct {
	Status provider.Status
	Err    error
}

func (e *NotConnectableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session not connectable (status %s): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("session not connectable (status %s)", e.Status)
}

func (e *NotConnectableError) Unwrap() error {
	return e.Err
}

func (e *NotConnectableError) Is(target error) bool {
	return target == ErrSessionNotConnectable
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, *uuid.UUID, map[string]interface{}) {}

// QRValidity is how long an issued QR code is served from the database
const QRValidity = 300 * time.Second

type SessionProcessor struct {
	store           SessionStore
	providers       ProviderResolver
	credentials     provider.CredentialSource
	events          EventPublisher
	syncConcurrency int
	now             func() time.Time
	logger          *observability.Logger
}

func New(
	store SessionStore,
	providers ProviderResolver,
	credentials provider.CredentialSource,
	events EventPublisher,
	syncConcurrency int,
	logger *observability.Logger,
) SessionProcessor {
	if syncConcurrency < 1 {
		syncConcurrency = 1
	}
	if events == nil {
		events = noopPublisher{}
	}
	return SessionProcessor{
		store:           store,
		providers:       providers,
		credentials:     credentials,
		events:          events,
		syncConcurrency: syncConcurrency,
		now:             time.Now,
		logger:          logger,
	}
}

// QRCode is an issued or cached QR code
type QRCode struct {
	QR        string          `json:"qr"`
	ExpiresAt time.Time       `json:"expires_at"`
	Status    provider.Status `json:"status"`
	Provider  string          `json:"provider"`
	Cached    bool            `json:"cached"`
}

// LiveStatus is a provider status read for one session
type LiveStatus struct {
	Name      string          `json:"name"`
	Provider  string          `json:"provider"`
	Persisted provider.Status `json:"persisted_status"`
	Live      provider.Status `json:"live_status"`
	Effective provider.Status `json:"status"`
}

// SyncResult summarizes one reconciliation pass
type SyncResult struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// ResolveEffectiveStatus merges a persisted and a live status
func ResolveEffectiveStatus(persisted, live provider.Status) provider.Status {
	return provider.EffectiveStatus(persisted, live)
}

// SyncAll reconciles every session in scope with its provider. A provider failure
// leaves that row untouched; the pass carries on with the other sessions.
func (p *SessionProcessor) SyncAll(ctx context.Context, scope tenancy.Scope) (SyncResult, error) {
	sessions, err := p.store.ListSessions(ctx, scope.Filter())
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to list sessions for sync: %w", err)
	}

	var updated, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(p.syncConcurrency)
	for _, session := range sessions {
		session := session
		g.Go(func() error {
			if ctx.Err() != nil {
				failed.Add(1)
				return nil
			}
			changed, err := p.syncOne(ctx, session)
			if err != nil {
				failed.Add(1)
				return nil
			}
			if changed {
				updated.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := SyncResult{
		Checked: len(sessions),
		Updated: int(updated.Load()),
		Failed:  int(failed.Load()),
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "checked", Value: result.Checked},
		observability.Field{Key: "updated", Value: result.Updated},
		observability.Field{Key: "failed", Value: result.Failed},
	)
	p.logger.Debug(ctx, "session sync finished")

	return result, nil
}

func (p *SessionProcessor) syncOne(ctx context.Context, session store.WhatsAppSession) (bool, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_name", Value: session.Name},
		observability.Field{Key: "provider", Value: session.Provider},
	)

	prov, creds, err := p.resolve(ctx, session.Provider)
	if err != nil {
		p.logger.WarnWithError(ctx, "skipping session sync", err)
		observability.ObserveSessionSync(session.Provider, err)
		return false, err
	}

	live, err := prov.GetStatus(ctx, creds, session.Name)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to read live session status", err)
		observability.ObserveSessionSync(session.Provider, err)
		return false, err
	}

	target := syncedStatus(session, live, p.now())

	var identity *store.SessionIdentity
	if target == provider.StatusWorking {
		me, err := prov.GetIdentity(ctx, creds, session.Name)
		if err != nil {
			p.logger.WarnWithError(ctx, "failed to read session identity", err)
		} else {
			identity = &store.SessionIdentity{ID: me.ID, PushName: me.PushName, LID: me.LID, JID: me.JID}
		}
	}

	_, err = p.store.UpdateSessionStatus(ctx, store.UpdateSessionStatusParams{
		Name:     session.Name,
		Status:   string(target),
		Identity: identity,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Debug(ctx, "session deleted during sync")
			return false, nil
		}
		observability.ObserveSessionSync(session.Provider, err)
		return false, err
	}
	observability.ObserveSessionSync(session.Provider, nil)

	if string(target) == session.Status {
		return false, nil
	}

	p.events.Publish(ctx, events.SessionStatusChanged, session.TenantID, map[string]interface{}{
		"name":       session.Name,
		"provider":   session.Provider,
		"old_status": session.Status,
		"new_status": string(target),
	})
	return true, nil
}

// syncedStatus decides what a sync pass writes. A live WORKING always wins; a
// session still holding a valid QR keeps waiting for the scan.
func syncedStatus(session store.WhatsAppSession, live provider.Status, now time.Time) provider.Status {
	if live == provider.StatusWorking {
		return live
	}
	if provider.Status(session.Status) == provider.StatusScanQRCode && session.HasValidQR(now) {
		return provider.StatusScanQRCode
	}
	return live
}

// IssueQRCode returns a QR code for the session, serving the cached one while it is valid
func (p *SessionProcessor) IssueQRCode(ctx context.Context, scope tenancy.Scope, name string) (QRCode, error) {
	session, err := p.getSession(ctx, scope, name)
	if err != nil {
		return QRCode{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_name", Value: session.Name},
		observability.Field{Key: "provider", Value: session.Provider},
	)

	now := p.now()
	if session.HasValidQR(now) {
		return QRCode{
			QR:        *session.QR,
			ExpiresAt: *session.QRExpiresAt,
			Status:    provider.StatusScanQRCode,
			Provider:  session.Provider,
			Cached:    true,
		}, nil
	}

	prov, creds, err := p.resolve(ctx, session.Provider)
	if err != nil {
		return QRCode{}, err
	}

	persisted := provider.Status(session.Status)
	live, err := prov.GetStatus(ctx, creds, session.Name)
	if err != nil {
		if persisted != provider.StatusScanQRCode {
			return QRCode{}, fmt.Errorf("failed to read session status: %w", err)
		}
		p.logger.WarnWithError(ctx, "live status unavailable, trusting persisted status", err)
		live = persisted
	}

	effective := ResolveEffectiveStatus(persisted, live)
	if effective == provider.StatusWorking {
		return QRCode{}, &NotConnectableError{Status: effective}
	}

	qr, err := prov.GetQRCode(ctx, creds, session.Name)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to fetch qr code", err)
		return QRCode{}, &NotConnectableError{Status: effective, Err: err}
	}

	expiresAt := now.Add(QRValidity)
	if _, err := p.store.SaveSessionQR(ctx, session.Name, qr, expiresAt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return QRCode{}, ErrSessionNotFound
		}
		return QRCode{}, fmt.Errorf("failed to save qr code: %w", err)
	}

	if persisted != provider.StatusScanQRCode {
		p.events.Publish(ctx, events.SessionStatusChanged, session.TenantID, map[string]interface{}{
			"name":       session.Name,
			"provider":   session.Provider,
			"old_status": session.Status,
			"new_status": string(provider.StatusScanQRCode),
		})
	}

	return QRCode{
		QR:        qr,
		ExpiresAt: expiresAt,
		Status:    provider.StatusScanQRCode,
		Provider:  session.Provider,
	}, nil
}

// ListSessions reconciles the sessions in scope and returns the stored rows.
// A failed reconciliation still returns the rows.
func (p *SessionProcessor) ListSessions(ctx context.Context, scope tenancy.Scope) ([]store.WhatsAppSession, error) {
	if _, err := p.SyncAll(ctx, scope); err != nil {
		p.logger.WarnWithError(ctx, "session sync failed before listing", err)
	}

	sessions, err := p.store.ListSessions(ctx, scope.Filter())
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// GetSession returns one session in scope
func (p *SessionProcessor) GetSession(ctx context.Context, scope tenancy.Scope, name string) (store.WhatsAppSession, error) {
	return p.getSession(ctx, scope, name)
}

// ListActiveSessions returns the WORKING sessions in scope
func (p *SessionProcessor) ListActiveSessions(ctx context.Context, scope tenancy.Scope) ([]store.WhatsAppSession, error) {
	sessions, err := p.store.ListWorkingSessions(ctx, scope.Filter())
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return sessions, nil
}

var (
	whitespace      = regexp.MustCompile(`\s+`)
	invalidNameChar = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

// SessionName derives the gateway session name from a display name and the owning tenant
func SessionName(displayName string, tenantID uuid.UUID) (string, error) {
	name := whitespace.ReplaceAllString(strings.TrimSpace(displayName), "_")
	name = invalidNameChar.ReplaceAllString(name, "")
	if name == "" {
		return "", ErrInvalidSessionName
	}
	return name + "_" + tenantID.String()[:8], nil
}

// CreateSession registers a session on the provider and stores it awaiting a QR scan
func (p *SessionProcessor) CreateSession(ctx context.Context, scope tenancy.Scope, displayName, kind string) (store.WhatsAppSession, error) {
	tenantID, err := scope.RequireTenant()
	if err != nil {
		return store.WhatsAppSession{}, err
	}

	name, err := SessionName(displayName, tenantID)
	if err != nil {
		return store.WhatsAppSession{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_name", Value: name},
		observability.Field{Key: "provider", Value: kind},
	)

	_, err = p.store.GetSessionByName(ctx, name, nil)
	if err == nil {
		return store.WhatsAppSession{}, ErrDuplicateSession
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.WhatsAppSession{}, fmt.Errorf("failed to check session name: %w", err)
	}

	prov, creds, err := p.resolve(ctx, kind)
	if err != nil {
		return store.WhatsAppSession{}, err
	}

	if _, err := prov.CreateSession(ctx, creds, name); err != nil {
		p.logger.Error(ctx, "failed to create session on provider", err)
		return store.WhatsAppSession{}, err
	}

	session, err := p.store.CreateSession(ctx, store.CreateSessionParams{
		Name:        name,
		DisplayName: strings.TrimSpace(displayName),
		Status:      store.SessionStatusScanQRCode,
		Provider:    kind,
		TenantID:    &tenantID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.WhatsAppSession{}, ErrDuplicateSession
		}
		return store.WhatsAppSession{}, fmt.Errorf("failed to store session: %w", err)
	}

	p.logger.Info(ctx, "session created")
	p.events.Publish(ctx, events.SessionCreated, session.TenantID, map[string]interface{}{
		"name":     session.Name,
		"provider": session.Provider,
	})

	return session, nil
}

// StartSession starts the session on its provider; it then waits for a QR scan
func (p *SessionProcessor) StartSession(ctx context.Context, scope tenancy.Scope, name string) (store.WhatsAppSession, error) {
	return p.transition(ctx, scope, name, "start", provider.StatusScanQRCode, provider.Provider.StartSession)
}

// StopSession stops the session on its provider
func (p *SessionProcessor) StopSession(ctx context.Context, scope tenancy.Scope, name string) (store.WhatsAppSession, error) {
	return p.transition(ctx, scope, name, "stop", provider.StatusStopped, provider.Provider.StopSession)
}

// RestartSession restarts the session on its provider; it then waits for a QR scan
func (p *SessionProcessor) RestartSession(ctx context.Context, scope tenancy.Scope, name string) (store.WhatsAppSession, error) {
	return p.transition(ctx, scope, name, "restart", provider.StatusScanQRCode, provider.Provider.RestartSession)
}

// lifecycleCall is a provider method expression such as provider.Provider.StartSession
type lifecycleCall func(prov provider.Provider, ctx context.Context, creds provider.Credentials, name string) error

func (p *SessionProcessor) transition(ctx context.Context, scope tenancy.Scope, name, action string, next provider.Status, call lifecycleCall) (store.WhatsAppSession, error) {
	session, err := p.getSession(ctx, scope, name)
	if err != nil {
		return store.WhatsAppSession{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_name", Value: session.Name},
		observability.Field{Key: "provider", Value: session.Provider},
		observability.Field{Key: "action", Value: action},
	)

	prov, creds, err := p.resolve(ctx, session.Provider)
	if err != nil {
		return store.WhatsAppSession{}, err
	}

	if err := call(prov, ctx, creds, session.Name); err != nil {
		p.logger.Error(ctx, "session lifecycle call failed", err)
		return store.WhatsAppSession{}, err
	}

	updated, err := p.store.UpdateSessionStatus(ctx, store.UpdateSessionStatusParams{
		Name:   session.Name,
		Status: string(next),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.WhatsAppSession{}, ErrSessionNotFound
		}
		return store.WhatsAppSession{}, fmt.Errorf("failed to store session status: %w", err)
	}

	if session.Status != updated.Status {
		p.events.Publish(ctx, events.SessionStatusChanged, session.TenantID, map[string]interface{}{
			"name":       session.Name,
			"provider":   session.Provider,
			"old_status": session.Status,
			"new_status": updated.Status,
		})
	}

	return updated, nil
}

// DeleteSession removes the session from its provider, best effort, then from the database
func (p *SessionProcessor) DeleteSession(ctx context.Context, scope tenancy.Scope, name string) error {
	session, err := p.getSession(ctx, scope, name)
	if err != nil {
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_name", Value: session.Name},
		observability.Field{Key: "provider", Value: session.Provider},
	)

	prov, creds, err := p.resolve(ctx, session.Provider)
	if err == nil {
		err = prov.DeleteSession(ctx, creds, session.Name)
	}
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to delete session on provider, removing it locally", err)
	}

	if err := p.store.DeleteSession(ctx, session.Name, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	p.events.Publish(ctx, events.SessionDeleted, session.TenantID, map[string]interface{}{
		"name":     session.Name,
		"provider": session.Provider,
	})
	return nil
}

// AssignTenant moves a session to another tenant
func (p *SessionProcessor) AssignTenant(ctx context.Context, scope tenancy.Scope, name string, tenantID uuid.UUID) (store.WhatsAppSession, error) {
	if !scope.IsSuperAdmin() {
		return store.WhatsAppSession{}, ErrForbidden
	}

	session, err := p.store.AssignSessionTenant(ctx, name, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.WhatsAppSession{}, ErrSessionNotFound
		}
		return store.WhatsAppSession{}, fmt.Errorf("failed to assign session tenant: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_name", Value: name},
		observability.Field{Key: "tenant_id", Value: tenantID.String()},
	)
	p.logger.Info(ctx, "session assigned to tenant")

	return session, nil
}

// GetStatus reads the live status of one session
func (p *SessionProcessor) GetStatus(ctx context.Context, scope tenancy.Scope, name string) (LiveStatus, error) {
	session, err := p.getSession(ctx, scope, name)
	if err != nil {
		return LiveStatus{}, err
	}

	prov, creds, err := p.resolve(ctx, session.Provider)
	if err != nil {
		return LiveStatus{}, err
	}

	live, err := prov.GetStatus(ctx, creds, session.Name)
	if err != nil {
		return LiveStatus{}, err
	}

	persisted := provider.Status(session.Status)
	return LiveStatus{
		Name:      session.Name,
		Provider:  session.Provider,
		Persisted: persisted,
		Live:      live,
		Effective: ResolveEffectiveStatus(persisted, live),
	}, nil
}

// GetIdentity reads the WhatsApp account behind one session
func (p *SessionProcessor) GetIdentity(ctx context.Context, scope tenancy.Scope, name string) (provider.Identity, error) {
	session, err := p.getSession(ctx, scope, name)
	if err != nil {
		return provider.Identity{}, err
	}

	prov, creds, err := p.resolve(ctx, session.Provider)
	if err != nil {
		return provider.Identity{}, err
	}

	return prov.GetIdentity(ctx, creds, session.Name)
}

func (p *SessionProcessor) getSession(ctx context.Context, scope tenancy.Scope, name string) (store.WhatsAppSession, error) {
	session, err := p.store.GetSessionByName(ctx, name, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.WhatsAppSession{}, ErrSessionNotFound
		}
		return store.WhatsAppSession{}, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (p *SessionProcessor) resolve(ctx context.Context, kind string) (provider.Provider, provider.Credentials, error) {
	prov, err := p.providers.For(kind)
	if err != nil {
		return nil, provider.Credentials{}, err
	}

	creds, err := p.credentials.Credentials(ctx, kind)
	if err != nil {
		return nil, provider.Credentials{}, fmt.Errorf("failed to resolve %s credentials: %w", kind, err)
	}
	if err := creds.Validate(kind); err != nil {
		return nil, provider.Credentials{}, err
	}
	return prov, creds, nil
}
