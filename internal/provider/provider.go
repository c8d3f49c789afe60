// Package provider defines the capability set shared by the WhatsApp gateway
// clients and the helpers that normalize their answers.
package provider

import (
	"context"
	"errors"
	"fmt"
)

const (
	KindWaha      = "WAHA"
	KindEvolution = "EVOLUTION"
)

var (
	ErrConfigurationMissing = errors.New("provider configuration missing")
	ErrProviderUnavailable  = errors.New("provider unavailable")
	ErrUnknownProvider      = errors.New("unknown provider")
	ErrQRCodeNotReady       = errors.New("qr code not available yet")
)

// Credentials are the host and API key used for one call
type Credentials struct {
	Host   string
	APIKey string
}

// Validate fails with ErrConfigurationMissing when either field is empty
func (c Credentials) Validate(kind string) error {
	if c.Host == "" || c.APIKey == "" {
		return fmt.Errorf("%s: %w", kind, ErrConfigurationMissing)
	}
	return nil
}

// Handle is what a provider returns when a session is created
type Handle struct {
	Name   string
	Status Status
}

// Identity is the WhatsApp account behind a connected session
type Identity struct {
	ID       string
	PushName string
	LID      string
	JID      string
}

// Provider is the capability set of a WhatsApp gateway
type Provider interface {
	Kind() string
	CreateSession(ctx context.Context, creds Credentials, name string) (Handle, error)
	StartSession(ctx context.Context, creds Credentials, name string) error
	StopSession(ctx context.Context, creds Credentials, name string) error
	RestartSession(ctx context.Context, creds Credentials, name string) error
	DeleteSession(ctx context.Context, creds Credentials, name string) error
	// GetQRCode returns the QR as a data URI
	GetQRCode(ctx context.Context, creds Credentials, name string) (string, error)
	GetStatus(ctx context.Context, creds Credentials, name string) (Status, error)
	GetIdentity(ctx context.Context, creds Credentials, name string) (Identity, error)
}

// CredentialSource resolves the current credentials of a provider
type CredentialSource interface {
	Credentials(ctx context.Context, kind string) (Credentials, error)
}

// UnavailableError describes a failed call to a provider. It matches ErrProviderUnavailable.
type UnavailableError struct {
	Provider   string
	Operation  string
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failed with status %d: %v", e.Provider, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Operation, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrProviderUnavailable
}
