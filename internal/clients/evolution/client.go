// Package evolution is the provider client for the Evolution API gateway.
package evolution

import (
	"bytes"
	"campaign-server/internal/observability"
	"campaign-server/internal/provider"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	maxErrorBody = 512
	integration  = "WHATSAPP-BAILEYS"
)

var errInstanceNotFound = errors.New("instance not found")

// Client talks to an Evolution API host. Credentials are supplied per call.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *observability.Logger
}

// NewClient creates an Evolution client with a bounded timeout and an outbound rate limit.
// A non-positive rps disables the limit.
func NewClient(timeout time.Duration, rps float64, logger *observability.Logger) *Client {
	limit, burst := rate.Inf, 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = max(int(rps), 1)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}
}

func (c *Client) Kind() string {
	return provider.KindEvolution
}

func (c *Client) request(ctx context.Context, creds provider.Credentials, operation, method, path string, body, result any) error {
	if err := creds.Validate(provider.KindEvolution); err != nil {
		return err
	}

	started := time.Now()
	err := c.do(ctx, creds, operation, method, path, body, result)
	observability.ObserveProviderCall(provider.KindEvolution, operation, err, time.Since(started))
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "provider", Value: provider.KindEvolution},
			observability.Field{Key: "operation", Value: operation},
		)
		c.logger.WarnWithError(ctx, "evolution request failed", err)
	}
	return err
}

func (c *Client) do(ctx context.Context, creds provider.Credentials, operation, method, path string, body, result any) error {
	unavailable := func(status int, err error) error {
		return &provider.UnavailableError{Provider: provider.KindEvolution, Operation: operation, StatusCode: status, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return unavailable(0, fmt.Errorf("rate limit wait: %w", err))
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(creds.Host, "/")+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("apikey", creds.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unavailable(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return unavailable(resp.StatusCode, fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(detail))))
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil && !errors.Is(err, io.EOF) {
			return unavailable(resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

func instancePath(action, name string) string {
	return "/instance/" + action + "/" + url.PathEscape(name)
}

type createInstanceRequest struct {
	InstanceName string `json:"instanceName"`
	QRCode       bool   `json:"qrcode"`
	Integration  string `json:"integration"`
}

type createInstanceResponse struct {
	Instance struct {
		InstanceName string `json:"instanceName"`
		Status       string `json:"status"`
	} `json:"instance"`
}

// CreateSession creates an instance with QR pairing enabled
func (c *Client) CreateSession(ctx context.Context, creds provider.Credentials, name string) (provider.Handle, error) {
	var resp createInstanceResponse
	err := c.request(ctx, creds, "create", http.MethodPost, "/instance/create", createInstanceRequest{
		InstanceName: name,
		QRCode:       true,
		Integration:  integration,
	}, &resp)
	if err != nil {
		return provider.Handle{}, err
	}

	handle := provider.Handle{Name: resp.Instance.InstanceName, Status: provider.NormalizeEvolutionStatus(resp.Instance.Status)}
	if handle.Name == "" {
		handle.Name = name
	}
	return handle, nil
}

// StartSession asks the instance to connect, which also issues a new QR
func (c *Client) StartSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.request(ctx, creds, "start", http.MethodGet, instancePath("connect", name), nil, nil)
}

// StopSession logs the instance out of WhatsApp
func (c *Client) StopSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.request(ctx, creds, "stop", http.MethodDelete, instancePath("logout", name), nil, nil)
}

func (c *Client) RestartSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.request(ctx, creds, "restart", http.MethodPut, instancePath("restart", name), nil, nil)
}

func (c *Client) DeleteSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.request(ctx, creds, "delete", http.MethodDelete, instancePath("delete", name), nil, nil)
}

type connectResponse struct {
	Base64 string `json:"base64"`
	Code   string `json:"code"`
}

// GetQRCode returns the pairing QR as a data URI. When only the raw
// pairing code is available it is rendered locally.
func (c *Client) GetQRCode(ctx context.Context, creds provider.Credentials, name string) (string, error) {
	var resp connectResponse
	if err := c.request(ctx, creds, "qr", http.MethodGet, instancePath("connect", name), nil, &resp); err != nil {
		return "", err
	}

	switch {
	case resp.Base64 != "":
		return provider.QRFromBase64(resp.Base64), nil
	case resp.Code != "":
		return provider.QRFromCode(resp.Code)
	default:
		return "", provider.ErrQRCodeNotReady
	}
}

type instanceInfo struct {
	Name             string `json:"name"`
	ConnectionStatus string `json:"connectionStatus"`
	Status           string `json:"status"`
	OwnerJid         string `json:"ownerJid"`
	ProfileName      string `json:"profileName"`
}

func (c *Client) fetchInstance(ctx context.Context, creds provider.Credentials, operation, name string) (instanceInfo, error) {
	var instances []instanceInfo
	path := "/instance/fetchInstances?instanceName=" + url.QueryEscape(name)
	if err := c.request(ctx, creds, operation, http.MethodGet, path, nil, &instances); err != nil {
		return instanceInfo{}, err
	}
	if len(instances) == 0 {
		return instanceInfo{}, &provider.UnavailableError{
			Provider:   provider.KindEvolution,
			Operation:  operation,
			StatusCode: http.StatusNotFound,
			Err:        fmt.Errorf("%s: %w", name, errInstanceNotFound),
		}
	}
	return instances[0], nil
}

// GetStatus returns the normalized connection state of an instance
func (c *Client) GetStatus(ctx context.Context, creds provider.Credentials, name string) (provider.Status, error) {
	info, err := c.fetchInstance(ctx, creds, "status", name)
	if err != nil {
		return "", err
	}
	raw := info.ConnectionStatus
	if raw == "" {
		raw = info.Status
	}
	return provider.NormalizeEvolutionStatus(raw), nil
}

// GetIdentity returns the account connected to an instance
func (c *Client) GetIdentity(ctx context.Context, creds provider.Credentials, name string) (provider.Identity, error) {
	info, err := c.fetchInstance(ctx, creds, "identity", name)
	if err != nil {
		return provider.Identity{}, err
	}
	return provider.Identity{ID: info.OwnerJid, PushName: info.ProfileName, JID: info.OwnerJid}, nil
}
