// Package waha is the provider client for the WAHA (WhatsApp HTTP API) gateway.
package waha

import (
	"bytes"
	"campaign-server/internal/observability"
	"campaign-server/internal/provider"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const maxErrorBody = 512

// Client talks to a WAHA host. Credentials are supplied per call.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *observability.Logger
}

// NewClient creates a WAHA client with a bounded timeout and an outbound rate limit.
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
	return provider.KindWaha
}

type response struct {
	body        []byte
	contentType string
}

// request performs one call to the WAHA API and returns the raw body of a 2xx answer
func (c *Client) request(ctx context.Context, creds provider.Credentials, operation, method, path string, body any, accept string) (response, error) {
	if err := creds.Validate(provider.KindWaha); err != nil {
		return response{}, err
	}

	started := time.Now()
	resp, err := c.do(ctx, creds, operation, method, path, body, accept)
	observability.ObserveProviderCall(provider.KindWaha, operation, err, time.Since(started))
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "provider", Value: provider.KindWaha},
			observability.Field{Key: "operation", Value: operation},
		)
		c.logger.WarnWithError(ctx, "waha request failed", err)
	}
	return resp, err
}

func (c *Client) do(ctx context.Context, creds provider.Credentials, operation, method, path string, body any, accept string) (response, error) {
	unavailable := func(status int, err error) error {
		return &provider.UnavailableError{Provider: provider.KindWaha, Operation: operation, StatusCode: status, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return response{}, unavailable(0, fmt.Errorf("rate limit wait: %w", err))
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return response{}, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(creds.Host, "/")+path, reqBody)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-API-KEY", creds.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, unavailable(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return response{}, unavailable(resp.StatusCode, fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(detail))))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, unavailable(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}
	return response{body: data, contentType: resp.Header.Get("Content-Type")}, nil
}

func (c *Client) requestJSON(ctx context.Context, creds provider.Credentials, operation, method, path string, body, result any) error {
	resp, err := c.request(ctx, creds, operation, method, path, body, "")
	if err != nil {
		return err
	}
	if result == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, result); err != nil {
		return &provider.UnavailableError{Provider: provider.KindWaha, Operation: operation, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func sessionPath(name string, suffix string) string {
	return "/api/sessions/" + url.PathEscape(name) + suffix
}

type sessionResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CreateSession registers a new session on the WAHA host
func (c *Client) CreateSession(ctx context.Context, creds provider.Credentials, name string) (provider.Handle, error) {
	var resp sessionResponse
	err := c.requestJSON(ctx, creds, "create", http.MethodPost, "/api/sessions", map[string]string{"name": name}, &resp)
	if err != nil {
		return provider.Handle{}, err
	}
	if resp.Name == "" {
		resp.Name = name
	}
	return provider.Handle{Name: resp.Name, Status: provider.NormalizeWahaStatus(resp.Status)}, nil
}

func (c *Client) StartSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.requestJSON(ctx, creds, "start", http.MethodPost, sessionPath(name, "/start"), nil, nil)
}

func (c *Client) StopSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.requestJSON(ctx, creds, "stop", http.MethodPost, sessionPath(name, "/stop"), nil, nil)
}

func (c *Client) RestartSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.requestJSON(ctx, creds, "restart", http.MethodPost, sessionPath(name, "/restart"), nil, nil)
}

func (c *Client) DeleteSession(ctx context.Context, creds provider.Credentials, name string) error {
	return c.requestJSON(ctx, creds, "delete", http.MethodDelete, sessionPath(name, ""), nil, nil)
}

// qrResponse is the JSON form WAHA uses when it does not answer with an image
type qrResponse struct {
	Mimetype string `json:"mimetype"`
	Data     string `json:"data"`
	Value    string `json:"value"`
}

// GetQRCode fetches the pairing QR as a data URI
func (c *Client) GetQRCode(ctx context.Context, creds provider.Credentials, name string) (string, error) {
	path := "/api/" + url.PathEscape(name) + "/auth/qr?format=image"
	resp, err := c.request(ctx, creds, "qr", http.MethodGet, path, nil, "image/png")
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(resp.contentType, "image/") {
		return provider.QRFromPNG(resp.body), nil
	}

	var qr qrResponse
	if err := json.Unmarshal(resp.body, &qr); err != nil {
		return "", &provider.UnavailableError{Provider: provider.KindWaha, Operation: "qr", Err: fmt.Errorf("decode response: %w", err)}
	}
	switch {
	case qr.Data != "":
		return provider.QRFromBase64(qr.Data), nil
	case qr.Value != "":
		return provider.QRFromCode(qr.Value)
	default:
		return "", provider.ErrQRCodeNotReady
	}
}

// GetStatus returns the normalized status of a session
func (c *Client) GetStatus(ctx context.Context, creds provider.Credentials, name string) (provider.Status, error) {
	var resp sessionResponse
	if err := c.requestJSON(ctx, creds, "status", http.MethodGet, sessionPath(name, ""), nil, &resp); err != nil {
		return "", err
	}
	return provider.NormalizeWahaStatus(resp.Status), nil
}

type meResponse struct {
	ID       string `json:"id"`
	PushName string `json:"pushName"`
	LID      string `json:"lid"`
	JID      string `json:"jid"`
}

// GetIdentity returns the account connected to a session
func (c *Client) GetIdentity(ctx context.Context, creds provider.Credentials, name string) (provider.Identity, error) {
	var me meResponse
	if err := c.requestJSON(ctx, creds, "identity", http.MethodGet, sessionPath(name, "/me"), nil, &me); err != nil {
		return provider.Identity{}, err
	}
	return provider.Identity{ID: me.ID, PushName: me.PushName, LID: me.LID, JID: me.JID}, nil
}
