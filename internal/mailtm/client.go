package mailtm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a mail.tm API client
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config for the mail.tm client
type Config struct {
	BaseURL string        // e.g., https://api.mail.tm
	Timeout time.Duration // per-request timeout
}

// NewClient creates a new mail.tm API client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Domains returns the domains available for new addresses.
// The provider guarantees at least one on success.
func (c *Client) Domains(ctx context.Context) ([]string, error) {
	var resp domainsResponse
	if err := c.do(ctx, http.MethodGet, "/domains?page=1", "", nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Members) == 0 {
		return nil, fmt.Errorf("%w: empty domain list", ErrUnavailable)
	}
	domains := make([]string, 0, len(resp.Members))
	for _, d := range resp.Members {
		domains = append(domains, d.Domain)
	}
	return domains, nil
}

// CreateAccount registers a new mailbox with the given credentials
func (c *Client) CreateAccount(ctx context.Context, address, password string) error {
	body := map[string]string{"address": address, "password": password}
	return c.do(ctx, http.MethodPost, "/accounts", "", body, nil)
}

// Token exchanges credentials for a bearer token
func (c *Client) Token(ctx context.Context, address, password string) (string, error) {
	body := map[string]string{"address": address, "password": password}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/token", "", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", ErrUnavailable)
	}
	return resp.Token, nil
}

// Me fetches the account profile for the token
func (c *Client) Me(ctx context.Context, token string) (*Account, error) {
	var acc Account
	if err := c.do(ctx, http.MethodGet, "/me", token, nil, &acc); err != nil {
		return nil, err
	}
	if acc.ID == "" {
		return nil, fmt.Errorf("%w: profile without id", ErrUnavailable)
	}
	return &acc, nil
}

// Messages lists the first page of the inbox.
// An empty inbox yields an empty slice, not an error.
func (c *Client) Messages(ctx context.Context, token string) ([]MessageSummary, error) {
	var resp messagesResponse
	if err := c.do(ctx, http.MethodGet, "/messages?page=1", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Members, nil
}

// Message fetches one message in full
func (c *Client) Message(ctx context.Context, token, id string) (*MessageDetail, error) {
	var msg MessageDetail
	if err := c.do(ctx, http.MethodGet, "/messages/"+id, token, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// do issues one JSON request and decodes the response into out (if non-nil)
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", ErrUnavailable, err)
	}
	return nil
}

// statusError maps a non-2xx response onto the error taxonomy
func statusError(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrAuthFailed, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w (status %d)", ErrNotFound, status)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s (status %d)", ErrRejected, truncateBody(body), status)
	default:
		return fmt.Errorf("%w: %s (status %d)", ErrUnavailable, truncateBody(body), status)
	}
}

func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
