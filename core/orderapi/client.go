package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client defines the operations the reconciler needs from the
// order-management API.
type Client interface {
	// Authorize exchanges the application credentials for a session token.
	Authorize(ctx context.Context) (string, error)
	// OrderByNum fetches the order document for an external numeric order
	// id, using a session token from Authorize.
	OrderByNum(ctx context.Context, token, numOrderID string) (*Order, error)
}

// NewClient creates an HTTP client for the order-management API.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &httpClient{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

type httpClient struct {
	cfg    Config
	client *http.Client
}

func (c *httpClient) Authorize(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"ApplicationId":     c.cfg.ApplicationID,
		"ApplicationSecret": c.cfg.ApplicationSecret,
		"Token":             c.cfg.Token,
	})
	if err != nil {
		return "", fmt.Errorf("encode auth payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("authorization failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var auth struct {
		Token  string `json:"Token"`
		Server string `json:"Server"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", fmt.Errorf("decode auth response: %w", err)
	}
	if auth.Token == "" {
		return "", errors.New("authorization response contained no token")
	}

	return auth.Token, nil
}

func (c *httpClient) OrderByNum(ctx context.Context, token, numOrderID string) (*Order, error) {
	endpoint := fmt.Sprintf("%s/api/Orders/GetOrderDetailsByNumOrderId?OrderId=%s", c.cfg.BaseURL, numOrderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("order lookup failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}

	return &order, nil
}
