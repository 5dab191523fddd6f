package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GoogleProvider exchanges an RS256-signed service-account assertion for an
// OAuth2 bearer token at the configured token endpoint.
type GoogleProvider struct {
	tokenURL string
	scope    string
	client   *http.Client
}

// NewGoogleProvider creates a provider from the service-account config.
func NewGoogleProvider(cfg Config) *GoogleProvider {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &GoogleProvider{
		tokenURL: cfg.TokenURL,
		scope:    cfg.Scope,
		client:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Mint signs a JWT-bearer assertion with the service account's key and
// exchanges it for an access token.
func (p *GoogleProvider) Mint(ctx context.Context, clientEmail, privateKey string) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKey))
	if err != nil {
		return "", fmt.Errorf("parse signing key: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   clientEmail,
		"scope": p.scope,
		"aud":   p.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign assertion: %w", err)
	}

	form := url.Values{
		"grant_type": {"urn:ietf:params:oauth:grant-type:jwt-bearer"},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token exchange failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", errors.New("token response contained no access token")
	}

	return result.AccessToken, nil
}
