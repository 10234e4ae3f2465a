package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/storynest/storynest-api/internal/errors"
)

const defaultTimeout = 10 * time.Second

// HTTPConfig holds the configuration for the HTTP commerce client
type HTTPConfig struct {
	BaseURL string
	APIKey  string
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate ensures the config is complete
func (c *HTTPConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.BaseURL == "" {
		return errors.InvalidArgument("base URL is required")
	}
	if c.APIKey == "" {
		return errors.InvalidArgument("API key is required")
	}
	return nil
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a commerce client talking JSON over HTTP
func NewHTTPClient(cfg *HTTPConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &httpClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  client,
	}, nil
}

type subscriptionResponse struct {
	Plan      string `json:"plan"`
	Active    bool   `json:"active"`
	ExpiresAt int64  `json:"expires_at"`
}

func (c *httpClient) GetSubscription(ctx context.Context, input *GetSubscriptionInput) (*GetSubscriptionOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/v1/subscriptions/%s", c.baseURL, url.PathEscape(input.OwnerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build subscription request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "subscription request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return &GetSubscriptionOutput{}, nil
	default:
		return nil, errors.Unavailablef("commerce provider returned status %d", resp.StatusCode)
	}

	var body subscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode subscription response")
	}

	return &GetSubscriptionOutput{
		Plan:      body.Plan,
		Active:    body.Active,
		ExpiresAt: body.ExpiresAt,
	}, nil
}
