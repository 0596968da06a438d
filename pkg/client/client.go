package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/stratus-ops/vigil/pkg/config"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

const (
	requestIDHeader = "X-Client-Request-Id"
	apiVersion      = "2023-01-01"
)

// APIError is a non-2xx response from the management API.
type APIError struct {
	StatusCode int
	RequestID  string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("management API returned %d (request %s): %s", e.StatusCode, e.RequestID, e.Body)
}

// Client talks to the management API.
type Client struct {
	endpoint      string
	subscription  string
	resourceGroup string
	httpClient    *http.Client
	logger        *slog.Logger
}

// New creates a client from the API configuration. The endpoint must be set;
// rendering-only invocations never construct a client.
func New(cfg config.APIConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("management API endpoint is not configured")
	}
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil || !parsed.IsAbs() {
		return nil, fmt.Errorf("invalid management API endpoint %q", cfg.Endpoint)
	}
	if cfg.Subscription == "" || cfg.ResourceGroup == "" {
		return nil, fmt.Errorf("subscription and resource group are required to submit documents")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint:      parsed.String(),
		subscription:  cfg.Subscription,
		resourceGroup: cfg.ResourceGroup,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
	}, nil
}

// PutAlertRule creates or updates an alert rule.
func (c *Client) PutAlertRule(ctx context.Context, rule *models.AlertRule) error {
	return c.put(ctx, "alertRules", rule.Name, rule)
}

// PutAutoscaleSetting creates or updates an autoscale setting.
func (c *Client) PutAutoscaleSetting(ctx context.Context, setting *models.AutoscaleSetting) error {
	return c.put(ctx, "autoscaleSettings", setting.Name, setting)
}

func (c *Client) put(ctx context.Context, resourceType, name string, document interface{}) error {
	body, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to encode %s %q: %w", resourceType, name, err)
	}

	target := fmt.Sprintf("%s/subscriptions/%s/resourceGroups/%s/providers/monitor/%s/%s?api-version=%s",
		c.endpoint, c.subscription, c.resourceGroup, resourceType, url.PathEscape(name), apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s %q: %w", resourceType, name, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	c.logger.Debug("submitting document",
		"resource_type", resourceType,
		"name", name,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit %s %q: %w", resourceType, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Body:       string(bytes.TrimSpace(detail)),
		}
	}

	c.logger.Info("document submitted",
		"resource_type", resourceType,
		"name", name,
		"status", resp.StatusCode)
	return nil
}
