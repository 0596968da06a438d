package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stratus-ops/vigil/pkg/config"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAPIConfig(endpoint string) config.APIConfig {
	return config.APIConfig{
		Endpoint:      endpoint,
		Subscription:  "sub-1",
		ResourceGroup: "rg-1",
		Timeout:       5 * time.Second,
	}
}

func TestNewRequiresEndpoint(t *testing.T) {
	if _, err := New(config.APIConfig{Subscription: "s", ResourceGroup: "r"}, testLogger()); err == nil {
		t.Error("New should fail without an endpoint")
	}
}

func TestNewRequiresScope(t *testing.T) {
	if _, err := New(config.APIConfig{Endpoint: "https://api.example.com"}, testLogger()); err == nil {
		t.Error("New should fail without subscription and resource group")
	}
}

func TestPutAlertRule(t *testing.T) {
	var gotPath, gotRequestID, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Client-Request-Id")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := New(testAPIConfig(server.URL), testLogger())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	rule := &models.AlertRule{Name: "high-cpu", IsEnabled: true}
	if err := c.PutAlertRule(context.Background(), rule); err != nil {
		t.Fatalf("PutAlertRule returned error: %v", err)
	}

	want := "/subscriptions/sub-1/resourceGroups/rg-1/providers/monitor/alertRules/high-cpu"
	if gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotRequestID == "" {
		t.Error("request should carry a client request ID")
	}
	if !strings.Contains(gotBody, `"name":"high-cpu"`) {
		t.Errorf("unexpected request body: %s", gotBody)
	}
}

func TestPutAutoscaleSettingAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "capacity bounds invalid")
	}))
	defer server.Close()

	c, err := New(testAPIConfig(server.URL), testLogger())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = c.PutAutoscaleSetting(context.Background(), &models.AutoscaleSetting{Name: "scale-web"})
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "capacity bounds invalid") {
		t.Errorf("body = %q", apiErr.Body)
	}
}

func TestPutAlertRuleContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c, err := New(testAPIConfig(server.URL), testLogger())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.PutAlertRule(ctx, &models.AlertRule{Name: "r"}); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}
