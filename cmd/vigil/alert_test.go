package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

func resetAlertCreateFlags() {
	alertCreateFlags.name = ""
	alertCreateFlags.condition = ""
	alertCreateFlags.description = ""
	alertCreateFlags.disabled = false
	alertCreateFlags.target = ""
	alertCreateFlags.fromFile = ""
	alertCreateFlags.addActions = nil
	alertCreateFlags.removeActions = nil
	alertCreateFlags.submit = false
}

func TestBuildAlertRuleFromCondition(t *testing.T) {
	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	alertCreateFlags.condition = "Percentage CPU > 90 avg 5m"

	rule, err := buildAlertRule()
	if err != nil {
		t.Fatalf("buildAlertRule() returned error: %v", err)
	}
	if rule.Name != "high-cpu" {
		t.Errorf("name = %q", rule.Name)
	}
	if !rule.IsEnabled {
		t.Error("rule should be enabled by default")
	}
	if rule.Description != "Percentage CPU > 90 avg 5m" {
		t.Errorf("description should default to the expression, got %q", rule.Description)
	}
	if rule.Condition == nil {
		t.Fatal("condition not set")
	}
	if rule.Condition.DataSource.MetricName != "Percentage CPU" {
		t.Errorf("metric = %q", rule.Condition.DataSource.MetricName)
	}
	if rule.Condition.WindowSize != "PT5M" {
		t.Errorf("window = %q", rule.Condition.WindowSize)
	}
	if rule.Condition.DataSource.ResourceURI != nil {
		t.Error("resource URI should stay unset without --target")
	}
}

func TestBuildAlertRuleExplicitDescription(t *testing.T) {
	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	alertCreateFlags.condition = "Percentage CPU > 90 avg 5m"
	alertCreateFlags.description = "CPU runs hot"

	rule, err := buildAlertRule()
	if err != nil {
		t.Fatalf("buildAlertRule() returned error: %v", err)
	}
	if rule.Description != "CPU runs hot" {
		t.Errorf("description = %q", rule.Description)
	}
}

func TestBuildAlertRuleDisabled(t *testing.T) {
	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	alertCreateFlags.condition = "Percentage CPU > 90 avg 5m"
	alertCreateFlags.disabled = true

	rule, err := buildAlertRule()
	if err != nil {
		t.Fatalf("buildAlertRule() returned error: %v", err)
	}
	if rule.IsEnabled {
		t.Error("rule should be disabled")
	}
}

func TestBuildAlertRuleActions(t *testing.T) {
	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	alertCreateFlags.condition = "Percentage CPU > 90 avg 5m"
	alertCreateFlags.addActions = []string{
		"email ops@example.com oncall@example.com",
		"webhook https://hooks.example.com/a team=web",
	}

	rule, err := buildAlertRule()
	if err != nil {
		t.Fatalf("buildAlertRule() returned error: %v", err)
	}
	if len(rule.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(rule.Actions))
	}
	email, ok := rule.Actions[0].(models.RuleEmailAction)
	if !ok {
		t.Fatalf("first action = %T, want email", rule.Actions[0])
	}
	if len(email.CustomEmails) != 2 {
		t.Errorf("recipients = %v", email.CustomEmails)
	}
	webhook, ok := rule.Actions[1].(models.RuleWebhookAction)
	if !ok {
		t.Fatalf("second action = %T, want webhook", rule.Actions[1])
	}
	if webhook.Properties["team"] != "web" {
		t.Errorf("properties = %v", webhook.Properties)
	}
}

func TestBuildAlertRuleRemoveAction(t *testing.T) {
	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	alertCreateFlags.condition = "Percentage CPU > 90 avg 5m"
	alertCreateFlags.addActions = []string{"email ops@example.com oncall@example.com"}
	alertCreateFlags.removeActions = []string{"email oncall@example.com"}

	rule, err := buildAlertRule()
	if err != nil {
		t.Fatalf("buildAlertRule() returned error: %v", err)
	}
	if len(rule.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(rule.Actions))
	}
	email := rule.Actions[0].(models.RuleEmailAction)
	if len(email.CustomEmails) != 1 || email.CustomEmails[0] != "ops@example.com" {
		t.Errorf("recipients = %v", email.CustomEmails)
	}
}

func TestBuildAlertRuleTarget(t *testing.T) {
	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	alertCreateFlags.condition = "Percentage CPU > 90 avg 5m"
	alertCreateFlags.target = "/subscriptions/s/vms/web-1"

	rule, err := buildAlertRule()
	if err != nil {
		t.Fatalf("buildAlertRule() returned error: %v", err)
	}
	if rule.Condition.DataSource.ResourceURI == nil || *rule.Condition.DataSource.ResourceURI != "/subscriptions/s/vms/web-1" {
		t.Error("target resource URI not bound")
	}
}

func TestBuildAlertRuleFromFile(t *testing.T) {
	resetAlertCreateFlags()
	path := filepath.Join(t.TempDir(), "rule.json")
	document := `{
  "name": "high-cpu",
  "condition": {
    "operator": "GreaterThan",
    "threshold": 90,
    "dataSource": {"metricName": "Percentage CPU"},
    "windowSize": "PT5M",
    "timeAggregation": "Average"
  }
}`
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("write rule file: %v", err)
	}
	alertCreateFlags.fromFile = path
	alertCreateFlags.name = "renamed"

	rule, err := buildAlertRule()
	if err != nil {
		t.Fatalf("buildAlertRule() returned error: %v", err)
	}
	if rule.Name != "renamed" {
		t.Errorf("name = %q, want flag override", rule.Name)
	}
	if !rule.IsEnabled {
		t.Error("rule without isEnabled should default to enabled")
	}
}

func TestBuildAlertRuleMissingInputs(t *testing.T) {
	resetAlertCreateFlags()
	if _, err := buildAlertRule(); err == nil {
		t.Error("buildAlertRule() without --name should fail")
	}

	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	if _, err := buildAlertRule(); err == nil {
		t.Error("buildAlertRule() without --condition should fail")
	}
}

func TestBuildAlertRuleBadCondition(t *testing.T) {
	resetAlertCreateFlags()
	alertCreateFlags.name = "high-cpu"
	alertCreateFlags.condition = "cpu above 90"

	if _, err := buildAlertRule(); err == nil {
		t.Error("buildAlertRule() with a malformed condition should fail")
	}
}
