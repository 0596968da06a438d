package actions

import (
	"errors"
	"strings"
	"testing"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

func TestParseCondition(t *testing.T) {
	spec := &AlertRuleSpec{}
	tokens := []string{"cpu", "percentage", ">", "80", "avg", "5m"}

	if err := ParseCondition(spec, tokens, "--condition"); err != nil {
		t.Fatalf("ParseCondition returned error: %v", err)
	}

	cond := spec.Condition
	if cond == nil {
		t.Fatal("condition not set on spec")
	}
	if cond.DataSource.MetricName != "cpu percentage" {
		t.Errorf("metric name = %q, want %q", cond.DataSource.MetricName, "cpu percentage")
	}
	if cond.Operator != models.OperatorGreaterThan {
		t.Errorf("operator = %q, want GreaterThan", cond.Operator)
	}
	if cond.Threshold != 80 {
		t.Errorf("threshold = %d, want 80", cond.Threshold)
	}
	if cond.TimeAggregation != models.AggregationAverage {
		t.Errorf("aggregation = %q, want Average", cond.TimeAggregation)
	}
	if cond.WindowSize != "PT5M" {
		t.Errorf("window = %q, want PT5M", cond.WindowSize)
	}
	if cond.DataSource.ResourceURI != nil {
		t.Errorf("resource URI should stay unset until binding, got %q", *cond.DataSource.ResourceURI)
	}
}

func TestParseConditionDefaultsDescription(t *testing.T) {
	spec := &AlertRuleSpec{}
	tokens := []string{"cpu", "percentage", ">", "80", "avg", "5m"}

	if err := ParseCondition(spec, tokens, "--condition"); err != nil {
		t.Fatalf("ParseCondition returned error: %v", err)
	}
	if spec.Description != "cpu percentage > 80 avg 5m" {
		t.Errorf("description = %q, want space-joined tokens", spec.Description)
	}
}

func TestParseConditionKeepsExplicitDescription(t *testing.T) {
	spec := &AlertRuleSpec{Description: "high cpu"}
	tokens := []string{"cpu", ">", "80", "avg", "5m"}

	if err := ParseCondition(spec, tokens, "--condition"); err != nil {
		t.Fatalf("ParseCondition returned error: %v", err)
	}
	if spec.Description != "high cpu" {
		t.Errorf("description = %q, want explicit value preserved", spec.Description)
	}
}

func TestParseConditionQuotedExpression(t *testing.T) {
	// A single token is re-split on spaces so the whole expression can be
	// quoted in shells that eat comparison characters.
	spec := &AlertRuleSpec{}
	if err := ParseCondition(spec, []string{"cpu percentage > 80 avg 5m"}, "--condition"); err != nil {
		t.Fatalf("ParseCondition returned error: %v", err)
	}
	if spec.Condition == nil || spec.Condition.DataSource.MetricName != "cpu percentage" {
		t.Fatalf("quoted expression not parsed: %+v", spec.Condition)
	}
}

func TestParseConditionTooFewTokens(t *testing.T) {
	spec := &AlertRuleSpec{}
	err := ParseCondition(spec, []string{"cpu", ">", "80"}, "--condition")
	if err == nil {
		t.Fatal("ParseCondition should have failed with 3 tokens")
	}
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error = %T, want UsageError", err)
	}
	if !strings.HasPrefix(err.Error(), "usage error: ") {
		t.Errorf("usage errors must carry the usage error prefix: %v", err)
	}
}

func TestParseConditionBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		check  func(error) bool
	}{
		{
			name:   "unknown operator",
			tokens: []string{"cpu", "~", "80", "avg", "5m"},
			check: func(err error) bool {
				var lookupErr *LookupError
				return errors.As(err, &lookupErr) && lookupErr.Kind == "operator"
			},
		},
		{
			name:   "operator lookup is case-sensitive on symbols only",
			tokens: []string{"cpu", "GT", "80", "avg", "5m"},
			check: func(err error) bool {
				var lookupErr *LookupError
				return errors.As(err, &lookupErr)
			},
		},
		{
			name:   "non-integer threshold",
			tokens: []string{"cpu", ">", "eighty", "avg", "5m"},
			check: func(err error) bool {
				var thresholdErr *InvalidThresholdError
				return errors.As(err, &thresholdErr)
			},
		},
		{
			name:   "unknown aggregation",
			tokens: []string{"cpu", ">", "80", "median", "5m"},
			check: func(err error) bool {
				var lookupErr *LookupError
				return errors.As(err, &lookupErr) && lookupErr.Kind == "aggregation"
			},
		},
		{
			name:   "malformed window",
			tokens: []string{"cpu", ">", "80", "avg", "soon"},
			check:  func(err error) bool { return err != nil },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &AlertRuleSpec{}
			err := ParseCondition(spec, tt.tokens, "--condition")
			if err == nil {
				t.Fatal("ParseCondition should have failed")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseConditionAggregationCaseInsensitive(t *testing.T) {
	spec := &AlertRuleSpec{}
	if err := ParseCondition(spec, []string{"cpu", ">", "80", "AVG", "5m"}, "--condition"); err != nil {
		t.Fatalf("ParseCondition returned error: %v", err)
	}
	if spec.Condition.TimeAggregation != models.AggregationAverage {
		t.Errorf("aggregation = %q, want Average", spec.Condition.TimeAggregation)
	}
}
