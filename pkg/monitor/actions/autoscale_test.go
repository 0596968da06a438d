package actions

import (
	"errors"
	"testing"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

func TestParseAutoscaleCondition(t *testing.T) {
	spec := &AutoscaleSpec{}
	tokens := []string{"queue", "depth", "==", "100", "count", "10m"}

	if err := ParseAutoscaleCondition(spec, tokens, "--condition"); err != nil {
		t.Fatalf("ParseAutoscaleCondition returned error: %v", err)
	}

	trigger := spec.Condition
	if trigger == nil {
		t.Fatal("trigger not set on spec")
	}
	if trigger.MetricName != "queue depth" {
		t.Errorf("metric name = %q, want %q", trigger.MetricName, "queue depth")
	}
	if trigger.Operator != models.ComparisonEquals {
		t.Errorf("operator = %q, want Equals", trigger.Operator)
	}
	if trigger.TimeAggregation != models.TriggerCount {
		t.Errorf("aggregation = %q, want Count", trigger.TimeAggregation)
	}
	if trigger.TimeWindow != "PT10M" {
		t.Errorf("window = %q, want PT10M", trigger.TimeWindow)
	}
	if trigger.MetricResourceURI != nil || trigger.TimeGrain != nil || trigger.Statistic != nil {
		t.Error("deferred trigger fields should stay unset until binding")
	}
}

func TestParseAutoscaleConditionCoalescesFailures(t *testing.T) {
	// Arity and lookup failures all collapse into the same usage error.
	tests := []struct {
		name   string
		tokens []string
	}{
		{"too few tokens", []string{"cpu", ">", "80"}},
		{"unknown operator", []string{"cpu", "~", "80", "avg", "5m"}},
		{"unknown aggregation", []string{"cpu", ">", "80", "last", "5m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &AutoscaleSpec{}
			err := ParseAutoscaleCondition(spec, tt.tokens, "--condition")
			if err == nil {
				t.Fatal("ParseAutoscaleCondition should have failed")
			}
			var usage *UsageError
			if !errors.As(err, &usage) {
				t.Errorf("error = %T, want coalesced UsageError", err)
			}
		})
	}
}

func TestParseAutoscaleConditionExtendedOperators(t *testing.T) {
	for token, want := range map[string]models.ComparisonOperation{
		"==": models.ComparisonEquals,
		"!=": models.ComparisonNotEquals,
		">=": models.ComparisonGreaterThanOrEqual,
	} {
		spec := &AutoscaleSpec{}
		if err := ParseAutoscaleCondition(spec, []string{"cpu", token, "80", "avg", "5m"}, "--condition"); err != nil {
			t.Fatalf("ParseAutoscaleCondition(%s) returned error: %v", token, err)
		}
		if spec.Condition.Operator != want {
			t.Errorf("operator for %s = %q, want %q", token, spec.Condition.Operator, want)
		}
	}
}

func TestParseScale(t *testing.T) {
	tests := []struct {
		name          string
		tokens        []string
		wantDirection models.ScaleDirection
		wantType      models.ScaleType
		wantValue     string
	}{
		{"set to exact count", []string{"to", "5"}, models.DirectionNone, models.ScaleTypeExactCount, "5"},
		{"to ignores percent form", []string{"to", "5%"}, models.DirectionNone, models.ScaleTypeExactCount, "5%"},
		{"out by percent", []string{"out", "10%"}, models.DirectionIncrease, models.ScaleTypePercentChangeCount, "10"},
		{"in by count", []string{"in", "2"}, models.DirectionDecrease, models.ScaleTypeChangeCount, "2"},
		{"quoted expression", []string{"out 10%"}, models.DirectionIncrease, models.ScaleTypePercentChangeCount, "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &AutoscaleSpec{}
			if err := ParseScale(spec, tt.tokens, "--scale"); err != nil {
				t.Fatalf("ParseScale returned error: %v", err)
			}
			scale := spec.Scale
			if scale == nil {
				t.Fatal("scale not set on spec")
			}
			if scale.Direction != tt.wantDirection {
				t.Errorf("direction = %q, want %q", scale.Direction, tt.wantDirection)
			}
			if scale.Type != tt.wantType {
				t.Errorf("type = %q, want %q", scale.Type, tt.wantType)
			}
			if scale.Value != tt.wantValue {
				t.Errorf("value = %q, want %q", scale.Value, tt.wantValue)
			}
			if scale.Cooldown != nil {
				t.Errorf("cooldown should stay unset until binding, got %q", *scale.Cooldown)
			}
		})
	}
}

func TestParseScaleUsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"one token", []string{"out"}},
		{"three tokens", []string{"out", "10%", "extra"}},
		{"unknown direction", []string{"sideways", "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &AutoscaleSpec{}
			err := ParseScale(spec, tt.tokens, "--scale")
			if err == nil {
				t.Fatal("ParseScale should have failed")
			}
			var usage *UsageError
			if !errors.As(err, &usage) {
				t.Errorf("error = %T, want UsageError", err)
			}
		})
	}
}
