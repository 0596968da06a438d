package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stratus-ops/vigil/pkg/monitor/keywords"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
	"github.com/stratus-ops/vigil/pkg/monitor/values"
)

// ParseAutoscaleCondition parses an autoscale trigger expression of the form
//
//	METRIC {==,!=,>,>=,<,<=} THRESHOLD {avg,min,max,total,count} PERIOD
//
// with the same right-anchored four-token tail as ParseCondition. Arity and
// keyword-lookup failures are deliberately coalesced into one usage error
// rather than reported individually; downstream tooling depends on that
// single message shape.
//
// The trigger's resource URI, time grain, and statistic are left unset for
// the binding stage.
func ParseAutoscaleCondition(spec *AutoscaleSpec, tokens []string, option string) error {
	tokens = normalizeTokens(tokens)

	usage := &UsageError{Usage: fmt.Sprintf("%s METRIC {==,!=,>,>=,<,<=} THRESHOLD {avg,min,max,total,count} PERIOD", option)}
	if len(tokens) < 5 {
		return usage
	}

	metricName := strings.Join(tokens[:len(tokens)-4], " ")
	tail := tokens[len(tokens)-4:]

	operator, ok := keywords.AutoscaleOperatorMap()[tail[0]]
	if !ok {
		return usage
	}
	aggregation, ok := keywords.AutoscaleAggregationMap()[strings.ToLower(tail[2])]
	if !ok {
		return usage
	}
	threshold, err := strconv.Atoi(tail[1])
	if err != nil {
		return &InvalidThresholdError{Token: tail[1]}
	}
	window, err := values.ParsePeriod(tail[3])
	if err != nil {
		return err
	}

	spec.Condition = &models.MetricTrigger{
		MetricName:      metricName,
		TimeWindow:      window,
		TimeAggregation: aggregation,
		Operator:        operator,
		Threshold:       threshold,
	}
	return nil
}

// ParseScale parses a scale directive of exactly two tokens:
//
//	{in,out,to} VALUE[%]
//
// "to" forces an exact instance count regardless of the value's form; a
// trailing % on the value selects a percentage change and is stripped before
// the value is stored. The cooldown is left unset for the binding stage.
func ParseScale(spec *AutoscaleSpec, tokens []string, option string) error {
	tokens = normalizeTokens(tokens)

	usage := &UsageError{Usage: fmt.Sprintf("%s {in,out,to} VALUE[%%]", option)}
	if len(tokens) != 2 {
		return usage
	}

	direction, ok := keywords.ScaleDirectionMap()[tokens[0]]
	if !ok {
		return usage
	}

	amount := tokens[1]
	var scaleType models.ScaleType
	switch {
	case tokens[0] == "to":
		scaleType = models.ScaleTypeExactCount
	case strings.HasSuffix(amount, "%"):
		scaleType = models.ScaleTypePercentChangeCount
		amount = strings.TrimSuffix(amount, "%")
	default:
		scaleType = models.ScaleTypeChangeCount
	}

	spec.Scale = &models.ScaleAction{
		Direction: direction,
		Type:      scaleType,
		Value:     amount, // cooldown bound later
	}
	return nil
}
