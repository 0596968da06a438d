// Package keywords supplies the lookup maps that translate command-line
// keywords (comparison symbols, aggregation names, scale directions) into the
// management API's enum values. The condition and scale parsers consume these
// maps; they never define their own.
package keywords

import "github.com/stratus-ops/vigil/pkg/monitor/models"

// OperatorMap maps alert condition operator symbols to API operators.
// Lookup is case-sensitive: the keys are punctuation, not words.
func OperatorMap() map[string]models.ConditionOperator {
	return map[string]models.ConditionOperator{
		">":  models.OperatorGreaterThan,
		">=": models.OperatorGreaterThanOrEqual,
		"<":  models.OperatorLessThan,
		"<=": models.OperatorLessThanOrEqual,
	}
}

// AggregationMap maps alert aggregation keywords to API aggregations.
// Callers lower-case the token before lookup.
func AggregationMap() map[string]models.TimeAggregation {
	return map[string]models.TimeAggregation{
		"avg":   models.AggregationAverage,
		"min":   models.AggregationMinimum,
		"max":   models.AggregationMaximum,
		"total": models.AggregationTotal,
		"last":  models.AggregationLast,
	}
}

// AutoscaleOperatorMap maps autoscale trigger operator symbols to API
// comparison operations. Autoscale additionally recognizes == and !=.
func AutoscaleOperatorMap() map[string]models.ComparisonOperation {
	return map[string]models.ComparisonOperation{
		"==": models.ComparisonEquals,
		"!=": models.ComparisonNotEquals,
		">":  models.ComparisonGreaterThan,
		">=": models.ComparisonGreaterThanOrEqual,
		"<":  models.ComparisonLessThan,
		"<=": models.ComparisonLessThanOrEqual,
	}
}

// AutoscaleAggregationMap maps autoscale aggregation keywords to API trigger
// aggregations. Autoscale supports count where alert rules support last.
func AutoscaleAggregationMap() map[string]models.TriggerAggregation {
	return map[string]models.TriggerAggregation{
		"avg":   models.TriggerAverage,
		"min":   models.TriggerMinimum,
		"max":   models.TriggerMaximum,
		"total": models.TriggerTotal,
		"count": models.TriggerCount,
	}
}

// ScaleDirectionMap maps the scale directive's direction keyword to the API
// scale direction. "to" maps to DirectionNone: the instance count is set
// absolutely rather than adjusted.
func ScaleDirectionMap() map[string]models.ScaleDirection {
	return map[string]models.ScaleDirection{
		"in":  models.DirectionDecrease,
		"out": models.DirectionIncrease,
		"to":  models.DirectionNone,
	}
}
