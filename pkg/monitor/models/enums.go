package models

// ConditionOperator is the comparison applied by an alert rule condition.
type ConditionOperator string

const (
	OperatorGreaterThan        ConditionOperator = "GreaterThan"
	OperatorGreaterThanOrEqual ConditionOperator = "GreaterThanOrEqual"
	OperatorLessThan           ConditionOperator = "LessThan"
	OperatorLessThanOrEqual    ConditionOperator = "LessThanOrEqual"
)

// TimeAggregation is how metric samples are aggregated over the window
// before an alert rule condition is evaluated.
type TimeAggregation string

const (
	AggregationAverage TimeAggregation = "Average"
	AggregationMinimum TimeAggregation = "Minimum"
	AggregationMaximum TimeAggregation = "Maximum"
	AggregationTotal   TimeAggregation = "Total"
	AggregationLast    TimeAggregation = "Last"
)

// ComparisonOperation is the comparison applied by an autoscale metric
// trigger. Autoscale supports equality operators that alert rules do not.
type ComparisonOperation string

const (
	ComparisonEquals             ComparisonOperation = "Equals"
	ComparisonNotEquals          ComparisonOperation = "NotEquals"
	ComparisonGreaterThan        ComparisonOperation = "GreaterThan"
	ComparisonGreaterThanOrEqual ComparisonOperation = "GreaterThanOrEqual"
	ComparisonLessThan           ComparisonOperation = "LessThan"
	ComparisonLessThanOrEqual    ComparisonOperation = "LessThanOrEqual"
)

// TriggerAggregation is how metric samples are aggregated over the window
// before an autoscale trigger is evaluated.
type TriggerAggregation string

const (
	TriggerAverage TriggerAggregation = "Average"
	TriggerMinimum TriggerAggregation = "Minimum"
	TriggerMaximum TriggerAggregation = "Maximum"
	TriggerTotal   TriggerAggregation = "Total"
	TriggerCount   TriggerAggregation = "Count"
)

// ScaleDirection is the direction of an autoscale action. DirectionNone is
// used with ScaleTypeExactCount, where the instance count is set absolutely
// rather than adjusted.
type ScaleDirection string

const (
	DirectionIncrease ScaleDirection = "Increase"
	DirectionDecrease ScaleDirection = "Decrease"
	DirectionNone     ScaleDirection = "None"
)

// ScaleType describes how the scale action value is interpreted.
type ScaleType string

const (
	ScaleTypeChangeCount        ScaleType = "ChangeCount"
	ScaleTypePercentChangeCount ScaleType = "PercentChangeCount"
	ScaleTypeExactCount         ScaleType = "ExactCount"
)
