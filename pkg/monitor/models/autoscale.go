package models

// MetricTrigger describes the metric condition that fires an autoscale rule.
// MetricResourceURI, TimeGrain, and Statistic are nil until the binding stage
// fills them in.
type MetricTrigger struct {
	MetricName string `json:"metricName" yaml:"metric_name"`

	// MetricResourceURI is the URI of the resource emitting the metric.
	// Deferred: filled in by binding.
	MetricResourceURI *string `json:"metricResourceUri,omitempty" yaml:"metric_resource_uri,omitempty"`

	// TimeGrain is the sampling granularity of the metric.
	// Deferred: filled in by binding.
	TimeGrain *string `json:"timeGrain,omitempty" yaml:"time_grain,omitempty"`

	// Statistic is how samples within a time grain are combined.
	// Deferred: filled in by binding.
	Statistic *string `json:"statistic,omitempty" yaml:"statistic,omitempty"`

	TimeWindow      string              `json:"timeWindow" yaml:"time_window"`
	TimeAggregation TriggerAggregation  `json:"timeAggregation" yaml:"time_aggregation"`
	Operator        ComparisonOperation `json:"operator" yaml:"operator"`
	Threshold       int                 `json:"threshold" yaml:"threshold"`
}

// ScaleAction describes how instance count changes when a trigger fires.
// Cooldown is nil until the binding stage fills it in. Value is kept as the
// raw numeric string the user supplied, with any percent suffix stripped.
type ScaleAction struct {
	Direction ScaleDirection `json:"direction" yaml:"direction"`
	Type      ScaleType      `json:"type" yaml:"type"`

	// Cooldown is the quiet period after a scale event, as an ISO8601
	// duration. Deferred: filled in by binding.
	Cooldown *string `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`

	Value string `json:"value" yaml:"value"`
}

// ScaleRule pairs a metric trigger with the scale action it drives.
type ScaleRule struct {
	MetricTrigger *MetricTrigger `json:"metricTrigger" yaml:"metric_trigger"`
	ScaleAction   *ScaleAction   `json:"scaleAction" yaml:"scale_action"`
}

// ScaleCapacity bounds the instance count for a profile.
type ScaleCapacity struct {
	Minimum int `json:"minimum" yaml:"minimum"`
	Maximum int `json:"maximum" yaml:"maximum"`
	Default int `json:"default" yaml:"default"`
}

// TimeWindowSchedule activates a profile between two fixed instants.
type TimeWindowSchedule struct {
	Timezone string `json:"timeZone,omitempty" yaml:"timezone,omitempty"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
}

// RecurrenceSchedule activates a profile on a repeating schedule. The
// schedule is a standard five-field cron expression evaluated in the given
// timezone.
type RecurrenceSchedule struct {
	Timezone string `json:"timeZone" yaml:"timezone"`
	Schedule string `json:"schedule" yaml:"schedule"`
}

// AutoscaleProfile groups scale rules with capacity bounds and an optional
// activation schedule. A profile carries at most one of FixedDate or
// Recurrence.
type AutoscaleProfile struct {
	Name       string              `json:"name" yaml:"name"`
	Capacity   ScaleCapacity       `json:"capacity" yaml:"capacity"`
	Rules      []ScaleRule         `json:"rules" yaml:"rules"`
	FixedDate  *TimeWindowSchedule `json:"fixedDate,omitempty" yaml:"fixed_date,omitempty"`
	Recurrence *RecurrenceSchedule `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
}

// AutoscaleSetting is a complete autoscale configuration document for one
// target resource.
type AutoscaleSetting struct {
	Name string `json:"name" yaml:"name"`

	// TargetResourceURI is the resource the setting scales.
	// Deferred: filled in by binding.
	TargetResourceURI *string `json:"targetResourceUri,omitempty" yaml:"target_resource_uri,omitempty"`

	Enabled       bool               `json:"enabled" yaml:"enabled"`
	Profiles      []AutoscaleProfile `json:"profiles" yaml:"profiles"`
	Notifications []Notification     `json:"notifications,omitempty" yaml:"notifications,omitempty"`
}
