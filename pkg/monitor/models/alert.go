package models

// RuleMetricDataSource identifies the metric an alert rule condition watches.
// ResourceURI is nil until the binding stage attaches the rule to a target
// resource.
type RuleMetricDataSource struct {
	// ResourceURI is the URI of the resource emitting the metric.
	// Deferred: filled in by binding, not by the condition parser.
	ResourceURI *string `json:"resourceUri,omitempty" yaml:"resource_uri,omitempty"`

	// MetricName is the display name of the metric (may contain spaces).
	MetricName string `json:"metricName" yaml:"metric_name"`
}

// ThresholdRuleCondition is an alert rule condition comparing an aggregated
// metric value against a fixed threshold over a time window.
type ThresholdRuleCondition struct {
	Operator        ConditionOperator    `json:"operator" yaml:"operator"`
	Threshold       int                  `json:"threshold" yaml:"threshold"`
	DataSource      RuleMetricDataSource `json:"dataSource" yaml:"data_source"`
	WindowSize      string               `json:"windowSize" yaml:"window_size"`
	TimeAggregation TimeAggregation      `json:"timeAggregation" yaml:"time_aggregation"`
}

// RuleAction is an action taken when an alert rule fires. It is a closed set:
// RuleEmailAction and RuleWebhookAction.
type RuleAction interface {
	// ActionType returns the wire discriminator for the action variant.
	ActionType() string
}

// RuleEmailAction sends alert notifications to a list of email addresses.
type RuleEmailAction struct {
	Type         string   `json:"odata.type" yaml:"type"`
	CustomEmails []string `json:"customEmails" yaml:"custom_emails"`
}

// NewRuleEmailAction creates an email action for the given recipients.
func NewRuleEmailAction(recipients []string) RuleEmailAction {
	return RuleEmailAction{
		Type:         "RuleEmailAction",
		CustomEmails: recipients,
	}
}

// ActionType implements RuleAction.
func (a RuleEmailAction) ActionType() string { return a.Type }

// RuleWebhookAction posts alert notifications to a webhook URI with optional
// static properties included in the payload.
type RuleWebhookAction struct {
	Type       string            `json:"odata.type" yaml:"type"`
	ServiceURI string            `json:"serviceUri" yaml:"service_uri"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// NewRuleWebhookAction creates a webhook action for the given URI and
// properties.
func NewRuleWebhookAction(uri string, properties map[string]string) RuleWebhookAction {
	return RuleWebhookAction{
		Type:       "RuleWebhookAction",
		ServiceURI: uri,
		Properties: properties,
	}
}

// ActionType implements RuleAction.
func (a RuleWebhookAction) ActionType() string { return a.Type }

// AlertRule is a complete metric alert rule document.
type AlertRule struct {
	Name        string                  `json:"name" yaml:"name"`
	Description string                  `json:"description,omitempty" yaml:"description,omitempty"`
	IsEnabled   bool                    `json:"isEnabled" yaml:"is_enabled"`
	Condition   *ThresholdRuleCondition `json:"condition,omitempty" yaml:"condition,omitempty"`
	Actions     []RuleAction            `json:"actions,omitempty" yaml:"actions,omitempty"`
}
