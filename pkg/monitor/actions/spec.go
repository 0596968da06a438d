package actions

import "github.com/stratus-ops/vigil/pkg/monitor/models"

// AlertRuleSpec is the mutable context an alert-rule command hands to its
// parsers. Parsers set named fields or append to the accumulator lists; they
// never remove or reorder prior entries.
type AlertRuleSpec struct {
	// Description defaults to the raw condition expression when the user
	// does not supply one.
	Description string

	// Condition is set by ParseCondition.
	Condition *models.ThresholdRuleCondition

	// AddActions accumulates one action per --add-action invocation.
	AddActions []models.RuleAction

	// RemoveActionKeys accumulates one key list per --remove-action
	// invocation.
	RemoveActionKeys [][]string
}

// AutoscaleSpec is the mutable context an autoscale-rule command hands to
// its parsers.
type AutoscaleSpec struct {
	// Condition is set by ParseAutoscaleCondition.
	Condition *models.MetricTrigger

	// Scale is set by ParseScale.
	Scale *models.ScaleAction

	// AddNotifications accumulates one notification per --add-notification
	// invocation.
	AddNotifications []models.Notification

	// RemoveNotificationKeys accumulates one key list per
	// --remove-notification invocation.
	RemoveNotificationKeys [][]string
}

// ActionGroupSpec is the mutable context an action-group command hands to
// the receiver dispatcher.
type ActionGroupSpec struct {
	// Receivers accumulates one receiver per --receiver invocation.
	Receivers []models.Receiver
}
