// Package binding fills in the fields the token parsers leave deferred:
// resource URIs, time grain, statistic, and cooldown. It runs after parsing
// and before a document is rendered or submitted, so a parsed object is
// never silently defaulted into looking bound.
package binding

import (
	"fmt"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

// BindAlertRule attaches the alert rule's condition to a target resource.
func BindAlertRule(rule *models.AlertRule, resourceURI string) error {
	if resourceURI == "" {
		return fmt.Errorf("target resource URI is required to bind an alert rule")
	}
	if rule.Condition == nil {
		return fmt.Errorf("alert rule %q has no condition to bind", rule.Name)
	}
	rule.Condition.DataSource.ResourceURI = &resourceURI
	return nil
}

// BindScaleRule fills in the trigger's resource URI, time grain, and
// statistic, and the scale action's cooldown. All four must be supplied;
// durations are expected to be normalized already.
func BindScaleRule(rule *models.ScaleRule, resourceURI, timeGrain, statistic, cooldown string) error {
	if resourceURI == "" {
		return fmt.Errorf("metric resource URI is required to bind a scale rule")
	}
	if timeGrain == "" || statistic == "" {
		return fmt.Errorf("time grain and statistic are required to bind a scale rule")
	}
	if cooldown == "" {
		return fmt.Errorf("cooldown is required to bind a scale rule")
	}
	if rule.MetricTrigger == nil || rule.ScaleAction == nil {
		return fmt.Errorf("scale rule is missing its trigger or action")
	}
	rule.MetricTrigger.MetricResourceURI = &resourceURI
	rule.MetricTrigger.TimeGrain = &timeGrain
	rule.MetricTrigger.Statistic = &statistic
	rule.ScaleAction.Cooldown = &cooldown
	return nil
}

// BindAutoscaleSetting attaches the setting to its target resource and binds
// every rule in every profile with shared grain, statistic, and cooldown.
func BindAutoscaleSetting(setting *models.AutoscaleSetting, resourceURI, timeGrain, statistic, cooldown string) error {
	if resourceURI == "" {
		return fmt.Errorf("target resource URI is required to bind an autoscale setting")
	}
	setting.TargetResourceURI = &resourceURI
	for i := range setting.Profiles {
		for j := range setting.Profiles[i].Rules {
			if err := BindScaleRule(&setting.Profiles[i].Rules[j], resourceURI, timeGrain, statistic, cooldown); err != nil {
				return fmt.Errorf("profile %q rule %d: %w", setting.Profiles[i].Name, j, err)
			}
		}
	}
	return nil
}
