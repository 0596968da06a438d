package actions

import (
	"fmt"
	"strings"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

// ParseAddAction parses an alert action of the form
//
//	email ADDRESS [ADDRESS ...]
//	webhook URI [KEY=VALUE ...]
//
// and appends the result to the spec's action accumulator. Repeated
// invocations accumulate in order.
func ParseAddAction(spec *AlertRuleSpec, tokens []string, option string) error {
	if len(tokens) == 0 {
		return &UsageError{Usage: fmt.Sprintf("%s TYPE KEY [ARGS]", option)}
	}
	switch strings.ToLower(tokens[0]) {
	case "email":
		spec.AddActions = append(spec.AddActions, models.NewRuleEmailAction(tokens[1:]))
		return nil
	case "webhook":
		uri, properties, err := parseWebhook(tokens, option)
		if err != nil {
			return err
		}
		spec.AddActions = append(spec.AddActions, models.NewRuleWebhookAction(uri, properties))
		return nil
	}
	return &UsageError{Usage: fmt.Sprintf("%s TYPE KEY [ARGS]", option)}
}

// ParseRemoveAction parses an alert action removal of the form
//
//	{email,webhook} KEY [KEY ...]
//
// The type tag carries no behavior of its own; it is validated for symmetry
// with --add-action. The trailing tokens are appended verbatim as a removal
// key list.
func ParseRemoveAction(spec *AlertRuleSpec, tokens []string, option string) error {
	if err := checkRemoveTag(tokens, option); err != nil {
		return err
	}
	spec.RemoveActionKeys = append(spec.RemoveActionKeys, tokens[1:])
	return nil
}

// ParseAddNotification is the autoscale analog of ParseAddAction, producing
// autoscale notifications instead of alert rule actions.
func ParseAddNotification(spec *AutoscaleSpec, tokens []string, option string) error {
	if len(tokens) == 0 {
		return &UsageError{Usage: fmt.Sprintf("%s TYPE KEY [ARGS]", option)}
	}
	switch strings.ToLower(tokens[0]) {
	case "email":
		spec.AddNotifications = append(spec.AddNotifications, models.NewEmailNotification(tokens[1:]))
		return nil
	case "webhook":
		uri, properties, err := parseWebhook(tokens, option)
		if err != nil {
			return err
		}
		spec.AddNotifications = append(spec.AddNotifications, models.NewWebhookNotification(uri, properties))
		return nil
	}
	return &UsageError{Usage: fmt.Sprintf("%s TYPE KEY [ARGS]", option)}
}

// ParseRemoveNotification is the autoscale analog of ParseRemoveAction.
func ParseRemoveNotification(spec *AutoscaleSpec, tokens []string, option string) error {
	if err := checkRemoveTag(tokens, option); err != nil {
		return err
	}
	spec.RemoveNotificationKeys = append(spec.RemoveNotificationKeys, tokens[1:])
	return nil
}

// parseWebhook extracts the URI and KEY=VALUE properties from a webhook
// token sequence. A property token without "=" is a usage error; duplicate
// keys keep the last value.
func parseWebhook(tokens []string, option string) (string, map[string]string, error) {
	usage := &UsageError{Usage: fmt.Sprintf("%s webhook URI [KEY=VALUE ...]", option)}
	if len(tokens) < 2 {
		return "", nil, usage
	}
	uri := tokens[1]
	properties := make(map[string]string, len(tokens)-2)
	for _, pair := range tokens[2:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return "", nil, usage
		}
		properties[key] = value
	}
	return uri, properties, nil
}

func checkRemoveTag(tokens []string, option string) error {
	usage := &UsageError{Usage: fmt.Sprintf("%s TYPE KEY [KEY ...]", option)}
	if len(tokens) == 0 {
		return usage
	}
	switch strings.ToLower(tokens[0]) {
	case "email", "webhook":
		return nil
	}
	return usage
}
