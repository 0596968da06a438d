package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratus-ops/vigil/pkg/cli"
	"github.com/stratus-ops/vigil/pkg/client"
	"github.com/stratus-ops/vigil/pkg/monitor/actions"
	"github.com/stratus-ops/vigil/pkg/monitor/binding"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
	"github.com/stratus-ops/vigil/pkg/monitor/schema"
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Manage metric alert rules",
}

var alertCreateFlags struct {
	name          string
	condition     string
	description   string
	disabled      bool
	target        string
	fromFile      string
	addActions    []string
	removeActions []string
	submit        bool
}

var alertCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assemble a metric alert rule document",
	Long: `Assemble a metric alert rule from a condition expression.

The condition has the form:

  METRIC {>,>=,<,<=} THRESHOLD {avg,min,max,total,last} DURATION

The metric name may contain spaces; the last four tokens have fixed roles.
The duration accepts ISO8601 (PT5M) or shorthand (5m, 1d2h).

Examples:
  # Alert when average CPU exceeds 90 over 5 minutes
  vigil alert create --name high-cpu --condition "Percentage CPU > 90 avg 5m"

  # Attach actions
  vigil alert create --name high-cpu --condition "Percentage CPU > 90 avg 5m" \
    --add-action "email ops@example.com oncall@example.com" \
    --add-action "webhook https://hooks.example.com/alert team=web"

  # Load a complete rule document and retarget it
  vigil alert create --from-file rule.json --target /subscriptions/s/vms/web-1`,
	RunE: runAlertCreate,
}

func init() {
	rootCmd.AddCommand(alertCmd)
	alertCmd.AddCommand(alertCreateCmd)

	f := alertCreateCmd.Flags()
	f.StringVarP(&alertCreateFlags.name, "name", "n", "", "alert rule name")
	f.StringVar(&alertCreateFlags.condition, "condition", "", "condition expression")
	f.StringVar(&alertCreateFlags.description, "description", "", "rule description (defaults to the condition expression)")
	f.BoolVar(&alertCreateFlags.disabled, "disabled", false, "create the rule disabled")
	f.StringVar(&alertCreateFlags.target, "target", "", "URI of the resource to monitor")
	f.StringVar(&alertCreateFlags.fromFile, "from-file", "", "load the rule document from a JSON file")
	f.StringArrayVar(&alertCreateFlags.addActions, "add-action", nil, "action to add: \"email ADDRESS ...\" or \"webhook URI [KEY=VALUE ...]\" (repeatable)")
	f.StringArrayVar(&alertCreateFlags.removeActions, "remove-action", nil, "action keys to remove: \"{email,webhook} KEY ...\" (repeatable)")
	f.BoolVar(&alertCreateFlags.submit, "submit", false, "submit the document to the management API")
}

func runAlertCreate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	rule, err := buildAlertRule()
	if err != nil {
		return cli.NewCommandError("alert create", err)
	}

	if alertCreateFlags.submit {
		apiClient, err := client.New(cfg.API, logger)
		if err != nil {
			return cli.NewCommandError("alert create", err)
		}
		if err := apiClient.PutAlertRule(cli.SetupSignalHandler(), rule); err != nil {
			return cli.NewCommandError("alert create", err)
		}
	}

	return renderDocument(cfg, rule)
}

// buildAlertRule assembles the rule document from the create flags. The
// condition expression is handed to the parser as a single token so quoted
// expressions survive shells that strip the quoting.
func buildAlertRule() (*models.AlertRule, error) {
	spec := &actions.AlertRuleSpec{Description: alertCreateFlags.description}

	var rule *models.AlertRule
	if alertCreateFlags.fromFile != "" {
		loaded, err := schema.LoadAlertRule(alertCreateFlags.fromFile)
		if err != nil {
			return nil, err
		}
		rule = loaded
		if alertCreateFlags.name != "" {
			rule.Name = alertCreateFlags.name
		}
		if alertCreateFlags.description != "" {
			rule.Description = alertCreateFlags.description
		}
	} else {
		if alertCreateFlags.name == "" {
			return nil, fmt.Errorf("--name is required")
		}
		if alertCreateFlags.condition == "" {
			return nil, fmt.Errorf("either --condition or --from-file must be specified")
		}
		if err := actions.ParseCondition(spec, []string{alertCreateFlags.condition}, "--condition"); err != nil {
			return nil, err
		}
		rule = &models.AlertRule{
			Name:        alertCreateFlags.name,
			Description: spec.Description,
			IsEnabled:   !alertCreateFlags.disabled,
			Condition:   spec.Condition,
		}
	}

	for _, raw := range alertCreateFlags.addActions {
		if err := actions.ParseAddAction(spec, strings.Fields(raw), "--add-action"); err != nil {
			return nil, err
		}
	}
	for _, raw := range alertCreateFlags.removeActions {
		if err := actions.ParseRemoveAction(spec, strings.Fields(raw), "--remove-action"); err != nil {
			return nil, err
		}
	}

	rule.Actions = append(rule.Actions, spec.AddActions...)
	rule.Actions = pruneAlertActions(rule.Actions, spec.RemoveActionKeys)

	if alertCreateFlags.target != "" {
		if err := binding.BindAlertRule(rule, alertCreateFlags.target); err != nil {
			return nil, err
		}
	}
	return rule, nil
}

// pruneAlertActions drops action entries matching any removal key. Email
// actions lose matching recipients and disappear when none remain; webhook
// actions match on their service URI.
func pruneAlertActions(list []models.RuleAction, keyLists [][]string) []models.RuleAction {
	if len(keyLists) == 0 {
		return list
	}
	keys := make(map[string]bool)
	for _, ks := range keyLists {
		for _, k := range ks {
			keys[k] = true
		}
	}

	var kept []models.RuleAction
	for _, action := range list {
		switch a := action.(type) {
		case models.RuleEmailAction:
			var emails []string
			for _, e := range a.CustomEmails {
				if !keys[e] {
					emails = append(emails, e)
				}
			}
			if len(emails) > 0 {
				kept = append(kept, models.NewRuleEmailAction(emails))
			}
		case models.RuleWebhookAction:
			if !keys[a.ServiceURI] {
				kept = append(kept, a)
			}
		default:
			kept = append(kept, action)
		}
	}
	return kept
}
