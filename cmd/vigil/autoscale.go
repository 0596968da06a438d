package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratus-ops/vigil/pkg/cli"
	"github.com/stratus-ops/vigil/pkg/client"
	"github.com/stratus-ops/vigil/pkg/config"
	"github.com/stratus-ops/vigil/pkg/monitor/actions"
	"github.com/stratus-ops/vigil/pkg/monitor/binding"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
	"github.com/stratus-ops/vigil/pkg/monitor/schedule"
	"github.com/stratus-ops/vigil/pkg/monitor/values"
)

var autoscaleCmd = &cobra.Command{
	Use:   "autoscale",
	Short: "Manage autoscale settings, rules, and profiles",
}

var autoscaleRuleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Manage autoscale rules",
}

var autoscaleRuleCreateFlags struct {
	condition string
	scale     string
	cooldown  string
	timegrain string
	statistic string
	resource  string
}

var autoscaleRuleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assemble an autoscale rule document",
	Long: `Assemble an autoscale rule from a trigger condition and a scale directive.

The condition has the form:

  METRIC {==,!=,>,>=,<,<=} THRESHOLD {avg,min,max,total,count} PERIOD

The scale directive has exactly two tokens:

  {in,out,to} VALUE[%]

"out 2" adds two instances, "in 50%" removes half, "to 10" pins the count.

Examples:
  # Scale out by 2 when average CPU exceeds 70 over 10 minutes
  vigil autoscale rule create --condition "Percentage CPU > 70 avg 10m" \
    --scale "out 2"

  # Bind the rule to a resource with a custom cooldown
  vigil autoscale rule create --condition "Percentage CPU < 20 avg 10m" \
    --scale "in 1" --resource /subscriptions/s/scaleSets/web --cooldown 10m`,
	RunE: runAutoscaleRuleCreate,
}

var autoscaleCreateFlags struct {
	name                string
	resource            string
	minCount            int
	maxCount            int
	count               int
	disabled            bool
	addNotifications    []string
	removeNotifications []string
	submit              bool
}

var autoscaleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assemble an autoscale setting document",
	Long: `Assemble an autoscale setting with a default profile and optional
notifications.

Examples:
  vigil autoscale create --name scale-web --resource /subscriptions/s/scaleSets/web \
    --min-count 2 --max-count 10 --count 2 \
    --add-notification "email ops@example.com"`,
	RunE: runAutoscaleCreate,
}

func init() {
	rootCmd.AddCommand(autoscaleCmd)
	autoscaleCmd.AddCommand(autoscaleCreateCmd)
	autoscaleCmd.AddCommand(autoscaleRuleCmd)
	autoscaleRuleCmd.AddCommand(autoscaleRuleCreateCmd)

	rf := autoscaleRuleCreateCmd.Flags()
	rf.StringVar(&autoscaleRuleCreateFlags.condition, "condition", "", "trigger condition expression")
	rf.StringVar(&autoscaleRuleCreateFlags.scale, "scale", "", "scale directive: \"{in,out,to} VALUE[%]\"")
	rf.StringVar(&autoscaleRuleCreateFlags.cooldown, "cooldown", "", "cooldown after a scale event (ISO8601 or shorthand)")
	rf.StringVar(&autoscaleRuleCreateFlags.timegrain, "timegrain", "", "metric sampling granularity (ISO8601 or shorthand)")
	rf.StringVar(&autoscaleRuleCreateFlags.statistic, "statistic", "", "within-grain statistic")
	rf.StringVar(&autoscaleRuleCreateFlags.resource, "resource", "", "URI of the resource emitting the metric")

	sf := autoscaleCreateCmd.Flags()
	sf.StringVarP(&autoscaleCreateFlags.name, "name", "n", "", "autoscale setting name")
	sf.StringVar(&autoscaleCreateFlags.resource, "resource", "", "URI of the resource to scale")
	sf.IntVar(&autoscaleCreateFlags.minCount, "min-count", 1, "minimum instance count")
	sf.IntVar(&autoscaleCreateFlags.maxCount, "max-count", 1, "maximum instance count")
	sf.IntVar(&autoscaleCreateFlags.count, "count", 1, "default instance count")
	sf.BoolVar(&autoscaleCreateFlags.disabled, "disabled", false, "create the setting disabled")
	sf.StringArrayVar(&autoscaleCreateFlags.addNotifications, "add-notification", nil, "notification to add: \"email ADDRESS ...\" or \"webhook URI [KEY=VALUE ...]\" (repeatable)")
	sf.StringArrayVar(&autoscaleCreateFlags.removeNotifications, "remove-notification", nil, "notification keys to remove: \"{email,webhook} KEY ...\" (repeatable)")
	sf.BoolVar(&autoscaleCreateFlags.submit, "submit", false, "submit the document to the management API")
}

func runAutoscaleRuleCreate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}

	rule, err := buildScaleRule(cfg)
	if err != nil {
		return cli.NewCommandError("autoscale rule create", err)
	}
	return renderDocument(cfg, rule)
}

// buildScaleRule assembles a scale rule from the create flags. Without
// --resource the trigger's deferred fields stay unset so the rule can be
// attached to a setting later.
func buildScaleRule(cfg *config.Config) (*models.ScaleRule, error) {
	if autoscaleRuleCreateFlags.condition == "" || autoscaleRuleCreateFlags.scale == "" {
		return nil, fmt.Errorf("both --condition and --scale must be specified")
	}

	spec := &actions.AutoscaleSpec{}
	if err := actions.ParseAutoscaleCondition(spec, []string{autoscaleRuleCreateFlags.condition}, "--condition"); err != nil {
		return nil, err
	}
	if err := actions.ParseScale(spec, []string{autoscaleRuleCreateFlags.scale}, "--scale"); err != nil {
		return nil, err
	}

	rule := &models.ScaleRule{MetricTrigger: spec.Condition, ScaleAction: spec.Scale}

	if autoscaleRuleCreateFlags.resource != "" {
		cooldown, err := bindingDuration(autoscaleRuleCreateFlags.cooldown, cfg.Defaults.Cooldown)
		if err != nil {
			return nil, err
		}
		timegrain, err := bindingDuration(autoscaleRuleCreateFlags.timegrain, cfg.Defaults.TimeGrain)
		if err != nil {
			return nil, err
		}
		statistic := autoscaleRuleCreateFlags.statistic
		if statistic == "" {
			statistic = cfg.Defaults.Statistic
		}
		if err := binding.BindScaleRule(rule, autoscaleRuleCreateFlags.resource, timegrain, statistic, cooldown); err != nil {
			return nil, err
		}
	}
	return rule, nil
}

// bindingDuration normalizes a duration flag, falling back to the configured
// default when the flag is unset.
func bindingDuration(flag, fallback string) (string, error) {
	raw := flag
	if raw == "" {
		raw = fallback
	}
	return values.ParsePeriod(raw)
}

func runAutoscaleCreate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	setting, err := buildAutoscaleSetting()
	if err != nil {
		return cli.NewCommandError("autoscale create", err)
	}

	if autoscaleCreateFlags.submit {
		apiClient, err := client.New(cfg.API, logger)
		if err != nil {
			return cli.NewCommandError("autoscale create", err)
		}
		if err := apiClient.PutAutoscaleSetting(cli.SetupSignalHandler(), setting); err != nil {
			return cli.NewCommandError("autoscale create", err)
		}
	}

	return renderDocument(cfg, setting)
}

func buildAutoscaleSetting() (*models.AutoscaleSetting, error) {
	if autoscaleCreateFlags.name == "" {
		return nil, fmt.Errorf("--name is required")
	}
	if autoscaleCreateFlags.resource == "" {
		return nil, fmt.Errorf("--resource is required")
	}

	profile := models.AutoscaleProfile{
		Name: "default",
		Capacity: models.ScaleCapacity{
			Minimum: autoscaleCreateFlags.minCount,
			Maximum: autoscaleCreateFlags.maxCount,
			Default: autoscaleCreateFlags.count,
		},
	}
	if err := schedule.ValidateProfile(&profile); err != nil {
		return nil, err
	}

	spec := &actions.AutoscaleSpec{}
	for _, raw := range autoscaleCreateFlags.addNotifications {
		if err := actions.ParseAddNotification(spec, strings.Fields(raw), "--add-notification"); err != nil {
			return nil, err
		}
	}
	for _, raw := range autoscaleCreateFlags.removeNotifications {
		if err := actions.ParseRemoveNotification(spec, strings.Fields(raw), "--remove-notification"); err != nil {
			return nil, err
		}
	}

	setting := &models.AutoscaleSetting{
		Name:          autoscaleCreateFlags.name,
		Enabled:       !autoscaleCreateFlags.disabled,
		Profiles:      []models.AutoscaleProfile{profile},
		Notifications: pruneNotifications(spec.AddNotifications, spec.RemoveNotificationKeys),
	}
	resource := autoscaleCreateFlags.resource
	setting.TargetResourceURI = &resource
	return setting, nil
}

// pruneNotifications mirrors pruneAlertActions for autoscale notifications.
func pruneNotifications(list []models.Notification, keyLists [][]string) []models.Notification {
	if len(keyLists) == 0 {
		return list
	}
	keys := make(map[string]bool)
	for _, ks := range keyLists {
		for _, k := range ks {
			keys[k] = true
		}
	}

	var kept []models.Notification
	for _, notification := range list {
		switch n := notification.(type) {
		case models.EmailNotification:
			var emails []string
			for _, e := range n.CustomEmails {
				if !keys[e] {
					emails = append(emails, e)
				}
			}
			if len(emails) > 0 {
				kept = append(kept, models.NewEmailNotification(emails))
			}
		case models.WebhookNotification:
			if !keys[n.ServiceURI] {
				kept = append(kept, n)
			}
		default:
			kept = append(kept, notification)
		}
	}
	return kept
}
