package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratus-ops/vigil/pkg/cli"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
	"github.com/stratus-ops/vigil/pkg/monitor/schedule"
	"github.com/stratus-ops/vigil/pkg/monitor/timezones"
	"github.com/stratus-ops/vigil/pkg/monitor/values"
)

var autoscaleProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage autoscale profiles",
}

var profileCreateFlags struct {
	name           string
	minCount       int
	maxCount       int
	count          int
	recurrence     string
	timezone       string
	timezoneOffset string
	start          string
	end            string
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assemble an autoscale profile document",
	Long: `Assemble an autoscale profile with capacity bounds and an optional
activation schedule.

A profile carries at most one schedule: either a recurring one (a standard
five-field cron expression plus a timezone from the accepted table) or a
fixed window between two RFC3339 instants.

Examples:
  # Business-hours profile recurring on weekdays
  vigil autoscale profile create --name business-hours \
    --min-count 4 --max-count 12 --count 4 \
    --recurrence "0 9 * * 1-5" --timezone "Pacific Standard Time"

  # One-off window for a launch event
  vigil autoscale profile create --name launch \
    --min-count 10 --max-count 30 --count 10 \
    --start 2026-09-01T00:00:00Z --end 2026-09-02T00:00:00Z --timezone-offset 5:30`,
	RunE: runProfileCreate,
}

var listTimezonesFlags struct {
	search string
}

var listTimezonesCmd = &cobra.Command{
	Use:   "list-timezones",
	Short: "List accepted timezone names",
	Long: `List the timezone names accepted by profile schedules.

Examples:
  vigil autoscale profile list-timezones
  vigil autoscale profile list-timezones --search pacific`,
	RunE: runListTimezones,
}

func init() {
	autoscaleCmd.AddCommand(autoscaleProfileCmd)
	autoscaleProfileCmd.AddCommand(profileCreateCmd)
	autoscaleProfileCmd.AddCommand(listTimezonesCmd)

	f := profileCreateCmd.Flags()
	f.StringVarP(&profileCreateFlags.name, "name", "n", "", "profile name")
	f.IntVar(&profileCreateFlags.minCount, "min-count", 1, "minimum instance count")
	f.IntVar(&profileCreateFlags.maxCount, "max-count", 1, "maximum instance count")
	f.IntVar(&profileCreateFlags.count, "count", 1, "default instance count")
	f.StringVar(&profileCreateFlags.recurrence, "recurrence", "", "recurring schedule as a five-field cron expression")
	f.StringVar(&profileCreateFlags.timezone, "timezone", "", "timezone name from the accepted table")
	f.StringVar(&profileCreateFlags.timezoneOffset, "timezone-offset", "", "UTC offset for a fixed window, e.g. 5:30 or -7")
	f.StringVar(&profileCreateFlags.start, "start", "", "fixed window start (RFC3339)")
	f.StringVar(&profileCreateFlags.end, "end", "", "fixed window end (RFC3339)")

	listTimezonesCmd.Flags().StringVar(&listTimezonesFlags.search, "search", "", "case-insensitive substring filter")
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}

	profile, err := buildProfile()
	if err != nil {
		return cli.NewCommandError("autoscale profile create", err)
	}
	return renderDocument(cfg, profile)
}

func buildProfile() (*models.AutoscaleProfile, error) {
	if profileCreateFlags.name == "" {
		return nil, fmt.Errorf("--name is required")
	}

	profile := &models.AutoscaleProfile{
		Name: profileCreateFlags.name,
		Capacity: models.ScaleCapacity{
			Minimum: profileCreateFlags.minCount,
			Maximum: profileCreateFlags.maxCount,
			Default: profileCreateFlags.count,
		},
	}

	hasWindow := profileCreateFlags.start != "" || profileCreateFlags.end != ""
	if profileCreateFlags.recurrence != "" && hasWindow {
		return nil, fmt.Errorf("--recurrence and --start/--end are mutually exclusive")
	}

	switch {
	case profileCreateFlags.recurrence != "":
		timezone := profileCreateFlags.timezone
		if timezone == "" {
			return nil, fmt.Errorf("--timezone is required with --recurrence")
		}
		recurrence, err := schedule.NewRecurrence(profileCreateFlags.recurrence, timezone, timezones.Table)
		if err != nil {
			return nil, err
		}
		profile.Recurrence = recurrence
	case hasWindow:
		window, err := schedule.NewFixedWindow(profileCreateFlags.start, profileCreateFlags.end, profileCreateFlags.timezone, timezones.Table)
		if err != nil {
			return nil, err
		}
		if profileCreateFlags.timezoneOffset != "" {
			if window.Timezone != "" {
				return nil, fmt.Errorf("--timezone and --timezone-offset are mutually exclusive")
			}
			offset, err := values.ParseTimezoneOffset(profileCreateFlags.timezoneOffset)
			if err != nil {
				return nil, err
			}
			window.Timezone = "UTC" + offset
		}
		profile.FixedDate = window
	}

	if err := schedule.ValidateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func runListTimezones(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}

	names := timezones.Names(timezones.Table)
	if listTimezonesFlags.search != "" {
		query := strings.ToLower(listTimezonesFlags.search)
		filtered := names[:0]
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), query) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}
	return renderDocument(cfg, names)
}
