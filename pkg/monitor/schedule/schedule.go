// Package schedule validates autoscale profile schedules: fixed windows
// between two instants and recurring activations expressed as standard cron
// expressions with a timezone from the accepted table.
package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
	"github.com/stratus-ops/vigil/pkg/monitor/timezones"
	"github.com/stratus-ops/vigil/pkg/monitor/values"
)

// NewRecurrence builds a validated recurring schedule. The cron expression
// must parse as a standard five-field expression and the timezone must exist
// in the table; the stored timezone uses the table's canonical casing.
func NewRecurrence(cronExpr, timezone string, zones []timezones.Zone) (*models.RecurrenceSchedule, error) {
	if _, err := cron.ParseStandard(cronExpr); err != nil {
		return nil, fmt.Errorf("invalid recurrence schedule %q: %w", cronExpr, err)
	}
	zone, err := values.ParseTimezoneName(timezone, zones)
	if err != nil {
		return nil, err
	}
	return &models.RecurrenceSchedule{Timezone: zone, Schedule: cronExpr}, nil
}

// NewFixedWindow builds a validated fixed-date schedule. Start and end are
// RFC3339 instants with the end strictly after the start; the timezone, if
// given, must exist in the table.
func NewFixedWindow(start, end, timezone string, zones []timezones.Zone) (*models.TimeWindowSchedule, error) {
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, fmt.Errorf("invalid window start %q: %w", start, err)
	}
	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return nil, fmt.Errorf("invalid window end %q: %w", end, err)
	}
	if !endAt.After(startAt) {
		return nil, fmt.Errorf("window end %q must be after start %q", end, start)
	}

	window := &models.TimeWindowSchedule{Start: start, End: end}
	if timezone != "" {
		zone, err := values.ParseTimezoneName(timezone, zones)
		if err != nil {
			return nil, err
		}
		window.Timezone = zone
	}
	return window, nil
}

// ValidateProfile checks a profile's schedule invariants: capacity bounds
// ordered and the default inside them, and at most one of fixed-date or
// recurrence present.
func ValidateProfile(profile *models.AutoscaleProfile) error {
	c := profile.Capacity
	if c.Minimum > c.Maximum {
		return fmt.Errorf("profile %q: capacity minimum %d exceeds maximum %d", profile.Name, c.Minimum, c.Maximum)
	}
	if c.Default < c.Minimum || c.Default > c.Maximum {
		return fmt.Errorf("profile %q: default capacity %d outside [%d, %d]", profile.Name, c.Default, c.Minimum, c.Maximum)
	}
	if profile.FixedDate != nil && profile.Recurrence != nil {
		return fmt.Errorf("profile %q: fixed-date and recurrence schedules are mutually exclusive", profile.Name)
	}
	return nil
}
