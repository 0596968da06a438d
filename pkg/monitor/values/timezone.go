package values

import "github.com/stratus-ops/vigil/pkg/monitor/timezones"

// ParseTimezoneName matches a free-text timezone name against the supplied
// table, case-insensitively, and returns the table's canonical casing.
func ParseTimezoneName(value string, zones []timezones.Zone) (string, error) {
	name, ok := timezones.Lookup(zones, value)
	if !ok {
		return "", &UnknownTimezoneError{Value: value}
	}
	return name, nil
}
