package values

import (
	"regexp"
	"strings"
)

// Submatch indexes into periodPattern. The two M groups are distinguished by
// their position relative to the T marker.
const (
	groupPeriodMarker = 1
	groupYears        = 2
	groupPreTMinutes  = 3
	groupDays         = 4
	groupTimeMarker   = 5
	groupHours        = 6
	groupMinutes      = 7
	groupSeconds      = 8
)

var periodPattern = regexp.MustCompile(`(?i)^(p)?(\d+y)?(\d+m)?(\d+d)?(t)?(\d+h)?(\d+m)?(\d+s)?$`)

// ParsePeriod normalizes a duration token into an ISO8601 duration string.
//
// A token carrying both the P and T markers is treated as already-valid
// ISO8601 and returned verbatim (the match itself is case-insensitive).
// Otherwise the token is shorthand, and only days, hours, minutes, and
// seconds survive: calendar years and months are dropped, and a bare "5m"
// with no T marker is read as five minutes, not five months. This mirrors
// the behavior the management API has always been sent; shorthand with no
// recognizable component degenerates to "PT".
func ParsePeriod(value string) (string, error) {
	m := periodPattern.FindStringSubmatch(value)
	if m == nil {
		return "", &MalformedDurationError{Value: value}
	}
	if m[groupPeriodMarker] != "" && m[groupTimeMarker] != "" {
		return value, nil
	}

	// Shorthand. The first time-component slot prefers the post-T hour
	// group and falls back to the pre-T M group, which keeps its own unit
	// letter and therefore lands as minutes.
	first := m[groupHours]
	if first == "" {
		first = m[groupPreTMinutes]
	}
	out := "P" + m[groupDays] + "T" + first + m[groupMinutes] + m[groupSeconds]
	return strings.ToUpper(out), nil
}
