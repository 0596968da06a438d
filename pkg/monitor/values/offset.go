package values

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimezoneOffset normalizes a UTC offset token of the form "H" or "H:M".
// The hour must lie in [-12, +14]. The result carries an explicit sign and a
// two-digit hour when the magnitude is below ten; the minute part, if given,
// is reattached verbatim.
//
//	5     -> +05
//	-3    -> -03
//	14    -> +14
//	5:30  -> +05:30
func ParseTimezoneOffset(value string) (string, error) {
	hourPart, minutePart, hasMinute := strings.Cut(value, ":")

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return "", fmt.Errorf("invalid offset %q: %w", value, err)
	}
	if hour > 14 || hour < -12 {
		return "", &OffsetRangeError{Hour: hour}
	}

	var out string
	switch {
	case hour >= 0 && hour < 10:
		out = fmt.Sprintf("+0%d", hour)
	case hour >= 10:
		out = fmt.Sprintf("+%d", hour)
	case hour < 0 && hour > -10:
		out = fmt.Sprintf("-0%d", -hour)
	default:
		out = strconv.Itoa(hour)
	}
	if hasMinute && minutePart != "" {
		out = out + ":" + minutePart
	}
	return out, nil
}
