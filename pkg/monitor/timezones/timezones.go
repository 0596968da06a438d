// Package timezones holds the table of timezone display names the autoscale
// API accepts for profile schedules. The table is an ordered list of records
// so callers can render it verbatim; lookup is case-insensitive and returns
// the canonical casing.
package timezones

import "strings"

// Zone is one entry in the timezone table.
type Zone struct {
	// Name is the canonical display name the API expects.
	Name string
}

// Table is the ordered set of timezone names accepted for autoscale profile
// schedules, west to east.
var Table = []Zone{
	{Name: "Dateline Standard Time"},
	{Name: "UTC-11"},
	{Name: "Hawaiian Standard Time"},
	{Name: "Alaskan Standard Time"},
	{Name: "Pacific Standard Time (Mexico)"},
	{Name: "Pacific Standard Time"},
	{Name: "US Mountain Standard Time"},
	{Name: "Mountain Standard Time (Mexico)"},
	{Name: "Mountain Standard Time"},
	{Name: "Central America Standard Time"},
	{Name: "Central Standard Time"},
	{Name: "Central Standard Time (Mexico)"},
	{Name: "Canada Central Standard Time"},
	{Name: "SA Pacific Standard Time"},
	{Name: "Eastern Standard Time"},
	{Name: "US Eastern Standard Time"},
	{Name: "Venezuela Standard Time"},
	{Name: "Paraguay Standard Time"},
	{Name: "Atlantic Standard Time"},
	{Name: "Central Brazilian Standard Time"},
	{Name: "SA Western Standard Time"},
	{Name: "Pacific SA Standard Time"},
	{Name: "Newfoundland Standard Time"},
	{Name: "E. South America Standard Time"},
	{Name: "Argentina Standard Time"},
	{Name: "SA Eastern Standard Time"},
	{Name: "Greenland Standard Time"},
	{Name: "Montevideo Standard Time"},
	{Name: "Bahia Standard Time"},
	{Name: "UTC-02"},
	{Name: "Azores Standard Time"},
	{Name: "Cape Verde Standard Time"},
	{Name: "Morocco Standard Time"},
	{Name: "UTC"},
	{Name: "GMT Standard Time"},
	{Name: "Greenwich Standard Time"},
	{Name: "W. Europe Standard Time"},
	{Name: "Central Europe Standard Time"},
	{Name: "Romance Standard Time"},
	{Name: "Central European Standard Time"},
	{Name: "W. Central Africa Standard Time"},
	{Name: "Namibia Standard Time"},
	{Name: "Jordan Standard Time"},
	{Name: "GTB Standard Time"},
	{Name: "Middle East Standard Time"},
	{Name: "Egypt Standard Time"},
	{Name: "Syria Standard Time"},
	{Name: "E. Europe Standard Time"},
	{Name: "South Africa Standard Time"},
	{Name: "FLE Standard Time"},
	{Name: "Turkey Standard Time"},
	{Name: "Israel Standard Time"},
	{Name: "Kaliningrad Standard Time"},
	{Name: "Libya Standard Time"},
	{Name: "Arabic Standard Time"},
	{Name: "Arab Standard Time"},
	{Name: "Belarus Standard Time"},
	{Name: "Russian Standard Time"},
	{Name: "E. Africa Standard Time"},
	{Name: "Iran Standard Time"},
	{Name: "Arabian Standard Time"},
	{Name: "Azerbaijan Standard Time"},
	{Name: "Russia Time Zone 3"},
	{Name: "Mauritius Standard Time"},
	{Name: "Georgian Standard Time"},
	{Name: "Caucasus Standard Time"},
	{Name: "Afghanistan Standard Time"},
	{Name: "West Asia Standard Time"},
	{Name: "Ekaterinburg Standard Time"},
	{Name: "Pakistan Standard Time"},
	{Name: "India Standard Time"},
	{Name: "Sri Lanka Standard Time"},
	{Name: "Nepal Standard Time"},
	{Name: "Central Asia Standard Time"},
	{Name: "Bangladesh Standard Time"},
	{Name: "N. Central Asia Standard Time"},
	{Name: "Myanmar Standard Time"},
	{Name: "SE Asia Standard Time"},
	{Name: "North Asia Standard Time"},
	{Name: "China Standard Time"},
	{Name: "North Asia East Standard Time"},
	{Name: "Singapore Standard Time"},
	{Name: "W. Australia Standard Time"},
	{Name: "Taipei Standard Time"},
	{Name: "Ulaanbaatar Standard Time"},
	{Name: "Tokyo Standard Time"},
	{Name: "Korea Standard Time"},
	{Name: "Yakutsk Standard Time"},
	{Name: "Cen. Australia Standard Time"},
	{Name: "AUS Central Standard Time"},
	{Name: "E. Australia Standard Time"},
	{Name: "AUS Eastern Standard Time"},
	{Name: "West Pacific Standard Time"},
	{Name: "Tasmania Standard Time"},
	{Name: "Magadan Standard Time"},
	{Name: "Vladivostok Standard Time"},
	{Name: "Russia Time Zone 10"},
	{Name: "Central Pacific Standard Time"},
	{Name: "Russia Time Zone 11"},
	{Name: "New Zealand Standard Time"},
	{Name: "UTC+12"},
	{Name: "Fiji Standard Time"},
	{Name: "Tonga Standard Time"},
	{Name: "Samoa Standard Time"},
	{Name: "Line Islands Standard Time"},
}

// Lookup returns the canonical-cased name for a case-insensitive match in
// the given table, or false if the name is unknown.
func Lookup(zones []Zone, name string) (string, bool) {
	for _, z := range zones {
		if strings.EqualFold(z.Name, name) {
			return z.Name, true
		}
	}
	return "", false
}

// Names returns the zone names in table order.
func Names(zones []Zone) []string {
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, z.Name)
	}
	return names
}
