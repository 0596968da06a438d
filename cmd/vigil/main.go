// Vigil assembles monitoring alert rules and autoscale policies from
// command-line expressions.
//
// It turns compact condition and scale expressions into complete rule
// documents, rendered locally as JSON or YAML or submitted to the
// management API:
//
//	# Assemble an alert rule
//	vigil alert create --name high-cpu --condition "Percentage CPU > 90 avg 5m" \
//	  --add-action "email ops@example.com"
//
//	# Assemble an autoscale rule
//	vigil autoscale rule create --condition "Percentage CPU > 70 avg 10m" \
//	  --scale "out 2"
//
//	# List accepted timezone names
//	vigil autoscale profile list-timezones
//
//	# Show version information
//	vigil version
package main

func main() {
	Execute()
}
