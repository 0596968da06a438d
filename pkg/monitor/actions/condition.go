package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stratus-ops/vigil/pkg/monitor/keywords"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
	"github.com/stratus-ops/vigil/pkg/monitor/values"
)

// ParseCondition parses an alert condition expression of the form
//
//	METRIC {>,>=,<,<=} THRESHOLD {avg,min,max,total,last} DURATION
//
// The last four tokens have fixed roles; everything before them is rejoined
// with spaces to form the metric name, which may itself contain spaces.
// The operator lookup is case-sensitive, the aggregation lookup is not.
//
// As a convenience, when the spec's description is unset it is defaulted to
// the original expression before any re-splitting. The condition's resource
// URI is left unset for the binding stage.
func ParseCondition(spec *AlertRuleSpec, tokens []string, option string) error {
	if spec.Description == "" {
		spec.Description = strings.Join(tokens, " ")
	}
	tokens = normalizeTokens(tokens)
	if len(tokens) < 5 {
		return &UsageError{Usage: fmt.Sprintf("%s METRIC {>,>=,<,<=} THRESHOLD {avg,min,max,total,last} DURATION", option)}
	}

	metricName := strings.Join(tokens[:len(tokens)-4], " ")
	tail := tokens[len(tokens)-4:]

	operators := keywords.OperatorMap()
	operator, ok := operators[tail[0]]
	if !ok {
		return &LookupError{Kind: "operator", Token: tail[0], Valid: mapKeys(operators)}
	}

	threshold, err := strconv.Atoi(tail[1])
	if err != nil {
		return &InvalidThresholdError{Token: tail[1]}
	}

	aggregations := keywords.AggregationMap()
	aggregation, ok := aggregations[strings.ToLower(tail[2])]
	if !ok {
		return &LookupError{Kind: "aggregation", Token: tail[2], Valid: mapKeys(aggregations)}
	}

	window, err := values.ParsePeriod(tail[3])
	if err != nil {
		return err
	}

	spec.Condition = &models.ThresholdRuleCondition{
		Operator:  operator,
		Threshold: threshold,
		DataSource: models.RuleMetricDataSource{
			MetricName: metricName, // resource URI bound later
		},
		WindowSize:      window,
		TimeAggregation: aggregation,
	}
	return nil
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
