package actions

import (
	"fmt"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

// receiverConstructor builds one receiver variant from positional tokens.
type receiverConstructor func(args []string) (models.Receiver, error)

// receiverConstructors is the closed tag-to-constructor table for action
// group receivers. Unknown tags are rejected before any construction is
// attempted.
func receiverConstructors() map[string]receiverConstructor {
	return map[string]receiverConstructor{
		"email": func(args []string) (models.Receiver, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("email receiver expects NAME ADDRESS, got %d arguments", len(args))
			}
			return models.NewEmailReceiver(args[0], args[1])
		},
		"sms": func(args []string) (models.Receiver, error) {
			if len(args) != 3 {
				return nil, fmt.Errorf("sms receiver expects NAME COUNTRY_CODE PHONE_NUMBER, got %d arguments", len(args))
			}
			return models.NewSmsReceiver(args[0], args[1], args[2])
		},
		"webhook": func(args []string) (models.Receiver, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("webhook receiver expects NAME URI, got %d arguments", len(args))
			}
			return models.NewWebhookReceiver(args[0], args[1])
		},
	}
}

// ParseReceiver dispatches on the leading type tag ({email,sms,webhook}) and
// constructs the matching receiver variant from the trailing positional
// tokens, appending it to the spec's receiver accumulator. Construction
// failures are wrapped with the raw tokens and the attempted tag, preserving
// the inner message.
func ParseReceiver(spec *ActionGroupSpec, tokens []string, option string) error {
	if len(tokens) == 0 {
		return &UsageError{Usage: fmt.Sprintf("%s TYPE NAME [ARGS]", option)}
	}
	tag := tokens[0]
	construct, ok := receiverConstructors()[tag]
	if !ok {
		return &UnrecognizedTypeError{Tag: tag}
	}
	receiver, err := construct(tokens[1:])
	if err != nil {
		return &ConstructionError{Tag: tag, Tokens: tokens, Err: err}
	}
	spec.Receivers = append(spec.Receivers, receiver)
	return nil
}
