package actions

import (
	"fmt"
	"sort"
	"strings"
)

// UsageError reports a token sequence with the wrong shape: too few tokens,
// a malformed pair, or an unrecognized type tag. The message states the
// expected form.
type UsageError struct {
	// Usage is the expected argument shape, e.g.
	// "--add-action TYPE KEY [ARGS]".
	Usage string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Usage
}

// LookupError reports a keyword token with no entry in its lookup map.
type LookupError struct {
	// Kind names the keyword class, e.g. "operator" or "aggregation".
	Kind string
	// Token is the offending input.
	Token string
	// Valid lists the accepted keywords.
	Valid []string
}

func (e *LookupError) Error() string {
	valid := append([]string(nil), e.Valid...)
	sort.Strings(valid)
	return fmt.Sprintf("unrecognized %s %q: expected one of {%s}", e.Kind, e.Token, strings.Join(valid, ","))
}

// InvalidThresholdError reports a threshold token that is not an integer.
type InvalidThresholdError struct {
	Token string
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid threshold %q: expected an integer", e.Token)
}

// UnrecognizedTypeError reports a receiver type tag outside the closed set.
type UnrecognizedTypeError struct {
	Tag string
}

func (e *UnrecognizedTypeError) Error() string {
	return fmt.Sprintf("usage error: the type %q is not recognizable", e.Tag)
}

// ConstructionError reports a receiver that could not be built from its
// positional tokens, either because the arity was wrong or because the
// variant's own validation rejected a value. The inner error is preserved.
type ConstructionError struct {
	Tag    string
	Tokens []string
	Err    error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("usage error: failed to parse %q as object of type %q: %v",
		strings.Join(e.Tokens, " "), e.Tag, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
