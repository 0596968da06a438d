/*
Package actions implements the token parsers behind vigil's rule-composition
flags: --condition, --scale, --add-action/--remove-action, and --receiver.

Each parser consumes an ordered token sequence (the raw argument split on
whitespace), resolves keywords through the lookup maps in
pkg/monitor/keywords and domain values through pkg/monitor/values, and either
sets a field on the invoking spec or appends to one of its accumulator lists.
Accumulators are append-only; N invocations yield N elements in invocation
order.

Parsers are pure and synchronous. All failures are user-input errors reported
at the point of parsing; arity and unrecognized-tag failures render with a
"usage error:" prefix.
*/
package actions
