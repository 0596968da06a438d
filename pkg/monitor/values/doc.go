/*
Package values converts single command-line tokens into normalized domain
values: ISO8601-style durations, timezone display names, and UTC offsets.

The parsers here are pure: one token in, one normalized string or a typed
error out. They are composed by the higher-level token parsers in
pkg/monitor/actions and by commands that accept schedule flags directly.
*/
package values
