package actions

import "strings"

// normalizeTokens re-splits a single-token sequence on spaces. Some shells
// (notably CMD.exe) eat the > character, so users quote the whole expression
// as one argument; this shim lets that form through. It is applied uniformly
// before any arity validation.
func normalizeTokens(tokens []string) []string {
	if len(tokens) == 1 {
		return strings.Split(tokens[0], " ")
	}
	return tokens
}
