// Package logging configures the structured logger the vigil command uses
// for diagnostics. Logs go to stderr; stdout is reserved for rendered
// documents.
package logging
