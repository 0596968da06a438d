// Package client submits assembled monitoring documents to the management
// API. Every request carries a generated client request ID so server-side
// logs can be correlated with a CLI invocation.
package client
