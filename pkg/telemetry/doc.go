// Package telemetry groups diagnostic facilities for the vigil CLI. Only
// structured logging is carried; a one-shot CLI exposes no metrics endpoint.
package telemetry
