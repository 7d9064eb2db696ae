// Package types defines the logbook entity types, the aggregated views
// returned by the store, the request/response shapes of the command
// surface, and the standard errors shared by all layers.
package types
