// Package logbook holds module-level metadata shared by the CLI and API.
package logbook

const Version = "0.1.0"
