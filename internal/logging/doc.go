// Package logging assembles structured slog loggers and formatting helpers used
// across cinepick.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and stamps every record with the recommendation session ID.
// Context helpers tag catalog import lines with their run ID. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Interactive commands share the terminal with prompts, so NewFromConfig sends
// log lines to the log file when one is configured and only falls back to
// stderr otherwise.
package logging
