package service

import "errors"

// Sentinel errors returned by the dispatch core. Handlers match them with
// errors.Is to pick the response code; nothing here is retried internally.
var (
	// ErrReportNotFound means the referenced report id does not exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidState means the operation is illegal for the report's current
	// lifecycle state, e.g. mutating a resolved report.
	ErrInvalidState = errors.New("operation not allowed in current report state")

	// ErrNoSelection means a dispatch was requested with no units selected.
	ErrNoSelection = errors.New("no units selected")

	// ErrStoreUnavailable means the underlying store call failed or timed out.
	// This is the only class the caller may reasonably retry.
	ErrStoreUnavailable = errors.New("report store unavailable")
)
