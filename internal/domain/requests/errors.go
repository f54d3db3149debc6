package requests

import "errors"

var (
	// ErrNotFound means the request id does not resolve to a stored record.
	ErrNotFound = errors.New("design request not found")

	// ErrPermissionDenied means the store rejected the write. Kept distinct
	// from ErrNotFound so callers can render an actionable message.
	ErrPermissionDenied = errors.New("permission denied by store")

	// ErrPreconditionFailed means a delete was attempted while the record's
	// status is not completed.
	ErrPreconditionFailed = errors.New("request must be completed before deletion")
)
