package commands

import (
	"freightdesk/internal/core/domain/model/kernel"
)

// BulkResult reports the outcome of a bulk mutation: the ids that succeeded
// and, for each failed id, why it failed. Successes are never rolled back when
// other ids fail; the backend offers no multi-record atomicity, so bulk
// operations are best-effort and fully reported. Retries are the caller's
// responsibility, driven by Failed.
//
// Failed is keyed by the raw requested id, so ids that don't even parse as
// UUIDs are reported under the form the caller sent.
type BulkResult struct {
	Succeeded []kernel.UUID
	Failed    map[string]error
}

// newBulkResult creates an empty result ready to collect outcomes.
func newBulkResult() BulkResult {
	return BulkResult{
		Succeeded: make([]kernel.UUID, 0),
		Failed:    make(map[string]error),
	}
}

// SucceededCount returns how many ids succeeded.
func (r BulkResult) SucceededCount() int {
	return len(r.Succeeded)
}

// FailedCount returns how many ids failed.
func (r BulkResult) FailedCount() int {
	return len(r.Failed)
}
