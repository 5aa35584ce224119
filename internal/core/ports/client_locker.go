package ports

import (
	"errors"
)

// ErrLockBusy is returned when the per-client serialization lock cannot be
// acquired within the configured wait. Callers surface it as a retryable
// busy condition instead of queueing indefinitely.
var ErrLockBusy = errors.New("client is busy, try again")
