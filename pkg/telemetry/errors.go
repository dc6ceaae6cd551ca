package telemetry

import "errors"

// Failure classes of the pipeline and its read surface. Per-item failures
// (ErrMalformedMessage, ErrHouseNotFound, ErrPolicyNotFound) are logged and
// skipped at their own scope; only ErrStoreUnavailable aborts a delivery.
var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrHouseNotFound    = errors.New("house not found")
	ErrFarmNotFound     = errors.New("farm not found")
	ErrPolicyNotFound   = errors.New("threshold policy not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
