package lifecycle

import "errors"

// Lifecycle error sentinels. Unknown ids surface the store's
// ErrRequestNotFound unchanged. All failures here are deterministic and
// local; there is no transient class and nothing is retried.
var (
	ErrInvalidTransition = errors.New("operation is not legal from the request's current status")
	ErrInvalidRating     = errors.New("rating must be between 1.0 and 5.0")
)
