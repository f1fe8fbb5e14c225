package recommend

import "errors"

var (
	// ErrTransport means the model service was unreachable or timed out.
	ErrTransport = errors.New("recommendation service unreachable")

	// ErrMalformedResponse means the model answered, but the text failed to
	// parse into the required schema or the recommendation list was missing,
	// empty, or entirely invalid.
	ErrMalformedResponse = errors.New("malformed recommendation response")
)

// UserFacingMessage collapses every fetch failure into one short non-technical
// message. Internal classification is for logs only and never shown raw.
const UserFacingMessage = "Our phone advisor is busy right now. Please try again in a moment."
