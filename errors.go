package letterbox

import "errors"

// Error categories. Every error returned by Service wraps exactly one.
var (
	// ErrValidation indicates missing or malformed input. No external call was made.
	ErrValidation = errors.New("invalid submission")

	// ErrConfiguration indicates missing or invalid service configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrStructure indicates the page does not have the expected shape.
	// It happens after the read and before any write.
	ErrStructure = errors.New("unexpected document structure")

	// ErrUpstream indicates a call to the hosting platform failed.
	ErrUpstream = errors.New("upstream request failed")
)

// ErrMissingToken is wrapped with ErrConfiguration when Submit runs without a token.
var ErrMissingToken = errors.New("github token is not configured")
