package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Precondition errors: rejected before any network call
	ErrNoSources         = fmt.Errorf("no sources uploaded")
	ErrEmptyDeck         = fmt.Errorf("deck has no items")
	ErrBusy              = fmt.Errorf("request already in flight")
	ErrUnsupportedSource = fmt.Errorf("unsupported source file type")
	ErrEmptySource       = fmt.Errorf("source file has no content")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrMalformedResponse  = fmt.Errorf("malformed response")
	ErrArtifactNotFound   = fmt.Errorf("artifact not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
