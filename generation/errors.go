package generation

import (
	"errors"
	"fmt"

	"github.com/giygas/protocols-api/planconfig"
)

// ErrValidation is shared with planconfig so callers check a single sentinel
var ErrValidation = planconfig.ErrValidation

var (
	ErrFamilyDisabled    = fmt.Errorf("%w: protocol family is not enabled", ErrValidation)
	ErrConsentRequired   = fmt.Errorf("%w: valid medical consent is required", ErrValidation)
	ErrUnsupportedFamily = fmt.Errorf("%w: unsupported protocol family", ErrValidation)

	// ErrMalformedResponse marks a generation response without a usable plan
	ErrMalformedResponse = errors.New("malformed generation response")
)

const maxErrorBody = 512

// ExternalServiceError reports a failed call to the plan generation service
type ExternalServiceError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ExternalServiceError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("generation service %s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("generation service %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("generation service %s failed", e.Endpoint)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// IsExternal reports whether err came from the generation service
func IsExternal(err error) bool {
	var ext *ExternalServiceError
	return errors.As(err, &ext)
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody]) + "..."
	}
	return string(b)
}
