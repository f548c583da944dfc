package planconfig

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every recoverable rejection in this package
var ErrValidation = errors.New("validation failed")

var (
	ErrMaxSelections     = fmt.Errorf("%w: maximum number of ailment selections reached", ErrValidation)
	ErrInvalidSetting    = fmt.Errorf("%w: invalid setting", ErrValidation)
	ErrUnknownFamily     = fmt.Errorf("%w: protocol family is not consent gated", ErrValidation)
	ErrConsentPending    = fmt.Errorf("%w: another consent request is pending", ErrValidation)
	ErrNoPendingConsent  = fmt.Errorf("%w: no consent request is pending", ErrValidation)
	ErrIncompleteConsent = fmt.Errorf("%w: every consent acknowledgement is required", ErrValidation)
)
