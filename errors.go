package filtermodel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration reports a model that can't be built as
	// configured: an empty identifier, an empty operator set, a default
	// operator outside the set, or a malformed wildcard.
	ErrInvalidConfiguration = errors.New("invalid condition configuration")
	// ErrOperatorNotAllowed reports an operator outside the model's
	// allowed set. It wraps ErrInvalidConfiguration.
	ErrOperatorNotAllowed = fmt.Errorf("%w: operator not allowed", ErrInvalidConfiguration)
	// ErrLocked reports a mutation attempted on a locked model.
	ErrLocked = errors.New("condition model is locked")
)
