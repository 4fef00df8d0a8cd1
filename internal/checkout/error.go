package checkout

import "errors"

var (
	// ErrIdentityRequired blocks the whole checkout flow, not just one
	// submission: without the bot handoff there is nobody to sell to.
	ErrIdentityRequired = errors.New("user identity required")

	ErrEmptyCart              = errors.New("cart is empty")
	ErrOrderPersistenceFailed = errors.New("failed to persist order")
	ErrSubmissionInFlight     = errors.New("a submission is already in progress for this session")
)

// ValidationError names the form field the user has to fix.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "required field is missing: " + e.Field
}
