package panel

import "errors"

// Rejected actions are sentinel errors so the HTTP layer can tell a refused
// gesture (downgraded to a no-op response) from a storage fault.
var (
	ErrContactNotFound      = errors.New("contact not found")
	ErrEditInProgress       = errors.New("contact has an active edit session")
	ErrNoEditSession        = errors.New("contact has no active edit session")
	ErrConfirmationRequired = errors.New("contact deletion requires confirmation")
	ErrDragMismatch         = errors.New("drag payload does not match drop target")
	ErrBadIndex             = errors.New("reorder index does not resolve to a visible element")
)

// IsRejection reports whether err is one of the rejected-action sentinels
// rather than a real failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrEditInProgress) ||
		errors.Is(err, ErrNoEditSession) ||
		errors.Is(err, ErrConfirmationRequired) ||
		errors.Is(err, ErrDragMismatch) ||
		errors.Is(err, ErrBadIndex)
}
