package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrNameTooLong       = errors.New("name is too long")
	ErrInvalidExpiryDate = errors.New("expiry date must be a YYYY-MM-DD date")
	ErrExpiryDateTooFar  = errors.New("expiry date is too far in the future")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidItemID     = errors.New("invalid item ID")
)
