package expiry

import (
	"errors"
	"fmt"
)

// ErrMalformedExpiryDate is returned when an item's expiry date is not a
// valid YYYY-MM-DD calendar date. The classifier never guesses a status for
// such items.
var ErrMalformedExpiryDate = errors.New("malformed expiry date")

// MalformedDateError identifies the item and value that failed to parse.
type MalformedDateError struct {
	ItemID int64
	Value  string
	Err    error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("%s %q for item %d: %v", ErrMalformedExpiryDate, e.Value, e.ItemID, e.Err)
}

func (e *MalformedDateError) Unwrap() []error {
	return []error{ErrMalformedExpiryDate, e.Err}
}
