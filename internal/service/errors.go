package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidation      = errors.New("validation failed")
	ErrItemNotFound    = errors.New("item not found")
	ErrCorruptItemData = errors.New("stored item data is corrupt")
)
