package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrNameTooLong      = errors.New("name is too long")
	ErrEmptyToken       = errors.New("token is required")
	ErrTokenTooLong     = errors.New("token is too long")
	ErrLabelTooLong     = errors.New("credential label is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
