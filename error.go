package beacon

import "errors"

var (
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrInvalidLevel       = errors.New("invalid level")
)
