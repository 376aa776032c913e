package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrSubnetNotFound = fmt.Errorf("subnet %w", ErrNotFound)
	ErrInvalidInput   = errors.New("invalid input")
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("conflict")

	ErrInvalidNetwork         = fmt.Errorf("%w: invalid network format", ErrInvalidInput)
	ErrDuplicateNetwork       = fmt.Errorf("%w: duplicate network", ErrConflict)
	ErrNetworkInfoUnavailable = fmt.Errorf("%w: network info unavailable", ErrInvalidInput)
)
