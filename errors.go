package pinfield

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSlotCount is returned when a slot count is not positive.
	ErrInvalidSlotCount = errors.New("slot count must be positive")

	// ErrInvalidDimension is returned for negative, zero or non-finite sizes.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidBlinkInterval is returned for a negative caret blink interval.
	ErrInvalidBlinkInterval = errors.New("blink interval must not be negative")

	// ErrAlreadyAttached is returned by Attach on a field that is already attached.
	ErrAlreadyAttached = errors.New("field already attached")

	// ErrNoScheduler is returned by Attach when the caret is enabled but no scheduler was provided.
	ErrNoScheduler = errors.New("no scheduler")
)

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s = %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
