package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrConfiguration = errors.New("invalid configuration")
	ErrExhausted     = errors.New("no available IDs")
)

// ConfigError represents an invalid area or category definition. It is
// fatal: a registry that fails validation is never partially usable.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// ExhaustedError reports that a category has no sequence numbers left.
// It is file-scoped: the planner records a warning and moves on.
type ExhaustedError struct {
	Category int
	Ceiling  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("category %d has reached its maximum of .%02d items", e.Category, e.Ceiling)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}
