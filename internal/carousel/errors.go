package carousel

import (
	"errors"
	"fmt"
)

// ErrMissingElement is wrapped by every ConfigError.
var ErrMissingElement = errors.New("missing carousel element")

// ErrNotInitialized is returned by operations that need Init to have run.
var ErrNotInitialized = errors.New("carousel not initialized")

// ConfigError reports a collaborator that was not supplied or is unusable.
type ConfigError struct {
	Element string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("carousel: missing %s", e.Element)
}

// Unwrap lets errors.Is match ErrMissingElement.
func (e *ConfigError) Unwrap() error {
	return ErrMissingElement
}
