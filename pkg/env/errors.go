package env

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredConfig is matched by every MissingRequiredConfigError.
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// MissingRequiredConfigError reports a required variable that is unset or empty.
type MissingRequiredConfigError struct {
	Name string
}

func (e *MissingRequiredConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredConfig, e.Name)
}

func (e *MissingRequiredConfigError) Is(target error) bool {
	return target == ErrMissingRequiredConfig
}

// MissingKeys returns the names of every missing variable carried by err,
// in schema order. It returns nil when err holds none.
func MissingKeys(err error) []string {
	if err == nil {
		return nil
	}

	var names []string
	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case *MissingRequiredConfigError:
			names = append(names, x.Name)
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		}
	}
	walk(err)

	return names
}
