package dataframe

import (
	"github.com/pkg/errors"
)

// ErrInvalidInput is the single error kind this package produces. Every
// failure wraps it with the offending column name or value, so callers can
// match with errors.Is regardless of which operation raised it.
var ErrInvalidInput = errors.New("invalid input")

func errMissingColumn(name string) error {
	return errors.Wrapf(ErrInvalidInput, "column %q does not exist", name)
}
