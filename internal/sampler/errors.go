package sampler

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports a metric category the host could not supply.
var ErrUnavailable = errors.New("metric unavailable")

func errOrEmpty(err error, what string) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("%s: %w", what, ErrUnavailable)
}
