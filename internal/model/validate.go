package model

import (
	"unicode/utf8"

	"homestay/internal/errors"
)

// maxLength counts characters, not bytes, matching the varchar column sizes.
func maxLength(name, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return errors.Validation("%s exceeds maximum length of %d", name, max)
	}
	return nil
}

// inRangeExclusive rejects values at or beyond the bounds.
func inRangeExclusive(name string, value, min, max float64) error {
	if !(min < value && value < max) {
		return errors.Validation("%s must be between %g and %g", name, min, max)
	}
	return nil
}
