package normalizer

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptySentinel = errors.New("instance sentinel must not be empty")
	ErrNoTags        = errors.New("at least one metadata tag is required")
	ErrBlankTag      = errors.New("metadata tag must not be blank")
)

// Validator checks normalizer options before a processor is built.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks if options meet requirements.
func (v *Validator) Validate(opts Options) error {
	if opts.Sentinel == "" {
		return ErrEmptySentinel
	}

	if len(opts.Tags) == 0 {
		return ErrNoTags
	}

	for i, tag := range opts.Tags {
		// A blank tag would match every line.
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w at index %d", ErrBlankTag, i)
		}
	}

	return nil
}
