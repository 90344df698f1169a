// Copyright (c) 2026 Tigerlilly. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// violation messages before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. A failed chain yields a 400 whose message is the full list of
// violations, mirroring the declared field-shape contract of each endpoint.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/tigerlilly/api/internal/platform/apperr"
)

// Validator collects field-level violation messages via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	violations []string
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return v
}

// MinLen fails if the value is non-empty and its Unicode character count is
// below min. Empty values are the domain of Required.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if value != "" && utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("must be at least %d characters", min))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "must be a valid email address")
	}
	return v
}

// Positive fails unless the value is greater than zero.
func (v *Validator) Positive(field string, value int) *Validator {
	if value <= 0 {
		v.add(field, "must be positive")
	}
	return v
}

// Custom adds a violation with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("keywords", len(keywords) == 0, "requires at least one keyword")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a 400 [apperr.AppError] carrying every violation message, or
// nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return apperr.Validation(v.violations...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.violations) > 0
}

// add appends a "field message" violation to the internal list.
func (v *Validator) add(field, message string) {
	v.violations = append(v.violations, field+" "+message)
}
