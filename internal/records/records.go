// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package records defines the persisted record types managed by wicat: docker
// commands grouped by lifecycle phase and project stacks used for navigation.
// It also holds the field validators shared by the interactive add/edit flows.
package records

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrValidation is wrapped by every error caused by invalid user input.
var ErrValidation = errors.New("validation failed")

// Record is anything the JSON store can key by name.
type Record interface {
	Key() string
}

// ValidateName checks that a record name is present and has no whitespace,
// since names double as CLI arguments.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: name cannot contain spaces", ErrValidation)
	}
	return nil
}

// ValidateRequired checks that a free-text field is not blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

// ValidateOptionalToken accepts an empty value or a single word.
func ValidateOptionalToken(field, value string) error {
	v := strings.TrimSpace(value)
	if v != "" && strings.ContainsFunc(v, unicode.IsSpace) {
		return fmt.Errorf("%w: %s cannot contain spaces", ErrValidation, field)
	}
	return nil
}
