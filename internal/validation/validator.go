package validation

import (
	"strings"
	"unicode/utf8"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength checks if a string does not exceed max characters.
// Length is counted in runes so multi-byte content is not over-penalized.
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// IsValidID checks if a record ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// TrimString trims leading and trailing whitespace
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}
