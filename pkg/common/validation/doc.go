// Package validation provides common validation utilities for the gopermit library.
//
// All helpers return a *errors.ValidationError describing the module, the
// offending field, and the rejected value, so construction failures carry
// enough context to be actionable without a stack trace.
package validation
