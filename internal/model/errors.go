package model

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrEmptyLineItems      = errors.New("document has no line items")
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrEmptyDocuments      = errors.New("intake has no documents")
	ErrBuilderConsumed     = errors.New("builder already produced a value")
)

// MissingFieldError reports a required field that was never given to a builder.
type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field `%s`", e.Record, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// NewMissingFieldError creates a new missing field error
func NewMissingFieldError(record, field string) *MissingFieldError {
	return &MissingFieldError{
		Record: record,
		Field:  field,
	}
}

// ValidationError represents a business rule failure
type ValidationError struct {
	Field    string
	Value    interface{}
	Rule     string
	Message  string
	Accepted []string
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(err error, field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
		Err:     err,
	}
}

func newInvalidCurrencyError(moneda string, accepted []string) *ValidationError {
	e := NewValidationError(ErrInvalidCurrency, "moneda", moneda, "currency",
		fmt.Sprintf("%q is not an accepted currency, accepted currencies are %q", moneda, accepted))
	e.Accepted = accepted
	return e
}

func newInvalidDocumentTypeError(tip string, accepted []string) *ValidationError {
	e := NewValidationError(ErrInvalidDocumentType, "tip_document", tip, "document_type",
		fmt.Sprintf("%q is not an accepted document type, accepted document types are %q", tip, accepted))
	e.Accepted = accepted
	return e
}

func newEmptyLineItemsError() *ValidationError {
	return NewValidationError(ErrEmptyLineItems, "items", nil, "non_empty",
		"the document has no lines (`items` contains no element)")
}

func newEmptyDocumentsError() *ValidationError {
	return NewValidationError(ErrEmptyDocuments, "documente", nil, "non_empty",
		"the supplier intake has no documents (`documente` contains no element)")
}
