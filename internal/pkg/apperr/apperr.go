// Package apperr is the failure model shared by every service operation:
// a category, a human-readable message, and (for InvalidParameter) the
// ordered list of field-level violations collected during validation.
package apperr

import "strings"

type Category string

const (
	BadInput           Category = "BAD_INPUT"
	InvalidParameter   Category = "INVALID_PARAMETER"
	NameAlreadyExists  Category = "NAME_ALREADY_EXISTS"
	EmailAlreadyExists Category = "EMAIL_ALREADY_EXISTS"
	GeneralError       Category = "GENERAL_ERROR"
	NotFound           Category = "NOT_FOUND"
)

// FieldCode identifies the rule a single input field violated.
type FieldCode string

const (
	CodeInvalidName        FieldCode = "invalid-name"
	CodeInvalidEmail       FieldCode = "invalid-email"
	CodeInvalidPassword    FieldCode = "invalid-password"
	CodeInvalidType        FieldCode = "invalid-type"
	CodeInvalidAmount      FieldCode = "invalid-amount"
	CodeInvalidPrice       FieldCode = "invalid-price"
	CodeInvalidMessage     FieldCode = "invalid-message"
	CodeInvalidStartDate   FieldCode = "invalid-start-date"
	CodeInvalidEndDate     FieldCode = "invalid-end-date"
	CodeEndBeforeStart     FieldCode = "end-before-start"
	CodeStartAlreadyPassed FieldCode = "start-already-passed"
)

type FieldError struct {
	Field string    `json:"field"`
	Code  FieldCode `json:"code"`
}

type Error struct {
	Category Category     `json:"category"`
	Message  string       `json:"message"`
	Fields   []FieldError `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return string(e.Category) + ": " + e.Message
	}
	codes := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		codes[i] = string(f.Code)
	}
	return string(e.Category) + ": " + e.Message + " [" + strings.Join(codes, ", ") + "]"
}

func New(category Category, msg string) *Error {
	return &Error{Category: category, Message: msg}
}

func Invalid(msg string, fields []FieldError) *Error {
	return &Error{Category: InvalidParameter, Message: msg, Fields: fields}
}

// Collector batches field-rule violations so a caller can report every
// invalid field of one submitted entity in a single failure.
type Collector struct {
	fields []FieldError
}

func (c *Collector) Add(field string, code FieldCode) {
	c.fields = append(c.fields, FieldError{Field: field, Code: code})
}

func (c *Collector) Empty() bool {
	return len(c.fields) == 0
}

// Err returns nil when no violations were recorded.
func (c *Collector) Err(msg string) error {
	if len(c.fields) == 0 {
		return nil
	}
	return Invalid(msg, c.fields)
}
