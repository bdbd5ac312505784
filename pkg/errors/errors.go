// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// ErrCodeValidation indicates a building or machine was declared with
	// out-of-range physical attributes (footprint, slots, cycle time, power).
	ErrCodeValidation ErrorCode = "VALIDATION"
	// ErrCodeInvalidShape indicates a recipe was handed a value of the wrong
	// kind, such as a nil machine or an unnamed item.
	ErrCodeInvalidShape ErrorCode = "INVALID_SHAPE"
	// ErrCodeInvalidValue indicates a recipe value of the right kind but out of
	// range: empty output, non-positive quantity, unresolved or negative timing.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
	// ErrCodeUnresolvedReference indicates a catalog definition names an item
	// or machine that is not registered.
	ErrCodeUnresolvedReference ErrorCode = "UNRESOLVED_REFERENCE"
)

// StructuredError carries a Code callers branch on, a message for humans, an
// optional cause and a context map (machine, item, field, definition ...).
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext is New with a context map naming the entity and field
// involved.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	e := New(code, message)
	e.Context = context
	return e
}

// Wrap classifies cause under code.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	e := New(code, message)
	e.Cause = cause
	return e
}

// WrapWithContext is Wrap with a context map.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	e := Wrap(code, message, cause)
	e.Context = context
	return e
}

// CodeOf returns the code of the outermost StructuredError in err's chain,
// or an empty code when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether any StructuredError in err's chain carries code.
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		var se *StructuredError
		if !stderrors.As(err, &se) {
			return false
		}
		if se.Code == code {
			return true
		}
		err = se.Cause
	}
	return false
}
