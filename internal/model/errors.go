package model

import (
	"errors"
	"fmt"
)

// NotFoundError reports a failed entity lookup.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFoundError constructs NotFoundError.
func NewNotFoundError(entity, id string) NotFoundError {
	return NotFoundError{Entity: entity, ID: id}
}

// IsNotFound checks if an error is a NotFoundError (including wrapped errors).
func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// DuplicateEmailError reports a registration conflict on an existing email.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// NewDuplicateEmailError constructs DuplicateEmailError.
func NewDuplicateEmailError(email string) DuplicateEmailError {
	return DuplicateEmailError{Email: email}
}

// IsDuplicateEmail checks if an error is a DuplicateEmailError.
func IsDuplicateEmail(err error) bool {
	var de DuplicateEmailError
	return errors.As(err, &de)
}

// InvalidCredentialsError reports a login mismatch. It carries no detail
// about which part of the credentials failed.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string { return "invalid credentials" }

// NewInvalidCredentialsError constructs InvalidCredentialsError.
func NewInvalidCredentialsError() InvalidCredentialsError { return InvalidCredentialsError{} }

// IsInvalidCredentials checks if an error is an InvalidCredentialsError.
func IsInvalidCredentials(err error) bool {
	var ie InvalidCredentialsError
	return errors.As(err, &ie)
}

// MissingFieldError reports a required operation input that was absent or
// unusable.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// NewMissingFieldError constructs MissingFieldError.
func NewMissingFieldError(field string) MissingFieldError {
	return MissingFieldError{Field: field}
}

// IsMissingField checks if an error is a MissingFieldError.
func IsMissingField(err error) bool {
	var me MissingFieldError
	return errors.As(err, &me)
}

// ConsistencyFaultError reports that a mirrored counterpart record could not
// be located during an update expected to affect both copies. The half that
// was found has already been written when this is returned.
type ConsistencyFaultError struct {
	Entity string
	ID     string
	Detail string
}

func (e ConsistencyFaultError) Error() string {
	return fmt.Sprintf("consistency fault on %s %s: %s", e.Entity, e.ID, e.Detail)
}

// NewConsistencyFaultError constructs ConsistencyFaultError.
func NewConsistencyFaultError(entity, id, detail string) ConsistencyFaultError {
	return ConsistencyFaultError{Entity: entity, ID: id, Detail: detail}
}

// IsConsistencyFault checks if an error is a ConsistencyFaultError.
func IsConsistencyFault(err error) bool {
	var ce ConsistencyFaultError
	return errors.As(err, &ce)
}
