package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a conflict with an existing entity
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a field-level validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound   = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound = &NotFoundError{Entity: "player"}
)

// Already Exists Errors
var (
	ErrTeamExists        = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrJerseyNumberTaken = &AlreadyExistsError{Entity: "jersey number", Context: "for an active player of this team"}
)

// Business Logic Errors
var (
	ErrInvalidAgeRange      = &ValidationError{Field: "age", Message: "min must be >= 0 and max must be >= min"}
	ErrInvalidPosition      = &ValidationError{Field: "position", Message: "must be one of PORTERO, DEFENSA, MEDIO, DELANTERO"}
	ErrBirthDateNotInPast   = &ValidationError{Field: "birth_date", Message: "must be in the past"}
	ErrFoundedOnInFuture    = &ValidationError{Field: "founded_on", Message: "cannot be in the future"}
	ErrUnsupportedCrestType = &ValidationError{Field: "crest", Message: "only image uploads are accepted"}
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "object storage is not configured: S3_BUCKET and S3_PUBLIC_BASE_URL are required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
