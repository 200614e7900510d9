package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrValidation marks input rejected by a local check outside the struct tags.
var ErrValidation = errors.New("dados inválidos")

// Validate checks payload against its validate tags.
func Validate(payload interface{}) error {
	return validate.Struct(payload)
}

// IsValidationError reports whether err is a local input rejection rather than a backend failure.
func IsValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors) || errors.Is(err, ErrValidation)
}

// ValidationMessages turns a validation error into messages fit for the operator.
// Any other error yields its own text.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório.", fe.Field())
	case "email":
		return fmt.Sprintf("%s deve ser um email válido.", fe.Field())
	case "min":
		return fmt.Sprintf("%s deve ter pelo menos %s caracteres.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres.", fe.Field(), fe.Param())
	case "eqfield":
		return "As novas senhas não coincidem!"
	case "datetime":
		return fmt.Sprintf("%s deve estar no formato AAAA-MM-DD.", fe.Field())
	default:
		return fmt.Sprintf("%s é inválido (%s).", fe.Field(), fe.Tag())
	}
}
