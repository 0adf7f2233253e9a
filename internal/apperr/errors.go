package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotUnavailable: já existe agendamento ativo na mesma data/hora.
	ErrSlotUnavailable = errors.New("slot_unavailable")

	ErrDuplicateEmail     = errors.New("duplicate_email")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// ValidationError indica campo ausente ou inválido. Nunca chega ao banco.
type ValidationError struct {
	Field string
	Code  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Field)
}

func Missing(field string) error {
	return &ValidationError{Field: field, Code: "missing_field"}
}

func Invalid(field, code string) error {
	return &ValidationError{Field: field, Code: code}
}

// PersistenceError embrulha qualquer falha do banco (conexão, commit, constraint não classificada).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence mantém erros já classificados e embrulha o resto.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}

	var pe *PersistenceError
	if errors.Is(err, ErrSlotUnavailable) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrInvalidCredentials) ||
		IsValidation(err) ||
		errors.As(err, &pe) {
		return err
	}

	return &PersistenceError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
