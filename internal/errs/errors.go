package errs

import (
	"errors"
	"fmt"
)

// ErrPolicyDenied marks a mutation the backend accepted without error but
// that affected zero rows: a row-level policy rejected it silently. It must
// never be reported as a success.
var ErrPolicyDenied = errors.New("database policy denied the operation")

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidLink      = errors.New("no video id could be extracted from the link")
	ErrThumbnailCapture = errors.New("failed to capture a thumbnail frame")
	ErrUpload           = errors.New("storage rejected the upload")
)

// ValidationError is raised before any network call fires.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s is required", e.Field)
}

func Validation(field string) error {
	return &ValidationError{Field: field}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type AuthKind int

const (
	AuthInvalidCredentials AuthKind = iota
	AuthEmailNotConfirmed
	AuthAlreadyRegistered
	AuthWeakPassword
	AuthConnectivity
)

type AuthError struct {
	Kind AuthKind
}

func (e *AuthError) Error() string {
	return e.Message()
}

// Message is the user-facing translation for each auth failure kind.
func (e *AuthError) Message() string {
	switch e.Kind {
	case AuthEmailNotConfirmed:
		return "E-mail não confirmado. Verifique sua caixa de entrada ou contate o suporte."
	case AuthAlreadyRegistered:
		return "Este e-mail já está cadastrado."
	case AuthWeakPassword:
		return "A senha deve ter no mínimo 6 caracteres."
	case AuthConnectivity:
		return "Erro de conexão. Tente novamente em instantes."
	default:
		return "E-mail ou senha incorretos."
	}
}

func Auth(kind AuthKind) error {
	return &AuthError{Kind: kind}
}

func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
