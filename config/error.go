package config

import "fmt"

type ErrorReason string

const (
	REASON_MISSING_CREDENTIAL ErrorReason = "MISSING_CREDENTIAL"
)

type Error struct {
	Reason  ErrorReason
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func NewMissingCredentialError(envName string) *Error {
	return &Error{
		Reason:  REASON_MISSING_CREDENTIAL,
		Message: fmt.Sprintf("environment variable %s is not set", envName),
	}
}
