package googleauth

import "fmt"

type ErrorReason string

const (
	REASON_BAD_PRIVATE_KEY   ErrorReason = "BAD_PRIVATE_KEY"
	REASON_SIGNING_FAILED    ErrorReason = "SIGNING_FAILED"
	REASON_EXCHANGE_FAILED   ErrorReason = "EXCHANGE_FAILED"
	REASON_EXCHANGE_REJECTED ErrorReason = "EXCHANGE_REJECTED"
)

// Error is the typed failure for the auth flow. UpstreamStatus and
// UpstreamBody are only set for REASON_EXCHANGE_REJECTED; they are meant for
// logging and never contain the assertion or the private key.
type Error struct {
	Reason         ErrorReason
	Message        string
	UpstreamStatus int
	UpstreamBody   string
	Cause          error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewBadPrivateKeyError(cause error) *Error {
	return &Error{
		Reason:  REASON_BAD_PRIVATE_KEY,
		Message: "private key could not be parsed as a PEM-encoded RSA key",
		Cause:   cause,
	}
}

func NewSigningFailedError(cause error) *Error {
	return &Error{
		Reason:  REASON_SIGNING_FAILED,
		Message: "failed to sign the service account assertion",
		Cause:   cause,
	}
}

func NewExchangeFailedError(cause error) *Error {
	return &Error{
		Reason:  REASON_EXCHANGE_FAILED,
		Message: "token exchange request failed",
		Cause:   cause,
	}
}

func NewExchangeRejectedError(status int, body string) *Error {
	return &Error{
		Reason:         REASON_EXCHANGE_REJECTED,
		Message:        fmt.Sprintf("token endpoint returned status %d", status),
		UpstreamStatus: status,
		UpstreamBody:   body,
	}
}
