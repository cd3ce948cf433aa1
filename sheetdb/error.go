package sheetdb

import "fmt"

type ErrorReason string

const (
	REASON_PERMISSION_DENIED     ErrorReason = "PERMISSION_DENIED"
	REASON_SPREADSHEET_NOT_FOUND ErrorReason = "SPREADSHEET_NOT_FOUND"
	REASON_UNKNOWN_TAB           ErrorReason = "UNKNOWN_TAB"
	REASON_UPSTREAM_FAILURE      ErrorReason = "UPSTREAM_FAILURE"
)

// Error is the typed failure for Sheets operations. TabName is set for
// REASON_UNKNOWN_TAB, StatusCode for anything that came back from the API.
// The HTTP layer decides what the end user sees; this type only keeps the
// facts.
type Error struct {
	Reason     ErrorReason
	Message    string
	TabName    string
	StatusCode int
	Cause      error
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

func NewPermissionDeniedError(cause error) *Error {
	return &Error{
		Reason:     REASON_PERMISSION_DENIED,
		Message:    "service account does not have access to the spreadsheet",
		StatusCode: 403,
		Cause:      cause,
	}
}

func NewSpreadsheetNotFoundError(cause error) *Error {
	return &Error{
		Reason:     REASON_SPREADSHEET_NOT_FOUND,
		Message:    "no spreadsheet exists with the configured id",
		StatusCode: 404,
		Cause:      cause,
	}
}

func NewUnknownTabError(tabName string, cause error) *Error {
	return &Error{
		Reason:     REASON_UNKNOWN_TAB,
		Message:    fmt.Sprintf("tab %q does not exist in the spreadsheet", tabName),
		TabName:    tabName,
		StatusCode: 400,
		Cause:      cause,
	}
}

func NewUpstreamFailureError(status int, cause error) *Error {
	return &Error{
		Reason:     REASON_UPSTREAM_FAILURE,
		Message:    fmt.Sprintf("sheets API call failed with status %d", status),
		StatusCode: status,
		Cause:      cause,
	}
}
