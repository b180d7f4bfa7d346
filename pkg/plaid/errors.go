package plaid

import (
	"errors"
	"fmt"
)

// Error represents a structured error returned by the Plaid API. Any request
// the API processed and explicitly rejected produces one of these; every field
// is optional and only populated when present in the response body.
type Error struct {
	DisplayMessage   string    `json:"display_message,omitempty"   yaml:"display_message,omitempty"`
	DocumentationURL string    `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
	ErrorCode        string    `json:"error_code,omitempty"        yaml:"error_code,omitempty"`
	ErrorMessage     string    `json:"error_message,omitempty"     yaml:"error_message,omitempty"`
	ErrorType        ErrorType `json:"error_type,omitempty"        yaml:"error_type,omitempty"`
	RequestID        string    `json:"request_id,omitempty"        yaml:"request_id,omitempty"`
	Status           int       `json:"status,omitempty"            yaml:"status,omitempty"`
	SuggestedAction  string    `json:"suggested_action,omitempty"  yaml:"suggested_action,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.ErrorMessage
	if msg == "" {
		msg = e.DisplayMessage
	}

	return fmt.Sprintf("plaid: request failed with code %q: %s", e.ErrorCode, msg)
}

// ErrorType enumerates the error taxonomy reported by the API in the
// error_type field.
type ErrorType string

// Error types returned by the API.
const (
	ErrorTypeInvalidRequest    ErrorType = "INVALID_REQUEST"
	ErrorTypeInvalidResult     ErrorType = "INVALID_RESULT"
	ErrorTypeInvalidInput      ErrorType = "INVALID_INPUT"
	ErrorTypeInstitutionError  ErrorType = "INSTITUTION_ERROR"
	ErrorTypeRateLimitExceeded ErrorType = "RATE_LIMIT_EXCEEDED"
	ErrorTypeAPIError          ErrorType = "API_ERROR"
	ErrorTypeItemError         ErrorType = "ITEM_ERROR"
	ErrorTypeAssetReportError  ErrorType = "ASSET_REPORT_ERROR"
	ErrorTypeRecaptchaError    ErrorType = "RECAPTCHA_ERROR"
	ErrorTypeOAuthError        ErrorType = "OAUTH_ERROR"
	ErrorTypePaymentError      ErrorType = "PAYMENT_ERROR"
	ErrorTypeBankTransferError ErrorType = "BANK_TRANSFER_ERROR"
)

// TransportError wraps a failure from the underlying HTTP transport
// (connection refused, timeout, TLS failure). The request never produced an
// interpretable response.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("http request failed: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError wraps a serialization or deserialization failure. It indicates a
// contract mismatch between client and server, or a corrupt payload; it is
// never substituted with a default value.
type ParseError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying encoding error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Static errors returned by constructors and the transactions pager.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrClientIDRequired = errors.New("client ID is required")
	ErrSecretRequired   = errors.New("secret is required")
	ErrNoMorePages      = errors.New("no more pages")
)

// AsError extracts an API *Error from err, if any.
func AsError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsInvalidRequest checks if the error is an INVALID_REQUEST API error.
func IsInvalidRequest(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.ErrorType == ErrorTypeInvalidRequest
}

// IsRateLimited checks if the error is a RATE_LIMIT_EXCEEDED API error.
func IsRateLimited(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.ErrorType == ErrorTypeRateLimitExceeded
}

// IsItemError checks if the error is an ITEM_ERROR API error.
func IsItemError(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.ErrorType == ErrorTypeItemError
}

// IsInstitutionError checks if the error is an INSTITUTION_ERROR API error.
func IsInstitutionError(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.ErrorType == ErrorTypeInstitutionError
}

// IsParseError checks if the error is a serialization or deserialization
// failure.
func IsParseError(err error) bool {
	parseErr := &ParseError{}

	return errors.As(err, &parseErr)
}

// IsTransportError checks if the error is a transport-level failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
