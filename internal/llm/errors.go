package llm

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// ErrorCode classifies a provider failure
type ErrorCode string

// Provider error codes. Recoverable codes are worth a bounded retry;
// the rest must fail fast.
const (
	CodeInvalidCredential ErrorCode = "invalid_credential"
	CodeRateLimited       ErrorCode = "rate_limited"
	CodeQuotaExceeded     ErrorCode = "quota_exceeded"
	CodeOverloaded        ErrorCode = "overloaded"
	CodeMalformedResponse ErrorCode = "malformed_response"
	CodeSafetyBlocked     ErrorCode = "safety_blocked"
)

// ProviderError is a classified failure from the LLM provider
type ProviderError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error (%s): %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error (%s): %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Recoverable reports whether a retry could plausibly succeed.
func (e *ProviderError) Recoverable() bool {
	return e.Code == CodeRateLimited || e.Code == CodeOverloaded
}

// Classify maps a raw provider error onto the error-code taxonomy.
// Already-classified errors pass through unchanged.
func Classify(err error) *ProviderError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401, 403:
			return &ProviderError{Code: CodeInvalidCredential, Message: "credential rejected by provider", Cause: err}
		case 429:
			if strings.Contains(strings.ToLower(gerr.Message), "quota") {
				return &ProviderError{Code: CodeQuotaExceeded, Message: "provider quota exhausted", Cause: err}
			}
			return &ProviderError{Code: CodeRateLimited, Message: "provider rate limit hit", Cause: err}
		case 500, 502, 503, 504:
			return &ProviderError{Code: CodeOverloaded, Message: "provider temporarily overloaded", Cause: err}
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "permission"):
		return &ProviderError{Code: CodeInvalidCredential, Message: "credential rejected by provider", Cause: err}
	case strings.Contains(msg, "quota"):
		return &ProviderError{Code: CodeQuotaExceeded, Message: "provider quota exhausted", Cause: err}
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource exhausted"):
		return &ProviderError{Code: CodeRateLimited, Message: "provider rate limit hit", Cause: err}
	case strings.Contains(msg, "safety") || strings.Contains(msg, "blocked"):
		return &ProviderError{Code: CodeSafetyBlocked, Message: "response blocked by safety filter", Cause: err}
	case strings.Contains(msg, "unavailable") || strings.Contains(msg, "overloaded") || strings.Contains(msg, "deadline"):
		return &ProviderError{Code: CodeOverloaded, Message: "provider temporarily overloaded", Cause: err}
	default:
		return &ProviderError{Code: CodeMalformedResponse, Message: "unexpected provider failure", Cause: err}
	}
}
