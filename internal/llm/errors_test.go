package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassify_GoogleAPIStatusCodes(t *testing.T) {
	tests := []struct {
		code    int
		message string
		want    ErrorCode
	}{
		{401, "", CodeInvalidCredential},
		{403, "", CodeInvalidCredential},
		{429, "rate limit exceeded", CodeRateLimited},
		{429, "quota exceeded for project", CodeQuotaExceeded},
		{500, "", CodeOverloaded},
		{503, "", CodeOverloaded},
	}

	for _, tc := range tests {
		pe := Classify(&googleapi.Error{Code: tc.code, Message: tc.message})
		assert.Equal(t, tc.want, pe.Code, "status %d %q", tc.code, tc.message)
	}
}

func TestClassify_MessageHeuristics(t *testing.T) {
	assert.Equal(t, CodeInvalidCredential, Classify(errors.New("API key not valid")).Code)
	assert.Equal(t, CodeSafetyBlocked, Classify(errors.New("response blocked by safety settings")).Code)
	assert.Equal(t, CodeOverloaded, Classify(errors.New("service unavailable")).Code)
	assert.Equal(t, CodeMalformedResponse, Classify(errors.New("something unexpected")).Code)
}

func TestClassify_PassesThroughProviderError(t *testing.T) {
	orig := &ProviderError{Code: CodeQuotaExceeded, Message: "quota"}

	assert.Same(t, orig, Classify(orig))
}

func TestRecoverable(t *testing.T) {
	assert.True(t, (&ProviderError{Code: CodeRateLimited}).Recoverable())
	assert.True(t, (&ProviderError{Code: CodeOverloaded}).Recoverable())
	assert.False(t, (&ProviderError{Code: CodeInvalidCredential}).Recoverable())
	assert.False(t, (&ProviderError{Code: CodeQuotaExceeded}).Recoverable())
	assert.False(t, (&ProviderError{Code: CodeSafetyBlocked}).Recoverable())
}

func TestWithRetry_RecoverableRetries(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return &ProviderError{Code: CodeOverloaded, Message: "busy"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_PermanentFailsFast(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return &ProviderError{Code: CodeInvalidCredential, Message: "bad key"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, CodeInvalidCredential, pe.Code)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		return &ProviderError{Code: CodeRateLimited, Message: "slow down"}
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, CodeRateLimited, pe.Code)
}
