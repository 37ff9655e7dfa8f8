package llm

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned empty content or content
// that does not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable or not
// configured.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the report was cut off at the MaxTokens
// limit. Content holds what was produced before the cut.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrStreamInterrupted indicates a stream failed after some text had
// already been handed to the caller. It is never retried because the
// caller has shown the partial text.
type ErrStreamInterrupted struct {
	Partial string
	Err     error
}

func (e *ErrStreamInterrupted) Error() string {
	return fmt.Sprintf("stream interrupted after %d characters: %v", utf8.RuneCountInString(e.Partial), e.Err)
}

func (e *ErrStreamInterrupted) Unwrap() error { return e.Err }
