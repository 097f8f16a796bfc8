package llm

import "fmt"

// BackendError reports a provider construction or call failure: a missing
// credential, an unreachable provider, or a provider-side rejection. It
// always carries the underlying cause for diagnostics.
type BackendError struct {
	Err      error
	Provider string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend: %v", e.Provider, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// ParseError reports that model output was not recoverable JSON even after
// fence stripping. Raw retains the original text so call sites can make
// their own fallback decisions; the parser never invents one.
type ParseError struct {
	Err error
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no JSON value in model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
