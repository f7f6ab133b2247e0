// Package error defines domain-specific errors for the Pensive application.
package error

import "errors"

// Advisor domain errors.
var (
	// ErrAdvisorNotConfigured is returned when no LLM provider credential is set.
	ErrAdvisorNotConfigured = errors.New("OpenAI API key is not configured. Set OPENAI_API_KEY in your environment")
)
