package llm

import (
	"fmt"
	"strings"
)

// Kind classifies a failed generation call. Every kind is terminal for the
// current submission; retry is always a manual user action.
type Kind int

const (
	// InvalidStructure: the model returned text that does not parse into the
	// declared output schema.
	InvalidStructure Kind = iota
	// SafetyBlocked: generation stopped by the safety filter.
	SafetyBlocked
	// RecitationBlocked: generation stopped for potential recitation.
	RecitationBlocked
	// TruncatedOutput: generation hit the maximum token limit.
	TruncatedOutput
	// StoppedOther: generation stopped with some other named reason.
	StoppedOther
	// EmptyResponse: no text and no stop reason.
	EmptyResponse
	// InvalidAPIKey, QuotaExceeded, ServiceInternal, MalformedRequest,
	// Network, Unclassified: transport/service failures.
	InvalidAPIKey
	QuotaExceeded
	ServiceInternal
	MalformedRequest
	Network
	Unclassified
)

// Error is a classified generation failure.
type Error struct {
	Kind       Kind
	Message    string
	Reason     string   // raw stop reason, set for StoppedOther
	Categories []string // blocked safety categories, set for SafetyBlocked
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// classifyStop maps a finish reason with no text into an *Error.
func classifyStop(finishReason string, ratings []safetyRating) *Error {
	switch finishReason {
	case "SAFETY":
		var cats []string
		for _, r := range ratings {
			if r.Blocked {
				cats = append(cats, strings.TrimPrefix(r.Category, "HARM_CATEGORY_"))
			}
		}
		label := "Unknown"
		if len(cats) > 0 {
			label = strings.Join(cats, ", ")
		}
		err := newError(SafetyBlocked,
			"Request blocked for safety reasons. Blocked categories: %s. Please adjust your input.", label)
		err.Categories = cats
		return err
	case "RECITATION":
		return newError(RecitationBlocked,
			"Request blocked due to potential recitation. The model's response would have been too similar to a source on the web. Please try a different prompt.")
	case "MAX_TOKENS":
		return newError(TruncatedOutput,
			"The response was stopped because it reached the maximum token limit. Try asking for a shorter response.")
	case "":
		return newError(EmptyResponse,
			"Received an empty response from the API. This could be due to content filters or a lack of a specific answer from the model.")
	default:
		err := newError(StoppedOther,
			"The request was stopped for the following reason: %s. Please adjust your input and try again.", finishReason)
		err.Reason = finishReason
		return err
	}
}

// classifyAPIError turns a service error into an *Error. The structured
// status code from the error body is the primary signal; lower-cased message
// substrings are the fallback branch for errors that carry no code.
func classifyAPIError(status string, message string) *Error {
	switch status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return invalidKeyError()
	case "RESOURCE_EXHAUSTED":
		return quotaError()
	case "INTERNAL", "UNAVAILABLE":
		return internalError()
	case "INVALID_ARGUMENT", "FAILED_PRECONDITION":
		return malformedError()
	}
	return classifyMessage(message)
}

func classifyMessage(message string) *Error {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "api key not valid"), strings.Contains(m, "api_key_invalid"):
		return invalidKeyError()
	case strings.Contains(m, "429"), strings.Contains(m, "resource exhausted"), strings.Contains(m, "quota"):
		return quotaError()
	case strings.Contains(m, "500"), strings.Contains(m, "internal error"):
		return internalError()
	case strings.Contains(m, "400"), strings.Contains(m, "invalid argument"):
		return malformedError()
	case strings.Contains(m, "network error"), strings.Contains(m, "connection refused"),
		strings.Contains(m, "no such host"), strings.Contains(m, "timeout"),
		strings.Contains(m, "deadline exceeded"):
		return newError(Network, "A network error occurred. Please check your internet connection and try again.")
	default:
		return newError(Unclassified, "An API error occurred: %s", message)
	}
}

func invalidKeyError() *Error {
	return newError(InvalidAPIKey, "The API key is invalid. Please ensure it is correctly configured in your environment.")
}

func quotaError() *Error {
	return newError(QuotaExceeded, "You have exceeded your request quota. Please wait a moment and try again.")
}

func internalError() *Error {
	return newError(ServiceInternal, "The AI service encountered an internal error. Please try again later.")
}

func malformedError() *Error {
	return newError(MalformedRequest, "The request sent to the AI service was malformed. Please check the input.")
}
