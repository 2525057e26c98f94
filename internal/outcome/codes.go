package outcome

import "net/http"

const (
	DefaultSuccessCode = http.StatusOK
	DefaultFailureCode = http.StatusInternalServerError
)

const unknownErrorMessage = "unknown error"

// IsSuccessCode reports whether statusCode lies in the 2xx range.
func IsSuccessCode(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// FallbackMessage is used when a failure has to be built from a nil error.
func FallbackMessage(statusCode int) string {
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return unknownErrorMessage
}
