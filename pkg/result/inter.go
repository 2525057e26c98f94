package result

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is implemented by both Result[T] and status.Result.
type Outcome interface {
	// StatusCode returns the HTTP-like status code
	StatusCode() int
	// IsSuccess reports whether the status code is 2xx
	IsSuccess() bool
	// Errors returns the error messages, nil when there are none
	Errors() []string
	HasErrors() bool
	Err() error
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	ToDisplayString() string
}

// WithData extends Outcome with access to the payload.
type WithData[T any] interface {
	Outcome
	// Data returns the payload, the zero value when there is none
	Data() T
	HasData() bool
}
