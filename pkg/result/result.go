package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/apiresult/internal/outcome"
)

type Result[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	statusCode int
	data       T
	hasData    bool
	errors     []string
}

func Success[T any](data T) Result[T] {
	return SuccessWithCode(data, outcome.DefaultSuccessCode)
}

// SuccessWithCode does not check statusCode. With a non-2xx code the outcome
// reports IsSuccess() == false even though it carries data.
func SuccessWithCode[T any](data T, statusCode int) Result[T] {
	return Result[T]{
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
		statusCode: statusCode,
		data:       data,
		hasData:    !outcome.IsNil(data),
	}
}

// Failure keeps errorMessages in order. A nil list stays absent.
func Failure[T any](statusCode int, errorMessages []string) Result[T] {
	return Result[T]{
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
		statusCode: statusCode,
		errors:     outcome.CloneMessages(errorMessages),
	}
}

func FailureMessage[T any](statusCode int, errorMessage string) Result[T] {
	return Failure[T](statusCode, []string{errorMessage})
}

// InternalError fails with 500 Internal Server Error.
func InternalError[T any](errorMessage string) Result[T] {
	return FailureMessage[T](outcome.DefaultFailureCode, errorMessage)
}

// FromError records every error joined into err as a separate message. A nil
// err is recorded as the status text of statusCode.
func FromError[T any](statusCode int, err error) Result[T] {
	return Failure[T](statusCode, outcome.SplitErrors(statusCode, err))
}

func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) HasData() bool {
	return r.hasData
}

// Errors returns a copy of the error messages, nil when there are none.
func (r Result[T]) Errors() []string {
	return outcome.CloneMessages(r.errors)
}

func (r Result[T]) HasErrors() bool {
	return r.errors != nil
}

// Err joins the error messages into a single error.
func (r Result[T]) Err() error {
	return outcome.JoinMessages(r.errors)
}

func (r Result[T]) StatusCode() int {
	return r.statusCode
}

func (r Result[T]) IsSuccess() bool {
	return outcome.IsSuccessCode(r.statusCode)
}

func (r Result[T]) IsFailure() bool {
	return !r.IsSuccess()
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// ToDisplayString renders the outcome as indented JSON with the fields data,
// Errors, statusCode and isSuccess. Absent data and errors are left out.
func (r Result[T]) ToDisplayString() string {
	return outcome.Render(outcome.NewDocument(r.data, r.hasData, r.errors, r.statusCode))
}

func (r Result[T]) String() string {
	return r.ToDisplayString()
}
