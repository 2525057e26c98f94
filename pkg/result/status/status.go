package status

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/apiresult/internal/outcome"
)

type Result struct {
	id         uuid.UUID
	createdAt  time.Time
	statusCode int
	errors     []string
}

func newResult(statusCode int, errs []string) Result {
	return Result{
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
		statusCode: statusCode,
		errors:     outcome.CloneMessages(errs),
	}
}

func Success() Result {
	return SuccessWithCode(outcome.DefaultSuccessCode)
}

// SuccessWithCode accepts any code. A non-2xx code gives an outcome that
// reports IsSuccess() == false.
func SuccessWithCode(statusCode int) Result {
	return newResult(statusCode, nil)
}

func Failure(statusCode int, errorMessages []string) Result {
	return newResult(statusCode, errorMessages)
}

func FailureMessage(statusCode int, errorMessage string) Result {
	return newResult(statusCode, []string{errorMessage})
}

func InternalError(errorMessage string) Result {
	return FailureMessage(outcome.DefaultFailureCode, errorMessage)
}

// FromError records every error joined into err as a separate message.
func FromError(statusCode int, err error) Result {
	return newResult(statusCode, outcome.SplitErrors(statusCode, err))
}

func (r Result) StatusCode() int {
	return r.statusCode
}

func (r Result) IsSuccess() bool {
	return outcome.IsSuccessCode(r.statusCode)
}

func (r Result) IsFailure() bool {
	return !r.IsSuccess()
}

// Errors returns a copy of the error messages, nil when there are none.
func (r Result) Errors() []string {
	return outcome.CloneMessages(r.errors)
}

func (r Result) HasErrors() bool {
	return r.errors != nil
}

func (r Result) Err() error {
	return outcome.JoinMessages(r.errors)
}

func (r Result) Id() uuid.UUID {
	return r.id
}

func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

// ToDisplayString renders the outcome as indented JSON for logs.
func (r Result) ToDisplayString() string {
	return outcome.Render(outcome.NewDocument(struct{}{}, false, r.errors, r.statusCode))
}

func (r Result) String() string {
	return r.ToDisplayString()
}
