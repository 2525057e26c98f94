package result

import (
	"github.com/ib-77/apiresult/internal/outcome"
	"github.com/ib-77/apiresult/pkg/result/status"
)

// Map transforms the payload of a successful outcome and keeps its status
// code. Any other outcome keeps its status code and errors and loses the
// payload. The id and creation time are carried over.
func Map[In, Out any](input Result[In], onSuccess func(data In) Out) Result[Out] {
	out := Result[Out]{
		id:         input.id,
		createdAt:  input.createdAt,
		statusCode: input.statusCode,
		errors:     outcome.CloneMessages(input.errors),
	}

	if input.IsSuccess() && input.HasData() && onSuccess != nil {
		out.data = onSuccess(input.data)
		out.hasData = !outcome.IsNil(out.data)
	}
	return out
}

// Finally collapses the outcome into a value. A successful outcome without
// data hands the zero value to onSuccess.
func Finally[In, Out any](input Result[In],
	onSuccess func(data In) Out,
	onFailure func(statusCode int, errs []string) Out) Out {

	if input.IsSuccess() {
		if onSuccess == nil {
			var zero Out
			return zero
		}
		return onSuccess(input.data)
	}

	if onFailure == nil {
		var zero Out
		return zero
	}
	return onFailure(input.statusCode, input.Errors())
}

// Status drops the payload and returns a new status-only outcome with the
// same status code and errors.
func (r Result[T]) Status() status.Result {
	if r.HasErrors() {
		return status.Failure(r.statusCode, r.errors)
	}
	return status.SuccessWithCode(r.statusCode)
}
