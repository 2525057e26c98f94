// Package status provides Result, the outcome of an operation that returns no
// data: a status code and, on failure, a list of error messages.
//
// It mirrors the typed result.Result[T] without the payload:
// - Success/SuccessWithCode: construct a successful outcome
// - Failure/FailureMessage/InternalError/FromError: construct a failed outcome
// - OnSuccess/OnFailure: run side effects and pass the outcome through
//
// Whether an outcome is successful depends only on its status code (2xx).
package status
