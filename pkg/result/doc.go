// Package result provides Result[T], the outcome of an operation such as an
// API call: either a payload with an HTTP-like status code, or a status code
// with one or more error messages.
//
// Outcomes are values. They are built only through the factories and never
// change afterwards, so they can be shared freely between goroutines.
//
// Key operations:
// - Success/SuccessWithCode: outcome carrying a payload
// - Failure/FailureMessage/InternalError/FromError: outcome carrying errors
// - OnSuccess/OnFailure: run a side effect and pass the outcome through
// - Map/Finally: transform the payload or collapse the outcome to a value
// - ToDisplayString: indented JSON view for logs
//
// Outcomes without a payload live in the status subpackage.
package result
