package status

// OnSuccess calls fn with the status code when r is successful and returns r.
func OnSuccess(r Result, fn func(statusCode int)) Result {
	if fn != nil && r.IsSuccess() {
		fn(r.statusCode)
	}
	return r
}

// OnFailure calls fn with the error messages when r failed and carries any,
// then returns r.
func OnFailure(r Result, fn func(errs []string)) Result {
	if fn != nil && !r.IsSuccess() && r.HasErrors() {
		fn(r.Errors())
	}
	return r
}

func (r Result) OnSuccess(fn func(statusCode int)) Result {
	return OnSuccess(r, fn)
}

func (r Result) OnFailure(fn func(errs []string)) Result {
	return OnFailure(r, fn)
}
