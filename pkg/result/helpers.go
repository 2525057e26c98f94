package result

// OnSuccess calls fn with the payload when r is successful and carries data.
// r is returned unchanged either way.
func OnSuccess[T any](r Result[T], fn func(data T)) Result[T] {
	if fn != nil && r.IsSuccess() && r.HasData() {
		fn(r.data)
	}
	return r
}

// OnFailure calls fn with the error messages when r is not successful and
// carries errors. r is returned unchanged either way.
func OnFailure[T any](r Result[T], fn func(errs []string)) Result[T] {
	if fn != nil && !r.IsSuccess() && r.HasErrors() {
		fn(r.Errors())
	}
	return r
}

func (r Result[T]) OnSuccess(fn func(data T)) Result[T] {
	return OnSuccess(r, fn)
}

func (r Result[T]) OnFailure(fn func(errs []string)) Result[T] {
	return OnFailure(r, fn)
}
