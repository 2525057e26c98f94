package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnSuccess_CalledOnceWithPayload(t *testing.T) {
	t.Parallel()

	var got []int
	r := Success(42)
	out := OnSuccess(r, func(v int) { got = append(got, v) })

	assert.Equal(t, []int{42}, got)
	assert.Equal(t, r, out)
}

func TestOnSuccess_NotCalledOnFailure(t *testing.T) {
	t.Parallel()

	called := false
	r := FailureMessage[int](500, "x")
	out := OnSuccess(r, func(int) { called = true })

	assert.False(t, called)
	assert.Equal(t, r, out)
}

func TestOnSuccess_NotCalledWithoutData(t *testing.T) {
	t.Parallel()

	called := false
	var p *string
	r := Success(p)
	out := r.OnSuccess(func(*string) { called = true })

	assert.True(t, r.IsSuccess())
	assert.False(t, called)
	assert.Equal(t, r, out)
}

func TestOnSuccess_NotCalledForNonSuccessCode(t *testing.T) {
	t.Parallel()

	called := false
	SuccessWithCode(1, 404).OnSuccess(func(int) { called = true })
	assert.False(t, called)
}

func TestOnFailure_CalledOnceWithErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	var got []string
	r := Failure[int](404, []string{"a", "b"})
	out := OnFailure(r, func(errs []string) {
		calls++
		got = errs
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, r, out)
}

func TestOnFailure_CallbackCannotMutateOutcome(t *testing.T) {
	t.Parallel()

	r := FailureMessage[int](400, "bad")
	r.OnFailure(func(errs []string) { errs[0] = "changed" })
	assert.Equal(t, []string{"bad"}, r.Errors())
}

func TestOnFailure_NotCalledOnSuccess(t *testing.T) {
	t.Parallel()

	called := false
	r := Success("ok")
	out := OnFailure(r, func([]string) { called = true })

	assert.False(t, called)
	assert.Equal(t, r, out)
}

func TestOnFailure_NotCalledWithoutErrors(t *testing.T) {
	t.Parallel()

	called := false
	SuccessWithCode("x", 500).OnFailure(func([]string) { called = true })
	Failure[int](400, nil).OnFailure(func([]string) { called = true })
	assert.False(t, called)
}

func TestHelpers_FluentChain(t *testing.T) {
	t.Parallel()

	var events []string
	Success("payload").
		OnSuccess(func(v string) { events = append(events, "success:"+v) }).
		OnFailure(func([]string) { events = append(events, "failure") })

	InternalError[string]("boom").
		OnSuccess(func(string) { events = append(events, "success") }).
		OnFailure(func(errs []string) { events = append(events, "failure:"+errs[0]) })

	assert.Equal(t, []string{"success:payload", "failure:boom"}, events)
}

func TestHelpers_NilCallback(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Success(1).OnSuccess(nil).OnFailure(nil)
		InternalError[int]("x").OnSuccess(nil).OnFailure(nil)
	})
}
