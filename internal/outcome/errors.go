package outcome

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// CloneMessages copies msgs keeping the nil/empty distinction: nil stays nil,
// an empty slice stays a non-nil empty slice.
func CloneMessages(msgs []string) []string {
	if msgs == nil {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// SplitErrors turns err into one message per joined error. A nil err gives
// the fallback text for statusCode so that a failure always carries a message.
func SplitErrors(statusCode int, err error) []string {
	errs := GetErrors(err)
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if IsNil(e) {
			continue
		}
		msgs = append(msgs, e.Error())
	}

	if len(msgs) == 0 {
		return []string{FallbackMessage(statusCode)}
	}
	return msgs
}

func JoinMessages(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}

	errs := make([]error, 0, len(msgs))
	for _, m := range msgs {
		errs = append(errs, errors.New(m))
	}
	return errors.Join(errs...)
}
