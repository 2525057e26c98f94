package result

import (
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/ib-77/apiresult/internal/outcome"
)

// MarshalZerologObject lets a Result be logged with zerolog's Object.
// The payload itself is never written, only whether there is one.
func (r Result[T]) MarshalZerologObject(e *zerolog.Event) {
	outcome.LogFields(e, r.statusCode, r.errors, r.id)
	e.Bool(outcome.KeyHasData, r.hasData)
}

func (r Result[T]) LogValue() slog.Value {
	attrs := outcome.LogAttrs(r.statusCode, r.errors, r.id)
	attrs = append(attrs, slog.Bool(outcome.KeyHasData, r.hasData))
	return slog.GroupValue(attrs...)
}
