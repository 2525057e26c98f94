package status

import (
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/ib-77/apiresult/internal/outcome"
)

func (r Result) MarshalZerologObject(e *zerolog.Event) {
	outcome.LogFields(e, r.statusCode, r.errors, r.id)
}

func (r Result) LogValue() slog.Value {
	return slog.GroupValue(outcome.LogAttrs(r.statusCode, r.errors, r.id)...)
}
