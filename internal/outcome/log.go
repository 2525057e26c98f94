package outcome

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	KeyStatusCode = "statusCode"
	KeyIsSuccess  = "isSuccess"
	KeyErrors     = "errors"
	KeyHasData    = "hasData"
	KeyID         = "id"
)

// LogFields writes the common outcome fields to a zerolog event.
func LogFields(e *zerolog.Event, statusCode int, errs []string, id uuid.UUID) {
	e.Int(KeyStatusCode, statusCode).
		Bool(KeyIsSuccess, IsSuccessCode(statusCode))
	if errs != nil {
		e.Strs(KeyErrors, errs)
	}
	e.Str(KeyID, id.String())
}

// LogAttrs is the slog counterpart of LogFields.
func LogAttrs(statusCode int, errs []string, id uuid.UUID) []slog.Attr {
	attrs := []slog.Attr{
		slog.Int(KeyStatusCode, statusCode),
		slog.Bool(KeyIsSuccess, IsSuccessCode(statusCode)),
	}
	if errs != nil {
		attrs = append(attrs, slog.Any(KeyErrors, CloneMessages(errs)))
	}
	return append(attrs, slog.String(KeyID, id.String()))
}
