package outcome

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	FieldData       = "data"
	FieldErrors     = "Errors"
	FieldStatusCode = "statusCode"
	FieldIsSuccess  = "isSuccess"
)

// Document is the debug view of an outcome. Pointers mark presence: a nil
// Data or Errors is left out, a pointer to an empty list renders as [].
type Document[T any] struct {
	Data       *T
	Errors     *[]string
	StatusCode int
	IsSuccess  bool
}

func NewDocument[T any](data T, hasData bool, errs []string, statusCode int) Document[T] {
	doc := Document[T]{
		StatusCode: statusCode,
		IsSuccess:  IsSuccessCode(statusCode),
	}
	if hasData {
		doc.Data = &data
	}
	if errs != nil {
		e := CloneMessages(errs)
		doc.Errors = &e
	}
	return doc
}

// Render returns the indented JSON form of doc with the fields in the order
// data, Errors, statusCode, isSuccess. When the payload can't be encoded the
// same fields are written with fmt instead.
func Render[T any](doc Document[T]) string {
	b, err := marshalDocument(doc)
	if err != nil {
		return renderPlain(doc)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return renderPlain(doc)
	}
	return out.String()
}

func marshalDocument[T any](doc Document[T]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if doc.Data != nil {
		data, err := json.Marshal(*doc.Data)
		if err != nil {
			return nil, err
		}
		writeKey(&buf, FieldData)
		buf.Write(data)
		buf.WriteByte(',')
	}

	if doc.Errors != nil {
		errs, err := json.Marshal(*doc.Errors)
		if err != nil {
			return nil, err
		}
		writeKey(&buf, FieldErrors)
		buf.Write(errs)
		buf.WriteByte(',')
	}

	writeKey(&buf, FieldStatusCode)
	buf.WriteString(strconv.Itoa(doc.StatusCode))
	buf.WriteByte(',')
	writeKey(&buf, FieldIsSuccess)
	buf.WriteString(strconv.FormatBool(doc.IsSuccess))

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) {
	buf.WriteString(strconv.Quote(key))
	buf.WriteByte(':')
}

func renderPlain[T any](doc Document[T]) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	if doc.Data != nil {
		fmt.Fprintf(&sb, "  %q: %+v,\n", FieldData, *doc.Data)
	}
	if doc.Errors != nil {
		fmt.Fprintf(&sb, "  %q: %q,\n", FieldErrors, *doc.Errors)
	}
	fmt.Fprintf(&sb, "  %q: %d,\n", FieldStatusCode, doc.StatusCode)
	fmt.Fprintf(&sb, "  %q: %t\n", FieldIsSuccess, doc.IsSuccess)
	sb.WriteString("}")
	return sb.String()
}
