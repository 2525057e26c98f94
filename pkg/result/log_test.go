package result

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMarshalZerologObject(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := Success("secret")
	log.Info().Object("outcome", r).Msg("handled")

	out := buf.String()
	assert.Contains(t, out, `"statusCode":200`)
	assert.Contains(t, out, `"isSuccess":true`)
	assert.Contains(t, out, `"hasData":true`)
	assert.Contains(t, out, r.Id().String())
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, `"errors"`)
}

func TestMarshalZerologObject_Failure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Error().Object("outcome", Failure[int](502, []string{"upstream", "timeout"})).Send()

	out := buf.String()
	assert.Contains(t, out, `"statusCode":502`)
	assert.Contains(t, out, `"errors":["upstream","timeout"]`)
	assert.Contains(t, out, `"hasData":false`)
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("handled", "outcome", InternalError[int]("boom"))

	out := buf.String()
	assert.Contains(t, out, `"statusCode":500`)
	assert.Contains(t, out, `"isSuccess":false`)
	assert.Contains(t, out, `"errors":["boom"]`)
	assert.Contains(t, out, `"hasData":false`)
}
