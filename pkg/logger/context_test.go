package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func TestFromContext_DevuelveLoggerAdjunto(t *testing.T) {
	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), zerolog.New(&buf))
	ctx = logger.WithStr(ctx, "request_id", "abc-123")

	zl := logger.FromContext(ctx)
	zl.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	assert.Contains(t, buf.String(), `"message":"hola"`)
}

func TestFromContext_SinLoggerNoFalla(t *testing.T) {
	zl := logger.FromContext(context.Background())
	assert.NotPanics(t, func() { zl.Debug().Msg("sin logger") })
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("desconocido"))
}
