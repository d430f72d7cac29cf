package logger

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ctxKey struct{}

// WithContext adjunta zl al contexto; los casos de uso lo recuperan con FromContext.
func WithContext(ctx context.Context, zl zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, zl)
}

// FromContext devuelve el logger del contexto o el global si no hay ninguno.
func FromContext(ctx context.Context) *zerolog.Logger {
	zl := log.Logger
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
			zl = l
		}
	}
	return &zl
}

// WithStr añade un campo de texto al logger del contexto.
func WithStr(ctx context.Context, key, value string) context.Context {
	zl := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, zl)
}
