package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ZapLogger adapts a zap.SugaredLogger to the Logger interface.
type ZapLogger struct {
	l *zap.SugaredLogger
}

func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l.Sugar()}
}

// NewDefault builds a production zap logger at the given level
// ("debug", "info", "warn", "error"). An unknown level falls back to info.
func NewDefault(level string) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return NewZapLogger(l), nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *ZapLogger {
	return NewZapLogger(zap.NewNop())
}

func (z *ZapLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.l.Debugw(msg, args...)
}

func (z *ZapLogger) Info(ctx context.Context, msg string, args ...any) {
	z.l.Infow(msg, args...)
}

func (z *ZapLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.l.Warnw(msg, args...)
}

func (z *ZapLogger) Error(ctx context.Context, msg string, args ...any) {
	z.l.Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}
