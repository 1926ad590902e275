package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{name: "info", level: LevelInfo, want: zapcore.InfoLevel},
		{name: "error", level: LevelError, want: zapcore.ErrorLevel},
		{name: "unknown falls back to debug", level: "verbose", want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &zapLogger{cfg: &ZapConfig{Level: tt.level}}
			assert.Equal(t, tt.want, l.getLoggerLevel())
		})
	}
}

func TestWith(t *testing.T) {
	l := Init(ZapConfig{Level: LevelInfo, Mode: ModeDevelopment, Encoding: EncodingJSON}).(*zapLogger)

	ctx := l.With(context.Background(), "path", "/panel")
	assert.NotSame(t, l.sugarLogger, l.ctx(ctx))
	assert.Same(t, l.sugarLogger, l.ctx(context.Background()))
}

func TestNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Infof(context.Background(), "hello %s", "world")
		l.Warn(context.TODO(), "plain")
	})
}
