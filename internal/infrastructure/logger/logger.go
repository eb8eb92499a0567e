package logger

import (
	ports "training-hub/internal/domain/ports/output"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envDev  = "dev"
	envProd = "prod"
	envTest = "test"
)

type Logger struct {
	sugar *zap.SugaredLogger
}

var _ ports.Logger = (*Logger)(nil)

func New(env string) *Logger {
	var base *zap.Logger
	switch env {
	case envTest:
		base = zap.NewNop()
	case envProd:
		base = zap.Must(zap.NewProductionConfig().Build())
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base = zap.Must(cfg.Build())
	}
	return &Logger{sugar: base.Sugar()}
}

func (l *Logger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{sugar: l.sugar.With(args...)}
}

func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
