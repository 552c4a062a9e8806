package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger used across the service.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	// Sync flushes any buffered log entries.
	Sync() error
}

type loggerImpl struct {
	zapLogger *zap.Logger
}

var _ Logger = (*loggerImpl)(nil)

// NewLogger creates a new zap logger.
// In production, logs are JSON encoded and written to fileName in addition to stdout.
// level is one of debug, info, warn, error.
func NewLogger(isProduction bool, fileName string, level string) (Logger, error) {
	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.OutputPaths = []string{"stdout"}
		if fileName != "" {
			config.OutputPaths = append(config.OutputPaths, fileName)
		}
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		atomicLevel, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		config.Level = atomicLevel
	}

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, err
	}

	return &loggerImpl{zapLogger: zapLogger}, nil
}

// Info implements Logger.
func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

// Warn implements Logger.
func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

// Error implements Logger.
func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

// Debug implements Logger.
func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

// Sync implements Logger.
func (l *loggerImpl) Sync() error {
	return l.zapLogger.Sync()
}

// NoOpLogger discards everything. Used in tests.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (*NoOpLogger) Info(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Warn(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Error(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Debug(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Sync() error { return nil }
