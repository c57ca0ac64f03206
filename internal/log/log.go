// Package log provides the process-wide zap logger. It writes to stderr
// because the render command prints card markup on stdout.
package log

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	encConfig := zap.NewDevelopmentEncoderConfig()
	encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encConfig.EncodeCaller = nil
	encConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.StampMicro))
	}

	encoder := zapcore.NewConsoleEncoder(encConfig)

	stderr, closer, err := zap.Open("stderr")
	if err != nil {
		closer()
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if os.Getenv("DEBUG") != "" {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(encoder, stderr, level)
	logger = zap.New(core, zap.ErrorOutput(stderr))
}

// S returns a *[zap.SugaredLogger].
func S() *zap.SugaredLogger {
	return logger.Sugar()
}

// L returns a *[zap.Logger].
func L() *zap.Logger {
	return logger
}

// Named returns a sugared child logger whose entries are tagged with name.
func Named(name string) *zap.SugaredLogger {
	return logger.Named(name).Sugar()
}
