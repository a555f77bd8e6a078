package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base *zap.Logger

func init() {
	// Default sebelum Init dipanggil dari main
	base = newLogger("info", "json")
}

// Init mengganti logger global sesuai level dan format (json|console).
func Init(level, format string) {
	base = newLogger(level, format)
}

func newLogger(level, format string) *zap.Logger {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl.SetLevel(zapcore.InfoLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return lvl.Enabled(l) && l < zapcore.ErrorLevel
		})),
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return lvl.Enabled(l) && l >= zapcore.ErrorLevel
		})),
	)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// L returns the underlying zap logger for callers that want structured fields.
func L() *zap.Logger {
	return base
}

func Debug(msg string, v ...interface{}) {
	base.Sugar().Debugf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	base.Sugar().Infof(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	base.Sugar().Warnf(msg, v...)
}

func Error(msg string, err error, v ...interface{}) {
	if err != nil {
		base.Sugar().Errorw(sprintf(msg, v...), "error", err)
	} else {
		base.Sugar().Errorf(msg, v...)
	}
}

func Sync() {
	_ = base.Sync()
}

func sprintf(msg string, v ...interface{}) string {
	if len(v) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, v...)
}
