package logger

import (
	"go.uber.org/zap"
)

type Fields map[string]any

var base = zap.NewNop()

// Init replaces the no-op default with a production zap logger. Packages may
// log before Init is called (tests never call it) without any setup.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	base = l
	return nil
}

func Sync() {
	_ = base.Sync()
}

func Info(message string, fields Fields) {
	base.Info(message, zapFields(fields)...)
}

func Error(message string, err error, fields Fields) {
	zf := zapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	base.Error(message, zf...)
}

func zapFields(fields Fields) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
