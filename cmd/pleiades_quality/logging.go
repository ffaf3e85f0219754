package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger on stderr. The default level is warn so
// a clean run stays quiet; -v raises it to info and -w to debug.
func newLogger() *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if flagVerbose {
		level = zapcore.InfoLevel
	}
	if flagVeryVerbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}
