package wallpaperlib

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger installs the global zap logger. stdout is never written to, it
// belongs to the confirmation printed for the host.
//
// stderr only gets warnings unless Debug is set, LogFile gets everything from
// info up.
func InitLogger(c *Config) (func(), error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	stderrLevel, fileLevel := zapcore.WarnLevel, zapcore.InfoLevel
	if c.Debug {
		stderrLevel, fileLevel = zapcore.DebugLevel, zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), stderrLevel),
	}

	var f *os.File
	if c.LogFile != "" {
		var err error
		f, err = os.OpenFile(c.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("Error opening log file: %w", err)
		}
		cores = append(cores,
			zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), fileLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	undo := zap.ReplaceGlobals(logger)

	return func() {
		_ = logger.Sync()
		undo()
		if f != nil {
			f.Close()
		}
	}, nil
}
