package render

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the demo logger: info and above to stderr, everything
// to the log file. The file is truncated on each run, like the classic
// gl.log. The returned func flushes and closes the file; call it at
// process teardown.
func NewLogger(path string) (*zap.Logger, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create log file: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), zapcore.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(file), zapcore.DebugLevel),
	)

	log := zap.New(core)
	cleanup := func() {
		_ = log.Sync()
		_ = file.Close()
	}
	return log, cleanup, nil
}
