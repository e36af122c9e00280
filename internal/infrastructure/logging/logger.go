package logging

import (
	"fmt"
	"os"
	"strings"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps LOG_LEVEL to a zap level. "development" is accepted as an alias
// for debug.
func ParseLevel(v string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "info":
		return zap.InfoLevel, nil
	case "development":
		return zap.DebugLevel, nil
	}
	lvl, err := zapcore.ParseLevel(v)
	if err != nil {
		return zap.InfoLevel, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
	}
	return lvl, nil
}

// Init builds the ECS-formatted JSON logger and installs it as the zap global, which
// is what the rest of the service logs through (zap.S()).
func Init(level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	core := ecszap.NewCore(ecszap.NewDefaultEncoderConfig(), os.Stdout, lvl)
	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)
	return logger, nil
}
