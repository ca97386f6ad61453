package env

import (
	"fortune_wheel/internal/config"
	"os"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logModeEnvName  = "LOG_MODE"
	logFileEnvName  = "LOG_FILE"
)

type logConfig struct {
	level string
	prod  bool
	file  string
}

// NewLogConfig - уровень по умолчанию info, режим dev
func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}

	return &logConfig{
		level: level,
		prod:  os.Getenv(logModeEnvName) == "prod",
		file:  os.Getenv(logFileEnvName),
	}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Production() bool {
	return cfg.prod
}

func (cfg *logConfig) File() string {
	return cfg.file
}
