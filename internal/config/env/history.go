package env

import (
	"fmt"
	"fortune_wheel/internal/config"
	"os"
)

const (
	historyBackendEnvName   = "HISTORY_BACKEND"
	historyKeyPrefixEnvName = "HISTORY_KEY_PREFIX"

	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type historyConfig struct {
	backend string
	prefix  string
}

func NewHistoryConfig() (config.HistoryConfig, error) {
	backend := os.Getenv(historyBackendEnvName)
	if len(backend) == 0 {
		backend = BackendMemory
	}

	switch backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}

	prefix := os.Getenv(historyKeyPrefixEnvName)
	if len(prefix) == 0 {
		prefix = "roulette_history"
	}

	return &historyConfig{
		backend: backend,
		prefix:  prefix,
	}, nil
}

func (cfg *historyConfig) Backend() string {
	return cfg.backend
}

func (cfg *historyConfig) KeyPrefix() string {
	return cfg.prefix
}
