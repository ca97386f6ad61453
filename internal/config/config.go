package config

import (
	"fortune_wheel/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	Strategy() model.Strategy
	Prizes() []model.Prize
	FullTurns() int
	SpinDuration() time.Duration
	StaleAfter() time.Duration
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
	AllowCredentials() bool
}

type LogConfig interface {
	Level() string
	Production() bool
	File() string
}

type HistoryConfig interface {
	Backend() string
	KeyPrefix() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
}

type SheetsConfig interface {
	SheetID() string
	Range() string
	CredentialsJSON() []byte
	TimeZone() string
}
