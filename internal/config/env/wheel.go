package env

import (
	"errors"
	"fmt"
	"fortune_wheel/internal/config"
	"fortune_wheel/internal/model"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	wheelConfigPathEnvName = "WHEEL_CONFIG"
	wheelStrategyEnvName   = "WHEEL_STRATEGY"

	defaultWheelConfigPath = "config.yaml"
	defaultFullTurns       = 5
	defaultSpinDuration    = 6 * time.Second
	defaultStaleAfter      = 30 * time.Second
	maxPrizeWeight         = 100
)

type prizeYAML struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	Color  string  `yaml:"color"`
	Lose   bool    `yaml:"lose"`
	Respin bool    `yaml:"respin"`
}

type wheelYAML struct {
	Wheel struct {
		Strategy     string        `yaml:"strategy"`
		FullTurns    int           `yaml:"full_turns"`
		SpinDuration time.Duration `yaml:"spin_duration"`
		StaleAfter   time.Duration `yaml:"stale_after"`
		Prizes       []prizeYAML   `yaml:"prizes"`
	} `yaml:"wheel"`
}

type wheelConfig struct {
	strategy     model.Strategy
	prizes       []model.Prize
	fullTurns    int
	spinDuration time.Duration
	staleAfter   time.Duration
}

// WheelConfigPath - путь к yaml с колесом, WHEEL_CONFIG или config.yaml
func WheelConfigPath() string {
	if p := os.Getenv(wheelConfigPathEnvName); len(p) > 0 {
		return p
	}
	return defaultWheelConfigPath
}

// NewWheelConfigFromYAML читает таблицу призов и стратегию из файла.
// WHEEL_STRATEGY перекрывает стратегию из файла
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wheel config: %w", err)
	}
	return ParseWheelConfig(data)
}

// ParseWheelConfig разбирает и валидирует yaml колеса
func ParseWheelConfig(data []byte) (config.WheelConfig, error) {
	var raw wheelYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse wheel config: %w", err)
	}

	strategy := model.Strategy(raw.Wheel.Strategy)
	if s := os.Getenv(wheelStrategyEnvName); len(s) > 0 {
		strategy = model.Strategy(s)
	}
	if strategy == "" {
		strategy = model.StrategyWeighted
	}

	cfg := &wheelConfig{
		strategy:     strategy,
		fullTurns:    raw.Wheel.FullTurns,
		spinDuration: raw.Wheel.SpinDuration,
		staleAfter:   raw.Wheel.StaleAfter,
	}
	if cfg.fullTurns == 0 {
		cfg.fullTurns = defaultFullTurns
	}
	if cfg.spinDuration == 0 {
		cfg.spinDuration = defaultSpinDuration
	}
	if cfg.staleAfter == 0 {
		cfg.staleAfter = defaultStaleAfter
	}

	for _, p := range raw.Wheel.Prizes {
		cfg.prizes = append(cfg.prizes, model.Prize{
			Name:   p.Name,
			Weight: p.Weight,
			Color:  p.Color,
			Lose:   p.Lose,
			Respin: p.Respin,
		})
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *wheelConfig) validate() error {
	if cfg.strategy != model.StrategyWeighted && cfg.strategy != model.StrategyAdaptive {
		return fmt.Errorf("unknown wheel strategy %q", cfg.strategy)
	}
	if len(cfg.prizes) == 0 {
		return errors.New("wheel has no prizes")
	}
	if cfg.staleAfter < cfg.spinDuration {
		return fmt.Errorf("stale_after %v is shorter than spin_duration %v", cfg.staleAfter, cfg.spinDuration)
	}
	if cfg.fullTurns < 1 {
		return fmt.Errorf("full_turns must be positive, got %d", cfg.fullTurns)
	}

	var wins, losses int
	for i, p := range cfg.prizes {
		if p.Name == "" {
			return fmt.Errorf("prize %d has no name", i)
		}
		if p.Weight <= 0 || p.Weight > maxPrizeWeight {
			return fmt.Errorf("prize %q weight must be in (0, 100], got %v", p.Name, p.Weight)
		}
		if p.Lose {
			losses++
		} else {
			wins++
		}
	}

	// Адаптивной стратегии нужны сектора под оба исхода броска
	if cfg.strategy == model.StrategyAdaptive && (wins == 0 || losses == 0) {
		return errors.New("adaptive strategy needs both winning and losing sections")
	}
	return nil
}

func (cfg *wheelConfig) Strategy() model.Strategy {
	return cfg.strategy
}

// Prizes возвращает копию таблицы
func (cfg *wheelConfig) Prizes() []model.Prize {
	out := make([]model.Prize, len(cfg.prizes))
	copy(out, cfg.prizes)
	return out
}

func (cfg *wheelConfig) FullTurns() int {
	return cfg.fullTurns
}

func (cfg *wheelConfig) SpinDuration() time.Duration {
	return cfg.spinDuration
}

func (cfg *wheelConfig) StaleAfter() time.Duration {
	return cfg.staleAfter
}
