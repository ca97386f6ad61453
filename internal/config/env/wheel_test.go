package env

import (
	"fortune_wheel/internal/model"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalWheel = `
wheel:
  prizes:
    - name: "Vaso"
      weight: 50
    - name: "Nada"
      weight: 50
      lose: true
`

func TestParseWheelConfigDefaults(t *testing.T) {
	t.Setenv(wheelStrategyEnvName, "")

	cfg, err := ParseWheelConfig([]byte(minimalWheel))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strategy() != model.StrategyWeighted {
		t.Fatalf("strategy %q", cfg.Strategy())
	}
	if cfg.FullTurns() != defaultFullTurns || cfg.SpinDuration() != defaultSpinDuration || cfg.StaleAfter() != defaultStaleAfter {
		t.Fatalf("defaults %d %v %v", cfg.FullTurns(), cfg.SpinDuration(), cfg.StaleAfter())
	}
	if p := cfg.Prizes(); len(p) != 2 || !p[1].Lose || p[0].Lose {
		t.Fatalf("prizes %+v", p)
	}
}

func TestParseWheelConfigFull(t *testing.T) {
	t.Setenv(wheelStrategyEnvName, "")

	cfg, err := ParseWheelConfig([]byte(`
wheel:
  strategy: adaptive
  full_turns: 3
  spin_duration: 4500ms
  stale_after: 1m
  prizes:
    - {name: "Vaso", weight: 40, color: "#fff"}
    - {name: "Otra vez", weight: 20, respin: true}
    - {name: "Nada", weight: 40, lose: true}
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strategy() != model.StrategyAdaptive || cfg.FullTurns() != 3 {
		t.Fatalf("strategy %q turns %d", cfg.Strategy(), cfg.FullTurns())
	}
	if cfg.SpinDuration() != 4500*time.Millisecond || cfg.StaleAfter() != time.Minute {
		t.Fatalf("durations %v %v", cfg.SpinDuration(), cfg.StaleAfter())
	}
	p := cfg.Prizes()
	if p[0].Color != "#fff" || !p[1].Respin || !p[2].Lose {
		t.Fatalf("prizes %+v", p)
	}
}

func TestStrategyEnvOverridesFile(t *testing.T) {
	t.Setenv(wheelStrategyEnvName, string(model.StrategyAdaptive))

	cfg, err := ParseWheelConfig([]byte(minimalWheel))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strategy() != model.StrategyAdaptive {
		t.Fatalf("strategy %q", cfg.Strategy())
	}
}

func TestPrizesReturnsCopy(t *testing.T) {
	t.Setenv(wheelStrategyEnvName, "")

	cfg, err := ParseWheelConfig([]byte(minimalWheel))
	if err != nil {
		t.Fatal(err)
	}
	p := cfg.Prizes()
	p[0].Name = "changed"
	if cfg.Prizes()[0].Name != "Vaso" {
		t.Fatal("prize table mutated through Prizes()")
	}
}

func TestParseWheelConfigErrors(t *testing.T) {
	t.Setenv(wheelStrategyEnvName, "")

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no prizes", "wheel:\n  strategy: weighted\n", "no prizes"},
		{"unknown strategy", "wheel:\n  strategy: lucky\n  prizes:\n    - {name: a, weight: 1}\n", "unknown wheel strategy"},
		{"zero weight", "wheel:\n  prizes:\n    - {name: a, weight: 0}\n", "weight must be in"},
		{"weight over 100", "wheel:\n  prizes:\n    - {name: a, weight: 101}\n", "weight must be in"},
		{"no name", "wheel:\n  prizes:\n    - {weight: 10}\n", "has no name"},
		{"negative turns", "wheel:\n  full_turns: -1\n  prizes:\n    - {name: a, weight: 1}\n", "full_turns"},
		{"stale shorter than spin", "wheel:\n  spin_duration: 10s\n  stale_after: 5s\n  prizes:\n    - {name: a, weight: 1}\n", "stale_after"},
		{"adaptive without losers", "wheel:\n  strategy: adaptive\n  prizes:\n    - {name: a, weight: 1}\n", "both winning and losing"},
		{"broken yaml", "wheel: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWheelConfig([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestNewWheelConfigFromYAML(t *testing.T) {
	t.Setenv(wheelStrategyEnvName, "")

	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte(minimalWheel), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWheelConfigFromYAML(path); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWheelConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWheelConfigPath(t *testing.T) {
	t.Setenv(wheelConfigPathEnvName, "")
	if WheelConfigPath() != defaultWheelConfigPath {
		t.Fatalf("path %q", WheelConfigPath())
	}
	t.Setenv(wheelConfigPathEnvName, "/etc/wheel.yaml")
	if WheelConfigPath() != "/etc/wheel.yaml" {
		t.Fatalf("path %q", WheelConfigPath())
	}
}
