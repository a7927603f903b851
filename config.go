package qsim

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config drives a Simulator.
type Config struct {
	Seed    uint64   `mapstructure:"seed"`
	Qubits  int      `mapstructure:"qubits"`
	Preset  string   `mapstructure:"preset"`
	Circuit []string `mapstructure:"circuit"`
	Shots   int      `mapstructure:"shots"`
	Workers int      `mapstructure:"workers"`
}

func NewConfig() *Config {
	return &Config{
		Seed:    1,
		Qubits:  2,
		Shots:   1024,
		Workers: runtime.NumCPU(),
	}
}

/*
LoadConfig reads a configuration file (any format viper understands) on top
of the defaults from NewConfig. Every key can be overridden from the
environment with a QSIM_ prefix, e.g. QSIM_SHOTS=4096. An empty path skips
the file and applies defaults and environment only.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("qubits", defaults.Qubits)
	v.SetDefault("preset", defaults.Preset)
	v.SetDefault("circuit", defaults.Circuit)
	v.SetDefault("shots", defaults.Shots)
	v.SetDefault("workers", defaults.Workers)

	v.SetEnvPrefix("QSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations a Simulator cannot be built from.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Qubits < 1:
		return fmt.Errorf("qubits must be at least 1, got %d: %w", cfg.Qubits, ErrInvalidConfig)
	case cfg.Shots < 1:
		return fmt.Errorf("shots must be at least 1, got %d: %w", cfg.Shots, ErrInvalidConfig)
	case cfg.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d: %w", cfg.Workers, ErrInvalidConfig)
	case cfg.Preset != "" && len(cfg.Circuit) > 0:
		return fmt.Errorf("preset and circuit are mutually exclusive: %w", ErrInvalidConfig)
	}

	return nil
}

// BuildCircuit returns the circuit the configuration names: the preset if
// one is set, otherwise the textual instruction list.
func (cfg *Config) BuildCircuit() (*Circuit, error) {
	if cfg.Preset != "" {
		c := NewCircuit()
		if err := c.LoadPreset(cfg.Preset); err != nil {
			return nil, err
		}
		return c, nil
	}

	return ParseInstructions(cfg.Circuit)
}
