package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/leomalta/worms/common/utils"
	"github.com/leomalta/worms/wormserver/state"
)

// SimConfig mirrors the JSON configuration file.
type SimConfig struct {
	NbWorms    int     `json:"n_worms"`
	NbRewards  int     `json:"n_rewards"`
	WormSize   int     `json:"worm_size"`
	PartSize   float64 `json:"part_size"`
	Starvation int     `json:"starvation"`
	Expiration int     `json:"expiration"`
	Milisec    uint    `json:"milisec"` // tick interval in milliseconds
}

func DefaultSimConfig() SimConfig {
	return SimConfig{
		NbWorms:    15,
		NbRewards:  5,
		WormSize:   8,
		PartSize:   7.0,
		Starvation: 2000,
		Expiration: 25,
		Milisec:    200,
	}
}

// LoadSimConfig reads the config file at path, falling back to the
// defaults on any error. Missing fields keep their default value.
func LoadSimConfig(path string) SimConfig {
	cfg, err := readSimConfig(path)
	if err != nil {
		utils.WarnWith(err, "Could not load simulation config; using defaults")
		return DefaultSimConfig()
	}
	return cfg
}

func readSimConfig(path string) (SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SimConfig{}, errors.Wrap(err, "failed to read config file")
	}

	cfg := DefaultSimConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SimConfig{}, errors.Wrap(err, "failed to parse config file "+path)
	}

	if err := cfg.validate(); err != nil {
		return SimConfig{}, errors.Wrap(err, "invalid config file "+path)
	}

	return cfg, nil
}

func (cfg SimConfig) validate() error {
	if cfg.NbWorms < 0 || cfg.NbRewards < 0 {
		return errors.New("n_worms and n_rewards must not be negative")
	}
	if cfg.WormSize < 1 || cfg.WormSize*2 > state.MaxBodySize {
		return errors.Errorf("worm_size must be between 1 and %d", state.MaxBodySize/2)
	}
	if cfg.PartSize <= 0 {
		return errors.New("part_size must be positive")
	}
	if cfg.Starvation < 0 || cfg.Expiration < 0 {
		return errors.New("starvation and expiration must not be negative")
	}
	if cfg.Milisec == 0 {
		return errors.New("milisec must be positive")
	}
	return nil
}
