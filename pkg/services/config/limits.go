package config

import (
	"fmt"

	"github.com/quant-tools/return-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

type limitsFile struct {
	MaxEnumerationPeriods int `mapstructure:"max_enumeration_periods"`
	MaxSimulationPeriods  int `mapstructure:"max_simulation_periods"`
	MaxSimulations        int `mapstructure:"max_simulations"`
}

// LoadLimits reads workload ceilings from the given profile. An empty path
// returns the defaults; a present file only needs to name the keys it
// overrides.
func LoadLimits(profilePath string) (domain.Limits, error) {
	defaults := domain.DefaultLimits()
	if profilePath == "" {
		return defaults, nil
	}

	v := viper.New()
	v.SetConfigFile(profilePath)
	v.SetDefault("max_enumeration_periods", defaults.MaxEnumerationPeriods)
	v.SetDefault("max_simulation_periods", defaults.MaxSimulationPeriods)
	v.SetDefault("max_simulations", defaults.MaxSimulations)

	if err := v.ReadInConfig(); err != nil {
		return domain.Limits{}, fmt.Errorf("failed to read limits file: %w", err)
	}

	var file limitsFile
	if err := v.Unmarshal(&file); err != nil {
		return domain.Limits{}, fmt.Errorf("failed to parse limits file: %w", err)
	}

	limits := domain.Limits{
		MaxEnumerationPeriods: file.MaxEnumerationPeriods,
		MaxSimulationPeriods:  file.MaxSimulationPeriods,
		MaxSimulations:        file.MaxSimulations,
	}
	if limits.MaxEnumerationPeriods < 1 || limits.MaxSimulationPeriods < 1 || limits.MaxSimulations < 1 {
		return domain.Limits{}, fmt.Errorf("limits in %s must all be positive", profilePath)
	}
	return limits, nil
}
