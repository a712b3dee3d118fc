package config

import (
	_ "embed"
)

//go:embed defaults/routeboard.yaml
var defaultRouteBoardYAML []byte

// DefaultRouteBoardConfig returns the default routing board configuration.
func DefaultRouteBoardConfig() RouteBoardConfig {
	return RouteBoardConfig{
		Sim: SimConfig{
			StepPeriod:      0.35,
			FlashDuration:   0.65,
			HistoryCapacity: 2048,
			SeedSalt:        0xA53,
		},
		Challenge: ChallengeConfig{
			Pieces:       8,
			RandomRoutes: true,
		},
		Router: RouterConfig{
			Endpoint:  "",
			TimeoutMS: 2000,
		},
	}
}
