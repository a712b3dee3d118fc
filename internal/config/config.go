// Package config provides YAML-based board configuration loading and
// speed presets for the routing board.
package config

// RouteBoardConfig contains all configuration for the routing board.
type RouteBoardConfig struct {
	// SpeedPreset names an auto-run speed that overrides sim.step_period.
	// Empty or "custom" keeps the configured period.
	SpeedPreset string          `yaml:"speed_preset"`
	Sim         SimConfig       `yaml:"sim"`
	Challenge   ChallengeConfig `yaml:"challenge"`
	Router      RouterConfig    `yaml:"router"`
}

// SimConfig defines the engine timing parameters.
type SimConfig struct {
	StepPeriod      float64 `yaml:"step_period"`      // Seconds between auto-steps
	FlashDuration   float64 `yaml:"flash_duration"`   // Seconds the invalid-move warning lasts
	HistoryCapacity int     `yaml:"history_capacity"` // Maximum undoable steps
	SeedSalt        uint32  `yaml:"seed_salt"`        // XORed into the runtime seed
}

// ChallengeConfig defines the opening of the challenge variant.
type ChallengeConfig struct {
	Pieces       int  `yaml:"pieces"`
	RandomRoutes bool `yaml:"random_routes"`
}

// RouterConfig points at the optional routing advisor service.
// An empty endpoint disables the advisor.
type RouterConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// normalize replaces out-of-range values with defaults.
func (c *RouteBoardConfig) normalize() {
	d := DefaultRouteBoardConfig()
	if c.Sim.StepPeriod <= 0 {
		c.Sim.StepPeriod = d.Sim.StepPeriod
	}
	if c.Sim.FlashDuration <= 0 {
		c.Sim.FlashDuration = d.Sim.FlashDuration
	}
	if c.Sim.HistoryCapacity <= 0 {
		c.Sim.HistoryCapacity = d.Sim.HistoryCapacity
	}
	if c.Challenge.Pieces < 0 {
		c.Challenge.Pieces = 0
	}
	if c.Challenge.Pieces > 100 {
		c.Challenge.Pieces = 100
	}
	if c.Router.TimeoutMS <= 0 {
		c.Router.TimeoutMS = d.Router.TimeoutMS
	}
}
