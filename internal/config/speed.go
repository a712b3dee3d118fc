package config

import (
	"fmt"
	"strings"
)

// SpeedPreset represents a named auto-run speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedCustom SpeedPreset = "custom" // Keep step_period from the config file
)

// Presets lists the selectable presets in menu order.
func Presets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedCustom}
}

// ParseSpeedPreset validates a preset name. Empty means custom.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedCustom:
		return p, nil
	case "":
		return SpeedCustom, nil
	default:
		return "", fmt.Errorf("config: unknown speed preset %q (want slow, normal, fast or custom)", s)
	}
}

// StepPeriodForPreset returns the step period in seconds for a preset.
// ok is false for the custom preset.
func StepPeriodForPreset(preset SpeedPreset) (period float64, ok bool) {
	switch preset {
	case SpeedSlow:
		return 0.6, true
	case SpeedNormal:
		return 0.35, true
	case SpeedFast:
		return 0.15, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset overrides the step period unless the preset is custom.
func ApplySpeedPreset(cfg *RouteBoardConfig, preset SpeedPreset) {
	if period, ok := StepPeriodForPreset(preset); ok {
		cfg.Sim.StepPeriod = period
	}
}

// ResolveSpeedPreset picks the preset named by flag, falling back to the
// config file's speed_preset when the flag is empty.
func ResolveSpeedPreset(flag string, cfg RouteBoardConfig) (SpeedPreset, error) {
	if strings.TrimSpace(flag) != "" {
		return ParseSpeedPreset(flag)
	}
	return ParseSpeedPreset(cfg.SpeedPreset)
}

// StepsPerSecond reports the auto-run rate for display.
func (c SimConfig) StepsPerSecond() float64 {
	if c.StepPeriod <= 0 {
		return 0
	}
	return 1 / c.StepPeriod
}
