// Package config provides YAML-based configuration loading for the
// invaders game constants.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// EnemySlotCapacity is the size of the projectile arena backing enemy fire.
// EnemySlots may use at most this many slots.
const EnemySlotCapacity = 200

// InvadersConfig contains all tunable constants for the invaders game.
type InvadersConfig struct {
	Ship     ShipConfig     `yaml:"ship"`
	Invaders InvaderConfig  `yaml:"invaders"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Menace   MenaceConfig   `yaml:"menace"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Speed float64 `yaml:"speed"` // World units per second
}

// InvaderConfig defines the invader formation parameters.
type InvaderConfig struct {
	Speed         float64 `yaml:"speed"`           // Initial horizontal speed, world units per second
	SpeedUpFactor float64 `yaml:"speed_up_factor"` // Speed multiplier applied on every wall bump
	NearOdds      int     `yaml:"near_odds"`       // 1-in-N chance to fire when above the ship
	FarOdds       int     `yaml:"far_odds"`        // 1-in-N chance to fire from anywhere
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed      float64 `yaml:"speed"`       // World units per second
	EnemySlots int     `yaml:"enemy_slots"` // Round-robin slots usable by invaders
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	StartingLives int `yaml:"starting_lives"`
}

// MenaceConfig defines the background threat cue cadence.
type MenaceConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Interval at level start
	StepMS     int `yaml:"step_ms"`     // Reduction applied on every wall bump
}

// Interval returns the initial menace interval as a duration.
func (m MenaceConfig) Interval() time.Duration {
	return time.Duration(m.IntervalMS) * time.Millisecond
}

// Step returns the per-bump menace reduction as a duration.
func (m MenaceConfig) Step() time.Duration {
	return time.Duration(m.StepMS) * time.Millisecond
}

// Validate checks that every value is usable by the simulation.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Ship.Speed <= 0:
		return fmt.Errorf("%w: ship.speed must be positive, got %v", ErrInvalidConfig, c.Ship.Speed)
	case c.Invaders.Speed <= 0:
		return fmt.Errorf("%w: invaders.speed must be positive, got %v", ErrInvalidConfig, c.Invaders.Speed)
	case c.Invaders.SpeedUpFactor < 1:
		return fmt.Errorf("%w: invaders.speed_up_factor must be >= 1, got %v", ErrInvalidConfig, c.Invaders.SpeedUpFactor)
	case c.Invaders.NearOdds <= 0 || c.Invaders.FarOdds <= 0:
		return fmt.Errorf("%w: invaders odds must be positive, got near=%d far=%d",
			ErrInvalidConfig, c.Invaders.NearOdds, c.Invaders.FarOdds)
	case c.Bullets.Speed <= 0:
		return fmt.Errorf("%w: bullets.speed must be positive, got %v", ErrInvalidConfig, c.Bullets.Speed)
	case c.Bullets.EnemySlots <= 0 || c.Bullets.EnemySlots > EnemySlotCapacity:
		return fmt.Errorf("%w: bullets.enemy_slots must be in [1, %d], got %d",
			ErrInvalidConfig, EnemySlotCapacity, c.Bullets.EnemySlots)
	case c.Gameplay.StartingLives <= 0:
		return fmt.Errorf("%w: gameplay.starting_lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.StartingLives)
	case c.Menace.IntervalMS <= 0:
		return fmt.Errorf("%w: menace.interval_ms must be positive, got %d", ErrInvalidConfig, c.Menace.IntervalMS)
	case c.Menace.StepMS < 0:
		return fmt.Errorf("%w: menace.step_ms must not be negative, got %d", ErrInvalidConfig, c.Menace.StepMS)
	}
	return nil
}
