package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Ship: ShipConfig{
			Speed: 350,
		},
		Invaders: InvaderConfig{
			Speed:         40,
			SpeedUpFactor: 1.18,
			NearOdds:      150,
			FarOdds:       2000,
		},
		Bullets: BulletConfig{
			Speed:      350,
			EnemySlots: 10,
		},
		Gameplay: GameplayConfig{
			StartingLives: 3,
		},
		Menace: MenaceConfig{
			IntervalMS: 1000,
			StepMS:     80,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
