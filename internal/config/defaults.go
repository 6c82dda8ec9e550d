package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: InvadersScreen{
			Width:  128,
			Height: 64,
		},
		Ship: InvadersShip{
			Width:    8,
			Height:   8,
			MoveStep: 2,
			StartX:   60,
			StartY:   50,
			Lives:    3,
			FireWait: 10,
		},
		Formation: InvadersFormation{
			Row1Count:       5,
			Row2Count:       4,
			AlienWidth:      8,
			AlienHeight:     8,
			ColumnOffset:    18,
			Row2OffsetX:     9,
			StartX:          10,
			StartY:          0,
			BaseSpeed:       500,  // 0.5 pixels per tick
			SpeedUpPermille: 1200, // x1.2 every bounce
			Descent:         4,
			FireWait:        5,
		},
		Bullets: InvadersBullets{
			PlayerCapacity: 20,
			EnemyCapacity:  20,
			PlayerSpeed:    1,
			EnemySpeed:     1,
		},
		Gameplay: InvadersGameplay{
			PointsPerAlien: 2,
			DyingTicks:     6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
