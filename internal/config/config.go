// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// InvadersConfig contains all tuning for the Space Invaders game.
// The defaults reproduce the original cabinet feel at 15 ticks/s; every
// value here is simulation-domain (pixels and ticks, never wall-clock).
type InvadersConfig struct {
	Screen    InvadersScreen    `yaml:"screen"`
	Ship      InvadersShip      `yaml:"ship"`
	Formation InvadersFormation `yaml:"formation"`
	Bullets   InvadersBullets   `yaml:"bullets"`
	Gameplay  InvadersGameplay  `yaml:"gameplay"`
}

// InvadersScreen defines the logical framebuffer dimensions in pixels.
type InvadersScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InvadersShip defines the player ship parameters.
type InvadersShip struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MoveStep int `yaml:"move_step"` // Horizontal pixels per tick while held
	StartX   int `yaml:"start_x"`
	StartY   int `yaml:"start_y"`
	Lives    int `yaml:"lives"`
	FireWait int `yaml:"fire_wait"` // Ticks between shots
}

// InvadersFormation defines the two-row alien grid and its movement.
// BaseSpeed is in milli-pixels per tick (fixed-point, see the invaders
// package); SpeedUpPermille scales it on every edge bounce, so 1200 means
// each bounce reverses direction and multiplies the magnitude by 1.2.
type InvadersFormation struct {
	Row1Count       int `yaml:"row1_count"`
	Row2Count       int `yaml:"row2_count"`
	AlienWidth      int `yaml:"alien_width"`
	AlienHeight     int `yaml:"alien_height"`
	ColumnOffset    int `yaml:"column_offset"`  // Horizontal pixels between columns
	Row2OffsetX     int `yaml:"row2_offset_x"`  // Extra indent of the second row
	StartX          int `yaml:"start_x"`
	StartY          int `yaml:"start_y"`
	BaseSpeed       int `yaml:"base_speed"`        // Milli-pixels per tick
	SpeedUpPermille int `yaml:"speed_up_permille"` // Bounce speed-up factor x1000
	Descent         int `yaml:"descent"`           // Pixels dropped per bounce
	FireWait        int `yaml:"fire_wait"`         // Ticks between alien shots
}

// InvadersBullets defines the two fixed-capacity bullet pools.
type InvadersBullets struct {
	PlayerCapacity int `yaml:"player_capacity"`
	EnemyCapacity  int `yaml:"enemy_capacity"`
	PlayerSpeed    int `yaml:"player_speed"` // Pixels per tick, upward
	EnemySpeed     int `yaml:"enemy_speed"`  // Pixels per tick, downward
}

// InvadersGameplay defines scoring and the death animation.
type InvadersGameplay struct {
	PointsPerAlien int `yaml:"points_per_alien"`
	DyingTicks     int `yaml:"dying_ticks"` // Length of the flashing death animation
}
