// Package invaders implements the Space Invaders simulation: a fixed-tick
// arcade shooter with a two-row alien formation, flashing death
// animations and a release-then-press round restart gesture.
//
// All state lives in the Game struct and is only ever mutated by Step,
// so independent instances can run side by side and tests can drive the
// simulation deterministically.
package invaders

import (
	"math/rand"

	"github.com/Eristhenis/arduinospaceinvaders/internal/config"
	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
	"github.com/Eristhenis/arduinospaceinvaders/internal/registry"
)

// phase is the round lifecycle state. A round runs until the ship's lives
// are exhausted, the formation is wiped out, or an alien touches the
// floor; win and loss end the round identically. The two "over" phases
// implement the release-then-press restart gesture without blocking the
// tick loop.
type phase int

const (
	phaseRunning phase = iota
	phaseOverAwaitRelease
	phaseOverAwaitPress
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// shipState is the player's ship.
type shipState struct {
	x, y     int
	vit      vitality
	fireWait int
}

// formationState is the shared state of the alien grid. Per-alien
// positions are derived from the shared origin plus fixed per-column
// offsets; only liveness is tracked per alien.
type formationState struct {
	originX   Fixed
	originY   int
	dx        Fixed
	aliens    []vitality
	remaining int
	fireWait  int
}

// Game implements the Space Invaders simulation.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	tick  uint64
	phase phase
	score int
	lives int

	ship          shipState
	formation     formationState
	playerBullets bulletPool
	enemyBullets  bulletPool
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes/restarts the game from the platform side: it loads
// the tuning config, seeds the RNG and puts the round in its initial
// state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.playerBullets = newBulletPool(cfg.Bullets.PlayerCapacity)
	g.enemyBullets = newBulletPool(cfg.Bullets.EnemyCapacity)
	g.formation.aliens = make([]vitality, cfg.Formation.Row1Count+cfg.Formation.Row2Count)

	g.resetRound()
}

// resetRound restores the initial round state: ship centered low with
// full lives, every alien alive at the start origin, both bullet pools
// empty, player allowed to fire immediately, aliens on their base wait.
// The RNG stream is deliberately left alone so a full session stays
// reproducible across rounds.
func (g *Game) resetRound() {
	g.phase = phaseRunning
	g.score = 0
	g.lives = g.cfg.Ship.Lives

	g.ship = shipState{
		x:   g.cfg.Ship.StartX,
		y:   g.cfg.Ship.StartY,
		vit: newVitality(),
	}

	f := &g.formation
	f.originX = ToFixed(g.cfg.Formation.StartX)
	f.originY = g.cfg.Formation.StartY
	f.dx = Fixed(g.cfg.Formation.BaseSpeed)
	f.fireWait = g.cfg.Formation.FireWait
	f.remaining = len(f.aliens)
	for i := range f.aliens {
		f.aliens[i] = newVitality()
	}

	g.playerBullets.reset()
	g.enemyBullets.reset()
}

// endRound freezes the simulation and hands control to the restart
// gesture. Reaching it with zero aliens left is a win, any other way a
// loss; the player is shown the same screen either way.
func (g *Game) endRound() {
	g.phase = phaseOverAwaitRelease
}

// Step advances the simulation by one tick. The per-entity order within
// a tick is fixed: ship movement and firing, ship death animation, win
// check, alien fire selection, the formation sweep (which resolves
// player-bullet collisions inline), formation drift, then both bullet
// advances. A just-spawned player bullet therefore starts at the ship
// and can never be collision-tested against it, and an alien killed
// during the sweep is not redrawn later in the same tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case phaseOverAwaitRelease:
		// Wait for the player to let go of whatever ended the round.
		if !in.Any() {
			g.phase = phaseOverAwaitPress
		}
		return core.StepResult{State: g.State()}

	case phaseOverAwaitPress:
		if in.Any() {
			g.resetRound()
		}
		return core.StepResult{State: g.State()}
	}

	g.stepShip(in)
	if g.phase != phaseRunning {
		return core.StepResult{State: g.State()}
	}

	// Clearing the formation ends the round exactly like losing does.
	if g.formation.remaining <= 0 {
		g.endRound()
		return core.StepResult{State: g.State()}
	}

	shooter := g.selectShooter()
	g.stepFormation(shooter)
	if g.phase != phaseRunning {
		return core.StepResult{State: g.State()}
	}

	g.formation.originX += g.formation.dx

	g.stepPlayerBullets()
	g.stepEnemyBullets()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.phase != phaseRunning
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: over,
		Cleared:  over && g.formation.remaining <= 0,
	}
}
