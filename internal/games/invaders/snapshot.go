package invaders

// RoundPhase mirrors the internal round lifecycle for snapshots.
type RoundPhase string

const (
	PhaseRunning      RoundPhase = "running"
	PhaseAwaitRelease RoundPhase = "await_release"
	PhaseAwaitPress   RoundPhase = "await_press"
)

// Snapshot captures the observable simulation state for determinism
// testing and replay comparison.
type Snapshot struct {
	Tick          uint64
	Phase         RoundPhase
	Score         int
	Lives         int
	ShipX         int
	ShipY         int
	ShipVisible   bool
	PlayerWait    int
	EnemyWait     int
	Remaining     int
	OriginXMilli  int
	OriginY       int
	SpeedMilli    int
	PlayerBullets int
	EnemyBullets  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var ph RoundPhase
	switch g.phase {
	case phaseOverAwaitRelease:
		ph = PhaseAwaitRelease
	case phaseOverAwaitPress:
		ph = PhaseAwaitPress
	default:
		ph = PhaseRunning
	}

	return Snapshot{
		Tick:          g.tick,
		Phase:         ph,
		Score:         g.score,
		Lives:         g.lives,
		ShipX:         g.ship.x,
		ShipY:         g.ship.y,
		ShipVisible:   g.ship.vit.visible(),
		PlayerWait:    g.ship.fireWait,
		EnemyWait:     g.formation.fireWait,
		Remaining:     g.formation.remaining,
		OriginXMilli:  int(g.formation.originX),
		OriginY:       g.formation.originY,
		SpeedMilli:    int(g.formation.dx),
		PlayerBullets: g.playerBullets.activeCount(),
		EnemyBullets:  g.enemyBullets.activeCount(),
	}
}
