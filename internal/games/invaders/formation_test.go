package invaders

import (
	"testing"

	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
)

func TestBounceAtLeftEdge(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	g.formation.originX = ToFixed(0)
	g.formation.dx = -Fixed(500)
	g.Step(core.InputFrame{})

	snap := g.Snapshot()
	if snap.SpeedMilli != 600 {
		t.Errorf("dx = %d after the bounce, expected 600 (reversed and sped up)", snap.SpeedMilli)
	}
	if snap.OriginY != g.cfg.Formation.Descent {
		t.Errorf("originY = %d after the bounce, expected %d", snap.OriginY, g.cfg.Formation.Descent)
	}
	// The drift after the sweep already uses the new velocity.
	if snap.OriginXMilli != 600 {
		t.Errorf("originX = %d milli, expected 600", snap.OriginXMilli)
	}
}

func TestBounceAtRightEdge(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	// Origin 48 puts the right-most first-row alien flush against x=128.
	g.formation.originX = ToFixed(48)
	g.formation.dx = Fixed(500)
	g.Step(core.InputFrame{})

	snap := g.Snapshot()
	if snap.SpeedMilli != -600 {
		t.Errorf("dx = %d after the bounce, expected -600", snap.SpeedMilli)
	}
	if snap.OriginY != g.cfg.Formation.Descent {
		t.Errorf("originY = %d after the bounce, expected %d", snap.OriginY, g.cfg.Formation.Descent)
	}
}

func TestAlienReachingFloorEndsRound(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	g.formation.originY = g.cfg.Screen.Height - g.cfg.Formation.AlienHeight
	g.Step(core.InputFrame{})

	if !g.State().GameOver {
		t.Error("an alien touching the floor should end the round")
	}
	if g.Snapshot().Lives != 3 {
		t.Error("the floor loss bypasses the lives counter")
	}
}

func TestPlayerBulletKillsAlien(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	target := 2
	x, y := g.alienPos(target)
	g.playerBullets.spawn(x+g.cfg.Formation.AlienWidth/2, y+g.cfg.Formation.AlienHeight/2)
	g.Step(core.InputFrame{})

	alien := &g.formation.aliens[target]
	if alien.fullyAlive() || !alien.alive() {
		t.Fatal("hit alien should be dying, not gone")
	}
	if g.playerBullets.activeCount() != 0 {
		t.Error("the hitting bullet should be spent")
	}
	snap := g.Snapshot()
	if snap.Remaining != 9 || snap.Score != 0 {
		t.Errorf("remaining/score = %d/%d during the animation, expected 9/0",
			snap.Remaining, snap.Score)
	}

	// The hit tick already advanced the animation once; play out the rest.
	for i := 0; i < g.cfg.Gameplay.DyingTicks-1; i++ {
		g.Step(core.InputFrame{})
	}
	snap = g.Snapshot()
	if snap.Remaining != 8 {
		t.Errorf("remaining = %d after the animation, expected 8", snap.Remaining)
	}
	if snap.Score != g.cfg.Gameplay.PointsPerAlien {
		t.Errorf("score = %d, expected %d", snap.Score, g.cfg.Gameplay.PointsPerAlien)
	}
	if alien.alive() {
		t.Error("alien should be gone once its animation finishes")
	}
}

func TestAlienFireCadence(t *testing.T) {
	g := newTestGame(5)
	wait := g.cfg.Formation.FireWait

	for i := 0; i < wait-1; i++ {
		g.Step(core.InputFrame{})
		if got := g.enemyBullets.activeCount(); got != 0 {
			t.Fatalf("tick %d: enemy bullets = %d before the wait expired", i+1, got)
		}
	}

	g.Step(core.InputFrame{})
	if got := g.enemyBullets.activeCount(); got != 1 {
		t.Fatalf("enemy bullets = %d when the wait expired, expected 1", got)
	}
	if g.Snapshot().EnemyWait != wait {
		t.Errorf("enemy fireWait = %d after the shot, expected %d", g.Snapshot().EnemyWait, wait)
	}

	// The bullet leaves the shooter's front-middle, one row height below
	// its top, and has already fallen one pixel this tick.
	var b bullet
	for _, s := range g.enemyBullets.slots {
		if s.Active {
			b = s
			break
		}
	}
	row1Front := g.formation.originY + g.cfg.Formation.AlienHeight
	row2Front := row1Front + g.cfg.Formation.AlienHeight
	if got := b.Y - g.cfg.Bullets.EnemySpeed; got != row1Front && got != row2Front {
		t.Errorf("enemy bullet spawned at y=%d, expected %d or %d", got, row1Front, row2Front)
	}

	for i := 0; i < wait-1; i++ {
		g.Step(core.InputFrame{})
	}
	if got := g.enemyBullets.activeCount(); got != 1 {
		t.Fatalf("enemy bullets = %d between shots, expected 1", got)
	}
	g.Step(core.InputFrame{})
	if got := g.enemyBullets.activeCount(); got != 2 {
		t.Errorf("enemy bullets = %d after the second wait, expected 2", got)
	}
}

// remaining must equal the number of aliens still alive after every tick,
// no matter how the round unfolds.
func TestRemainingTracksLiveAliens(t *testing.T) {
	g := newTestGame(1234)

	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionFire)
		if i%10 < 5 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
		g.Step(in)

		live := 0
		for idx := range g.formation.aliens {
			if g.formation.aliens[idx].alive() {
				live++
			}
		}
		if live != g.formation.remaining {
			t.Fatalf("tick %d: remaining = %d but %d aliens are alive",
				i, g.formation.remaining, live)
		}
		if g.Snapshot().Phase != PhaseRunning {
			break
		}
	}
}
