package invaders

import (
	"testing"

	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
)

func TestShipClampsToScreenEdges(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)
	maxX := g.cfg.Screen.Width - g.cfg.Ship.Width

	for i := 0; i < 100; i++ {
		g.Step(press(core.ActionLeft))
		if x := g.ship.x; x < 0 || x > maxX {
			t.Fatalf("tick %d: ship x = %d outside [0,%d]", i, x, maxX)
		}
	}
	if g.ship.x != 0 {
		t.Errorf("ship x = %d after holding left, expected 0", g.ship.x)
	}

	for i := 0; i < 100; i++ {
		g.Step(press(core.ActionRight))
		if x := g.ship.x; x < 0 || x > maxX {
			t.Fatalf("tick %d: ship x = %d outside [0,%d]", i, x, maxX)
		}
	}
	if g.ship.x != maxX {
		t.Errorf("ship x = %d after holding right, expected %d", g.ship.x, maxX)
	}
}

func TestFireGating(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	g.Step(press(core.ActionFire))
	if got := g.playerBullets.activeCount(); got != 1 {
		t.Fatalf("bullets = %d after first shot, expected 1", got)
	}
	b := g.playerBullets.slots[0]
	if b.X != 64 || b.Y != 49 {
		t.Errorf("first bullet at (%d,%d), expected (64,49)", b.X, b.Y)
	}
	if g.ship.fireWait != g.cfg.Ship.FireWait {
		t.Errorf("fireWait = %d after the shot, expected %d",
			g.ship.fireWait, g.cfg.Ship.FireWait)
	}

	// Holding fire through the cool-down must not shoot again.
	for i := 0; i < g.cfg.Ship.FireWait-1; i++ {
		g.Step(press(core.ActionFire))
	}
	if got := g.playerBullets.activeCount(); got != 1 {
		t.Fatalf("bullets = %d during cool-down, expected 1", got)
	}

	g.Step(press(core.ActionFire))
	if got := g.playerBullets.activeCount(); got != 2 {
		t.Errorf("bullets = %d once the cool-down expired, expected 2", got)
	}
}

func TestNoFireWithoutAction(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)
	for i := 0; i < 20; i++ {
		g.Step(core.InputFrame{})
	}
	if got := g.playerBullets.activeCount(); got != 0 {
		t.Errorf("bullets = %d without fire input, expected 0", got)
	}
}

func TestPlayerBulletRetiresAtTop(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	g.playerBullets.spawn(5, 3)
	for i := 0; i < 3; i++ {
		g.Step(core.InputFrame{})
	}
	if g.playerBullets.activeCount() != 0 {
		t.Error("bullet should retire when it reaches the top edge")
	}
}

func TestEnemyBulletKillsOnlySteadyShip(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	// Drop a bullet straight onto the ship.
	g.enemyBullets.spawn(64, 49)
	g.Step(core.InputFrame{})

	if g.ship.vit.fullyAlive() {
		t.Fatal("ship should be dying after a direct hit")
	}
	if g.enemyBullets.activeCount() != 0 {
		t.Error("the hitting bullet should be spent")
	}
	if g.Snapshot().Lives != 3 {
		t.Error("lives only drop when the death animation finishes")
	}

	// A second hit during the animation is absorbed without restarting it.
	ticksBefore := g.ship.vit.ticks
	g.enemyBullets.spawn(64, 49)
	g.Step(core.InputFrame{})

	if g.enemyBullets.activeCount() != 0 {
		t.Error("a bullet hitting a dying ship is still spent")
	}
	if g.ship.vit.ticks != ticksBefore-1 {
		t.Errorf("animation ticks = %d, expected %d: a dying ship must not be re-killed",
			g.ship.vit.ticks, ticksBefore-1)
	}
}

func TestShipDeathResetsFireWaits(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)

	g.Step(press(core.ActionFire)) // ship cool-down now at its maximum
	g.ship.vit.kill(g.cfg.Gameplay.DyingTicks)
	for i := 0; i < g.cfg.Gameplay.DyingTicks; i++ {
		g.Step(core.InputFrame{})
	}

	if g.Snapshot().Lives != 2 {
		t.Fatalf("lives = %d after the death animation, expected 2", g.Snapshot().Lives)
	}
	if !g.ship.vit.fullyAlive() {
		t.Error("ship should respawn in its steady state")
	}
	if g.ship.fireWait != 0 {
		t.Errorf("ship fireWait = %d after respawn, expected 0", g.ship.fireWait)
	}
	// The death tick's own fire selection has already consumed one tick
	// of the freshly reset alien wait.
	if g.formation.fireWait != g.cfg.Formation.FireWait-1 {
		t.Errorf("alien fireWait = %d after respawn, expected %d",
			g.formation.fireWait, g.cfg.Formation.FireWait-1)
	}
}

func TestFinalLifeEndsRoundWithoutDecrement(t *testing.T) {
	g := newTestGame(1)
	muteAliens(g)
	g.lives = 1

	g.ship.vit.kill(g.cfg.Gameplay.DyingTicks)
	for i := 0; i < g.cfg.Gameplay.DyingTicks; i++ {
		g.Step(core.InputFrame{})
	}

	state := g.State()
	if !state.GameOver {
		t.Fatal("losing the last life should end the round")
	}
	if state.Lives != 1 {
		t.Errorf("lives = %d, the last life stays on the counter", state.Lives)
	}
}
