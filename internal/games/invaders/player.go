package invaders

import (
	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
)

// stepShip handles lateral movement, fire gating and the ship's death
// animation for one tick.
func (g *Game) stepShip(in core.InputFrame) {
	ship := &g.ship
	maxX := g.cfg.Screen.Width - g.cfg.Ship.Width

	if in.Has(core.ActionLeft) {
		ship.x = core.Clamp(ship.x-g.cfg.Ship.MoveStep, 0, maxX)
	}
	if in.Has(core.ActionRight) {
		ship.x = core.Clamp(ship.x+g.cfg.Ship.MoveStep, 0, maxX)
	}

	if ship.fireWait > 0 {
		ship.fireWait--
	}

	// Fire from the front-middle of the ship; the ship's y coordinate is
	// already its top-most point.
	if in.Has(core.ActionFire) && ship.fireWait == 0 {
		g.playerBullets.spawn(ship.x+g.cfg.Ship.Width/2, ship.y)
		ship.fireWait = g.cfg.Ship.FireWait
	}

	if ship.vit.advance() {
		if g.lives > 1 {
			g.lives--
			ship.vit = newVitality()

			// Give the player breathing room after losing a life: an
			// immediate shot for them, a fresh full wait for the aliens.
			ship.fireWait = 0
			g.formation.fireWait = g.cfg.Formation.FireWait
		} else {
			g.endRound()
		}
	}
}

// stepPlayerBullets advances every in-flight player bullet upward and
// retires the ones that leave the screen. The y <= 0 test also covers
// speeds greater than one pixel per tick overshooting the top edge.
func (g *Game) stepPlayerBullets() {
	for i := range g.playerBullets.slots {
		b := &g.playerBullets.slots[i]
		if !b.Active {
			continue
		}
		b.Y -= g.cfg.Bullets.PlayerSpeed
		if b.Y <= 0 {
			g.playerBullets.retire(i)
		}
	}
}

// stepEnemyBullets advances every alien bullet downward, resolves hits
// against the ship and retires bullets past the bottom of the screen.
func (g *Game) stepEnemyBullets() {
	shipBox := core.NewRect(g.ship.x, g.ship.y, g.cfg.Ship.Width, g.cfg.Ship.Height)

	for i := range g.enemyBullets.slots {
		b := &g.enemyBullets.slots[i]
		if !b.Active {
			continue
		}
		b.Y += g.cfg.Bullets.EnemySpeed

		if shipBox.ContainsInclusive(b.X, b.Y) {
			// Only a ship in its steady state can be hit; one already
			// flashing through its death animation is immune. The bullet
			// is spent either way.
			if g.ship.vit.fullyAlive() {
				g.ship.vit.kill(g.cfg.Gameplay.DyingTicks)
			}
			g.enemyBullets.retire(i)
			continue
		}

		if b.Y >= g.cfg.Screen.Height {
			g.enemyBullets.retire(i)
		}
	}
}
