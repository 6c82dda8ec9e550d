package invaders

import (
	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
)

// noShooter marks a tick on which no alien fires.
const noShooter = -1

// selectShooter runs the alien fire cool-down for this tick. When the
// wait expires and aliens remain, it picks a uniformly random index in
// [0, remaining) and resets the wait; the index is resolved to a concrete
// alien during the sweep by counting down across the visible ones, which
// avoids mapping formation indices to coordinates twice.
func (g *Game) selectShooter() int {
	f := &g.formation
	if f.fireWait > 0 {
		f.fireWait--
		if f.fireWait == 0 && f.remaining > 0 {
			shooter := g.rng.Intn(f.remaining)
			f.fireWait = g.cfg.Formation.FireWait
			return shooter
		}
	}
	return noShooter
}

// alienPos computes the screen position of the alien at formation index
// idx from the shared origin. The second row is indented and sits one
// alien height lower than the first.
func (g *Game) alienPos(idx int) (x, y int) {
	fc := &g.cfg.Formation
	if idx < fc.Row1Count {
		return g.formation.originX.Pixels() + fc.ColumnOffset*idx, g.formation.originY
	}
	col := idx - fc.Row1Count
	return g.formation.originX.Pixels() + fc.Row2OffsetX + fc.ColumnOffset*col,
		g.formation.originY + fc.AlienHeight
}

// stepFormation sweeps both rows in fixed index order. For each visible
// alien it fires the selected shot, bounces the shared velocity off the
// screen edges, checks the floor and resolves player-bullet hits; every
// alien then advances its death animation. The shared velocity and
// descent are mutated in place so a bounce observed on one alien moves
// the whole formation on the same tick.
func (g *Game) stepFormation(shooter int) {
	fc := &g.cfg.Formation

	for idx := range g.formation.aliens {
		alien := &g.formation.aliens[idx]

		if alien.visible() {
			x, y := g.alienPos(idx)

			// The shooter index counts down across visible aliens only;
			// the alien that drives it to exactly zero fires downward
			// from its front-middle.
			if shooter == 0 {
				g.enemyBullets.spawn(x+fc.AlienWidth/2, y+fc.AlienHeight)
				g.formation.fireWait = fc.FireWait
			}
			shooter--

			// Touching either screen edge reverses the shared velocity,
			// speeds it up and drops the whole formation one descent step.
			if x <= 0 || x+fc.AlienWidth >= g.cfg.Screen.Width {
				g.formation.dx = -g.formation.dx.ScalePermille(fc.SpeedUpPermille)
				g.formation.originY += fc.Descent
			}

			// An alien reaching the floor loses the round outright,
			// regardless of remaining lives.
			if y+fc.AlienHeight >= g.cfg.Screen.Height {
				g.endRound()
				return
			}

			g.resolvePlayerBulletHits(alien, x, y)
		}

		if alien.advance() {
			g.formation.remaining--
			g.score += g.cfg.Gameplay.PointsPerAlien
		}
	}
}

// resolvePlayerBulletHits tests every in-flight player bullet against the
// alien occupying the box at (x, y). A hit starts the alien's death
// animation and spends the bullet immediately, so one bullet can never
// kill two aliens in the same tick.
func (g *Game) resolvePlayerBulletHits(alien *vitality, x, y int) {
	fc := &g.cfg.Formation
	box := core.NewRect(x, y, fc.AlienWidth, fc.AlienHeight)

	for i := range g.playerBullets.slots {
		b := &g.playerBullets.slots[i]
		if !b.Active {
			continue
		}
		if box.ContainsInclusive(b.X, b.Y) {
			alien.kill(g.cfg.Gameplay.DyingTicks)
			g.playerBullets.retire(i)
		}
	}
}
