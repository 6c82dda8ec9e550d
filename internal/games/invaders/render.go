package invaders

import (
	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
)

// The fixed three-line screen shown when a round ends. Winning shows the
// same text as losing; there are no further levels.
const (
	gameOverLine1 = "Game Over"
	gameOverLine2 = "Press any key to"
	gameOverLine3 = "play again"
)

// Render draws the current state into the frame: the ship and every
// alien whose death-animation parity has them visible this tick, plus
// all in-flight bullets as two-pixel dashes. During the round-over
// phases only the restart message is shown.
func (g *Game) Render(dst *core.Frame) {
	dst.Clear()

	if g.phase != phaseRunning {
		dst.PrintLine(gameOverLine1, 0)
		dst.PrintLine(gameOverLine2, 1)
		dst.PrintLine(gameOverLine3, 2)
		return
	}

	if g.ship.vit.visible() {
		dst.DrawSprite(shipSprite, g.ship.x, g.ship.y)
	}

	for idx := range g.formation.aliens {
		if g.formation.aliens[idx].visible() {
			x, y := g.alienPos(idx)
			dst.DrawSprite(alienSprite, x, y)
		}
	}

	for i := range g.playerBullets.slots {
		if b := g.playerBullets.slots[i]; b.Active {
			drawBullet(dst, b.X, b.Y)
		}
	}
	for i := range g.enemyBullets.slots {
		if b := g.enemyBullets.slots[i]; b.Active {
			drawBullet(dst, b.X, b.Y)
		}
	}
}

// drawBullet plots a bullet as a vertical two-pixel dash.
func drawBullet(dst *core.Frame, x, y int) {
	dst.SetPixel(x, y)
	dst.SetPixel(x, y+1)
}
