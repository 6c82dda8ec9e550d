package invaders

// bullet is one slot of a pool. Inactive slots are free for reuse; the
// explicit flag replaces the "bullet at the origin means empty" sentinel
// of the classic implementations, so a projectile may legitimately cross
// (0, 0).
type bullet struct {
	X, Y   int
	Active bool
}

// bulletPool is a fixed-capacity circular allocator for in-flight
// projectiles. Spawning always succeeds: when every slot is occupied the
// slot under the cursor is overwritten, silently retiring the oldest
// bullet. That trade-off is structural, not an error path, because the
// fire cool-downs keep the number of simultaneously visible bullets well
// under capacity in normal play.
type bulletPool struct {
	slots  []bullet
	cursor int
}

// newBulletPool creates an empty pool with the given capacity.
func newBulletPool(capacity int) bulletPool {
	return bulletPool{slots: make([]bullet, capacity)}
}

// reset retires every bullet and rewinds the cursor.
func (p *bulletPool) reset() {
	for i := range p.slots {
		p.slots[i] = bullet{}
	}
	p.cursor = 0
}

// spawn claims the slot under the cursor for a bullet at (x, y) and
// advances the cursor, wrapping at capacity.
func (p *bulletPool) spawn(x, y int) {
	p.slots[p.cursor] = bullet{X: x, Y: y, Active: true}
	p.cursor = (p.cursor + 1) % len(p.slots)
}

// retire deactivates the slot at index i.
func (p *bulletPool) retire(i int) {
	p.slots[i].Active = false
}

// activeCount returns the number of in-flight bullets.
func (p *bulletPool) activeCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}
