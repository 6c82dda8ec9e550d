package invaders

// vitalityState is the liveness of a ship or alien.
type vitalityState uint8

const (
	stateAlive vitalityState = iota
	stateDying
	stateDead
)

// vitality models the alive / dying / dead lifecycle of an entity
// together with its flashing death animation. A dying entity counts
// down a fixed number of ticks and is drawn only on odd counts, which
// produces the alternating draw/skip flicker; hitting zero is the one
// and only death transition.
type vitality struct {
	state vitalityState
	ticks int
}

// newVitality returns a fully alive vitality.
func newVitality() vitality {
	return vitality{state: stateAlive}
}

// alive reports whether the entity still counts as present in the
// simulation (fully alive or mid-death-animation).
func (v vitality) alive() bool {
	return v.state != stateDead
}

// fullyAlive reports whether the entity is in its steady state, not
// flashing. Only a fully alive ship can be hit again.
func (v vitality) fullyAlive() bool {
	return v.state == stateAlive
}

// visible reports whether the entity is drawn this tick. Dying entities
// flash: drawn on odd remaining-tick counts, skipped on even ones.
func (v vitality) visible() bool {
	switch v.state {
	case stateAlive:
		return true
	case stateDying:
		return v.ticks%2 == 1
	default:
		return false
	}
}

// kill starts (or restarts) the death animation with the given length.
// Killing a dead entity has no effect.
func (v *vitality) kill(dyingTicks int) {
	if v.state == stateDead {
		return
	}
	v.state = stateDying
	v.ticks = dyingTicks
}

// advance moves the death animation forward one tick and reports whether
// the entity died on this exact tick.
func (v *vitality) advance() bool {
	if v.state != stateDying {
		return false
	}
	v.ticks--
	if v.ticks <= 0 {
		v.state = stateDead
		v.ticks = 0
		return true
	}
	return false
}
