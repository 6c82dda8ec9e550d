package invaders

// Fixed-point scale factor: 1 pixel = 1000 units.
// The formation drifts by half a pixel per tick at base speed and its
// velocity is scaled by a permille factor on every bounce, so sub-pixel
// precision is needed while keeping the simulation fully deterministic.
const Scale = 1000

// Fixed represents a fixed-point pixel coordinate or velocity
// (scaled by Scale).
type Fixed int

// ToFixed converts a pixel coordinate to fixed-point.
func ToFixed(px int) Fixed {
	return Fixed(px * Scale)
}

// Pixels converts fixed-point to a pixel coordinate, truncating toward
// zero the way the formation sweep expects.
func (f Fixed) Pixels() int {
	return int(f) / Scale
}

// ScalePermille multiplies by p/1000 in integer arithmetic.
func (f Fixed) ScalePermille(p int) Fixed {
	return Fixed(int(f) * p / 1000)
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}
