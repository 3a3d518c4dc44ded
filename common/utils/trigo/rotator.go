package trigo

import "math/rand"

type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Rotator emits candidate directions around a starting heading in a
// zigzag order: +0, -1, +1, -2, +2, ... (or the mirrored order),
// covering the whole ring exactly once, nearest offsets first and the
// opposite direction last. The sequence is finite and consumed once.
type Rotator struct {
	direction Direction
	times     int
	rotation  Rotation
}

// NewRotator seeds a rotator on the given direction, with a handedness
// drawn once from rng so worms do not all skirt obstacles the same way.
func NewRotator(direction Direction, rng *rand.Rand) *Rotator {
	rotation := Clockwise
	if rng.Intn(2) == 1 {
		rotation = CounterClockwise
	}
	return &Rotator{
		direction: direction,
		times:     0,
		rotation:  rotation,
	}
}

// Next returns the following candidate direction, or false once all
// NbDirections candidates have been emitted.
func (r *Rotator) Next() (Direction, bool) {
	if r.times == NbDirections {
		return Direction{}, false
	}
	r.times++
	return r.direction.Add(shift(r.times-1, r.rotation)), true
}

// shift computes the signed sector offset for the nth emission.
func shift(iteration int, rotation Rotation) Direction {
	if iteration == 0 {
		return MakeDirection(0)
	}
	value := 1 + (iteration-1)/2
	if (iteration-1)%2 == 0 {
		value = -value
	}
	if rotation == CounterClockwise {
		value = -value
	}
	return MakeDirection(value)
}
