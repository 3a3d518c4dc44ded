package movement

import (
	"math/rand"

	"github.com/leomalta/worms/common/utils/trigo"
	"github.com/leomalta/worms/common/utils/vector"
	"github.com/leomalta/worms/wormserver/state"
)

// Details is the read-only movement context of one worm for one tick.
type Details struct {
	Origin      vector.Point // current head
	Destination vector.Point // remembered steering destination
	Stats       state.WormStats
	Width       float64
	Height      float64
}

// InRange checks whether a candidate target falls inside the worm's
// vision cone and distance cutoff. The cone is centered on the bearing
// from the head toward the remembered destination.
func (d Details) InRange(target vector.Point) bool {
	heading := trigo.DirectionBetween(d.Origin, d.Destination)
	return heading.Connect(d.Origin, target, d.Stats.VisionAngle) &&
		d.Origin.DistanceTo(target) < d.Stats.VisionDistance
}

type ResultKind byte

const (
	// NoMove: every candidate direction was blocked; the worm cannot
	// move at all this tick.
	NoMove ResultKind = iota
	// TargetHit: the accepted step lands on the selected target.
	TargetHit
	// TargetMiss: a step was committed without reaching a target.
	TargetMiss
)

// Result is the outcome of one movement attempt. The scene commits it;
// movers never mutate state themselves.
type Result struct {
	Kind        ResultKind
	TargetId    int          // selected target index, for TargetHit
	NewHead     vector.Point // accepted head, for TargetHit and TargetMiss
	Destination vector.Point // destination to remember, for TargetMiss
}

// Mover abstracts the two targeting/collision rule sets (alive vs
// chasing) behind the shared movement search.
type Mover interface {
	MovementDetails() Details
	// SelectTarget picks the best target and the destination to steer
	// toward; the target index is -1 when steering without a target.
	SelectTarget(rng *rand.Rand) (int, vector.Point)
	// Collides checks a candidate head against the mover's obstacle pool.
	Collides(candidate vector.Point, stepDistance float64) bool
}

// Execute runs one movement attempt: select a destination, then walk
// the rotator's candidate directions (nearest to the ideal bearing
// first) and accept the first in-bounds, collision-free step.
func Execute(mover Mover, rng *rand.Rand, stepDistance float64) Result {
	details := mover.MovementDetails()
	targetId, destination := mover.SelectTarget(rng)

	rotator := trigo.NewRotator(trigo.DirectionBetween(details.Origin, destination), rng)

	for {
		direction, ok := rotator.Next()
		if !ok {
			break
		}

		newHead := direction.Advance(details.Origin, stepDistance)
		if !inBounds(newHead, details.Width, details.Height) {
			continue
		}
		if mover.Collides(newHead, stepDistance) {
			continue
		}

		if targetId >= 0 && newHead.DistanceTo(destination) < stepDistance {
			return Result{Kind: TargetHit, TargetId: targetId, NewHead: newHead}
		}
		return Result{Kind: TargetMiss, NewHead: newHead, Destination: destination}
	}

	return Result{Kind: NoMove}
}

// adjustTarget resolves the steering destination when no target was
// found in range: keep heading to the remembered destination while it
// is beyond vision distance, otherwise wander to a random point.
func adjustTarget(details Details, rng *rand.Rand) (int, vector.Point) {
	if details.Origin.DistanceTo(details.Destination) > details.Stats.VisionDistance {
		return -1, details.Destination
	}
	return -1, vector.MakeRandomPoint(rng, details.Width, details.Height)
}

func inBounds(p vector.Point, width float64, height float64) bool {
	x, y := p.Get()
	return x >= 0 && x <= width && y >= 0 && y <= height
}
