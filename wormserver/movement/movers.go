package movement

import (
	"math/rand"

	"github.com/leomalta/worms/common/utils/vector"
	"github.com/leomalta/worms/wormserver/state"
)

// Collision tolerances. The chasing tolerance is looser so a predator
// can butt right up against the bodies it weaves through.
const (
	aliveCollisionEpsilon   = 0.01
	chasingCollisionEpsilon = 0.1
)

// AliveWormMover seeks rewards. Every live segment of every worm,
// including the mover's own, is an obstacle.
type AliveWormMover struct {
	Details Details
	Rewards []vector.Point
	Bodies  []*state.WormBody
}

func (m *AliveWormMover) MovementDetails() Details {
	return m.Details
}

func (m *AliveWormMover) SelectTarget(rng *rand.Rand) (int, vector.Point) {
	bestId := -1
	bestDistance := 0.0
	for pos, reward := range m.Rewards {
		if !m.Details.InRange(reward) {
			continue
		}
		distance := m.Details.Origin.DistanceTo(reward)
		if bestId < 0 || distance < bestDistance {
			bestId, bestDistance = pos, distance
		}
	}
	if bestId >= 0 {
		return bestId, m.Rewards[bestId]
	}
	return adjustTarget(m.Details, rng)
}

func (m *AliveWormMover) Collides(candidate vector.Point, stepDistance float64) bool {
	limit := stepDistance - aliveCollisionEpsilon
	return anyBody(m.Bodies, func(body *state.WormBody) bool {
		for i := 0; i < body.Size(); i++ {
			if body.At(i).DistanceTo(candidate) < limit {
				return true
			}
		}
		return false
	})
}

// ChasingWormMover hunts the tail of other alive worms. Rewards are
// obstacles, and so is every segment of every worm except the tails of
// alive ones, which remain valid strike points.
type ChasingWormMover struct {
	Details   Details
	Rewards   []vector.Point
	Bodies    []*state.WormBody
	Behaviors []state.WormBehavior
}

func (m *ChasingWormMover) MovementDetails() Details {
	return m.Details
}

func (m *ChasingWormMover) SelectTarget(rng *rand.Rand) (int, vector.Point) {
	bestId := -1
	bestDistance := 0.0
	for pos, body := range m.Bodies {
		// the mover itself is chasing, never alive, so it cannot
		// select its own tail
		if m.Behaviors[pos].State != state.StateAlive {
			continue
		}
		tail := body.Tail()
		if !m.Details.InRange(tail) {
			continue
		}
		distance := m.Details.Origin.DistanceTo(tail)
		if bestId < 0 || distance < bestDistance {
			bestId, bestDistance = pos, distance
		}
	}
	if bestId >= 0 {
		return bestId, m.Bodies[bestId].Tail()
	}
	return adjustTarget(m.Details, rng)
}

func (m *ChasingWormMover) Collides(candidate vector.Point, stepDistance float64) bool {
	limit := stepDistance - chasingCollisionEpsilon

	blocked := anyBodyIndexed(m.Bodies, func(pos int, body *state.WormBody) bool {
		segments := body.Size()
		if m.Behaviors[pos].State == state.StateAlive {
			segments-- // the tail of an alive worm is a target, not an obstacle
		}
		for i := 0; i < segments; i++ {
			if body.At(i).DistanceTo(candidate) < limit {
				return true
			}
		}
		return false
	})
	if blocked {
		return true
	}

	return anyPoint(m.Rewards, func(reward vector.Point) bool {
		return reward.DistanceTo(candidate) < limit
	})
}
