package wormserver

import (
	"math/rand"

	petname "github.com/dustinkirkland/golang-petname"
	uuid "github.com/satori/go.uuid"

	"github.com/leomalta/worms/common/utils/trigo"
	"github.com/leomalta/worms/common/utils/vector"
	"github.com/leomalta/worms/wormserver/movement"
	"github.com/leomalta/worms/wormserver/state"
)

// SceneParameters are the simulation constants, externally validated
// before they reach the scene.
type SceneParameters struct {
	WormSize   int     // segments of a freshly spawned worm
	PartRadius float64 // radius of one body segment
	Starvation int     // base miss budget, scaled down by body size
	Expiration int     // ticks a dead worm lingers before removal
}

// sceneContent holds the index-aligned slot collections. A slot
// outlives the worms that occupy it: identity (id, name) is replaced
// whenever a Removed slot is reactivated by a split.
type sceneContent struct {
	behaviors []state.WormBehavior
	bodies    []*state.WormBody
	ids       []uuid.UUID
	names     []string

	rewards     []vector.Point
	rewardDests []vector.Point
}

func makeRandomContent(rng *rand.Rand, nbWorms int, nbRewards int, wormSize int, partRadius float64, width float64, height float64) sceneContent {
	content := sceneContent{
		behaviors:   make([]state.WormBehavior, nbWorms),
		bodies:      make([]*state.WormBody, nbWorms),
		ids:         make([]uuid.UUID, nbWorms),
		names:       make([]string, nbWorms),
		rewards:     make([]vector.Point, nbRewards),
		rewardDests: make([]vector.Point, nbRewards),
	}
	for i := 0; i < nbWorms; i++ {
		content.behaviors[i] = state.Alive(0)
		content.bodies[i] = state.MakeRandomWormBody(rng, wormSize, partRadius, width, height)
		content.ids[i] = uuid.NewV4()
		content.names[i] = petname.Generate(2, "-")
	}
	for i := 0; i < nbRewards; i++ {
		content.rewards[i] = vector.MakeRandomPoint(rng, width, height)
		content.rewardDests[i] = vector.MakeRandomPoint(rng, width, height)
	}
	return content
}

// TickSummary counts what happened during one Execute call.
type TickSummary struct {
	RewardsEaten int
	Splits       int
	Merges       int
	Deaths       int
	Expirations  int
}

// Scene owns the whole simulation state and advances it one tick at a
// time. It is not safe for concurrent use; the server serializes access.
type Scene struct {
	params  SceneParameters
	width   float64
	height  float64
	stats   state.WormStats
	content sceneContent
	rng     *rand.Rand

	lastSummary TickSummary
}

// NewScene builds a fully randomized scene. Every random draw of the
// simulation flows through rng, so a seeded source makes runs
// reproducible.
func NewScene(width float64, height float64, params SceneParameters, nbWorms int, nbRewards int, rng *rand.Rand) *Scene {
	return &Scene{
		params:  params,
		width:   width,
		height:  height,
		stats:   state.MakeDefaultWormStats(),
		content: makeRandomContent(rng, nbWorms, nbRewards, params.WormSize, params.PartRadius, width, height),
		rng:     rng,
	}
}

func (s *Scene) Params() SceneParameters {
	return s.params
}

func (s *Scene) Width() float64 {
	return s.width
}

func (s *Scene) Height() float64 {
	return s.height
}

// Resize updates the world bounds used by subsequent ticks.
func (s *Scene) Resize(width float64, height float64) {
	s.width = width
	s.height = height
}

// WormView is the read-only per-slot projection handed to observers.
type WormView struct {
	Behavior state.WormBehavior
	Id       uuid.UUID
	Name     string
	Body     *state.WormBody
}

// EachWorm visits every slot, including Removed ones, in slot order.
func (s *Scene) EachWorm(visit func(view WormView)) {
	for i := range s.content.behaviors {
		visit(WormView{
			Behavior: s.content.behaviors[i],
			Id:       s.content.ids[i],
			Name:     s.content.names[i],
			Body:     s.content.bodies[i],
		})
	}
}

// Rewards exposes the current reward positions; treat as read-only.
func (s *Scene) Rewards() []vector.Point {
	return s.content.rewards
}

func (s *Scene) LastSummary() TickSummary {
	return s.lastSummary
}

// Execute advances the simulation by one tick: every worm slot in
// order, then the reward wander. All effects are observable through
// the accessors.
func (s *Scene) Execute() {
	summary := TickSummary{}
	s.updateWorms(&summary)
	s.updateRewards()
	s.lastSummary = summary
}

func (s *Scene) updateWorms(summary *TickSummary) {
	// slots appended by a split this tick start acting next tick
	count := len(s.content.behaviors)

	for wormId := 0; wormId < count; wormId++ {
		behavior := s.content.behaviors[wormId]
		switch behavior.State {

		case state.StateAlive:
			if s.content.bodies[wormId].Full() {
				s.content.behaviors[wormId] = s.splitWorm(wormId, summary)
			} else {
				s.content.behaviors[wormId] = s.executeAlive(wormId, behavior.Counter, summary)
			}

		case state.StateDead:
			if behavior.Counter < s.params.Expiration {
				s.content.behaviors[wormId] = state.Dead(behavior.Counter + 1)
			} else {
				s.content.behaviors[wormId] = state.Removed()
				s.content.bodies[wormId].SetSize(0)
				summary.Expirations++
			}

		case state.StateChasing:
			result := s.executeChasing(wormId, summary)
			if result.State == state.StateChasing {
				// predators move twice per tick
				result = s.executeChasing(wormId, summary)
			}
			s.content.behaviors[wormId] = result

		case state.StateRemoved:
			// dormant slot
		}
	}
}

// updateRewards advances every reward one step toward its private
// wander destination. A reward that reaches it, or would leave the
// world, respawns at a random position.
func (s *Scene) updateRewards() {
	for i := range s.content.rewards {
		direction := trigo.DirectionBetween(s.content.rewards[i], s.content.rewardDests[i])
		moved := direction.Advance(s.content.rewards[i], s.params.PartRadius/4)

		x, y := moved.Get()
		valid := x >= 0 && x <= s.width && y >= 0 && y <= s.height &&
			s.content.rewardDests[i].DistanceTo(moved) >= s.params.PartRadius

		if valid {
			s.content.rewards[i] = moved
		} else {
			s.content.rewards[i] = vector.MakeRandomPoint(s.rng, s.width, s.height)
		}
	}
}

func (s *Scene) movementDetails(wormId int) movement.Details {
	return movement.Details{
		Origin:      s.content.bodies[wormId].Head(),
		Destination: s.content.bodies[wormId].Target(),
		Stats:       s.stats,
		Width:       s.width,
		Height:      s.height,
	}
}

func (s *Scene) executeAlive(wormId int, counter int, summary *TickSummary) state.WormBehavior {
	mover := &movement.AliveWormMover{
		Details: s.movementDetails(wormId),
		Rewards: s.content.rewards,
		Bodies:  s.content.bodies,
	}

	result := movement.Execute(mover, s.rng, s.params.PartRadius*2)
	switch result.Kind {

	case movement.TargetHit:
		s.content.rewards[result.TargetId] = vector.MakeRandomPoint(s.rng, s.width, s.height)
		s.content.bodies[wormId].Grow(result.NewHead)
		summary.RewardsEaten++
		return state.Alive(0)

	case movement.TargetMiss:
		s.content.bodies[wormId].Roll(result.NewHead, result.Destination)
		// bigger worms starve faster
		if counter < s.params.Starvation/s.content.bodies[wormId].Size() {
			return state.Alive(counter + 1)
		}
		return state.Chasing()

	default:
		summary.Deaths++
		return state.Dead(0)
	}
}

func (s *Scene) executeChasing(wormId int, summary *TickSummary) state.WormBehavior {
	mover := &movement.ChasingWormMover{
		Details:   s.movementDetails(wormId),
		Rewards:   s.content.rewards,
		Bodies:    s.content.bodies,
		Behaviors: s.content.behaviors,
	}

	result := movement.Execute(mover, s.rng, s.params.PartRadius*2)
	switch result.Kind {

	case movement.TargetHit:
		s.mergeWorms(wormId, result.TargetId)
		summary.Merges++
		return state.Alive(0)

	case movement.TargetMiss:
		s.content.bodies[wormId].Roll(result.NewHead, result.Destination)
		return state.Chasing()

	default:
		summary.Deaths++
		return state.Dead(0)
	}
}

// nextRemovedIndex returns the first slot holding a Removed worm,
// appending a fresh dormant slot when none is free.
func (s *Scene) nextRemovedIndex() int {
	for i, behavior := range s.content.behaviors {
		if behavior.State == state.StateRemoved {
			return i
		}
	}
	s.content.behaviors = append(s.content.behaviors, state.Removed())
	s.content.bodies = append(s.content.bodies, &state.WormBody{})
	s.content.ids = append(s.content.ids, uuid.UUID{})
	s.content.names = append(s.content.names, "")
	return len(s.content.behaviors) - 1
}

// splitWorm divides a worm that grew to capacity: the tail-ward spawn
// run seeds a freshly activated slot, the donor keeps the head-ward
// remainder. Loops until the donor drops below double the spawn size.
func (s *Scene) splitWorm(wormId int, summary *TickSummary) state.WormBehavior {
	donor := s.content.bodies[wormId]

	for donor.Size() >= s.params.WormSize*2 {
		sizeAfterSplit := donor.Size() - s.params.WormSize

		freeIndex := s.nextRemovedIndex()
		s.content.behaviors[freeIndex] = state.Alive(0)
		s.content.ids[freeIndex] = uuid.NewV4()
		s.content.names[freeIndex] = petname.Generate(2, "-")

		// copy the spawn run reading tail-ward; Grow leaves the new
		// worm's destination cleared onto its own head
		for n := 0; n < s.params.WormSize; n++ {
			s.content.bodies[freeIndex].Grow(donor.AtFromTail(n))
		}

		donor.SetSize(sizeAfterSplit)
		summary.Splits++
	}
	return state.Alive(0)
}

// mergeWorms absorbs the tail of the caught worm into the chaser. The
// chaser's head is detached, its body is aligned right behind the
// target's tail, and as many segments as fit are transferred. Mass is
// conserved minus the detached head; the target survives, shrunk,
// unless fully absorbed.
func (s *Scene) mergeWorms(wormId int, targetId int) {
	chaser := s.content.bodies[wormId]
	target := s.content.bodies[targetId]

	chaser.Shrink(1)
	gap := target.Tail().Sub(chaser.Head())
	chaser.Shift(gap)

	originalSize := chaser.Size()
	transferable := min(chaser.AvailableSpace(), target.Size())
	for n := 0; n < transferable; n++ {
		chaser.Grow(target.AtFromTail(n))
	}

	transferred := chaser.Size() - originalSize
	remaining := target.Size() - transferred
	target.SetSize(remaining)
	if remaining == 0 {
		s.content.behaviors[targetId] = state.Removed()
	}
}
