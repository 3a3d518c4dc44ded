package state

// WormState is the coarse lifecycle tag of a worm slot.
type WormState byte

const (
	// StateAlive worms seek rewards; the counter tracks ticks since
	// the last one was eaten and drives starvation.
	StateAlive WormState = iota
	// StateChasing worms are starving and hunt other worms' tails.
	StateChasing
	// StateDead worms decay in place; the counter drives expiration.
	StateDead
	// StateRemoved slots are dormant and reusable by a later split.
	StateRemoved
)

func (s WormState) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateChasing:
		return "chasing"
	case StateDead:
		return "dead"
	case StateRemoved:
		return "removed"
	}
	return "unknown"
}

// WormBehavior pairs the lifecycle state with its tick counter.
type WormBehavior struct {
	State   WormState
	Counter int
}

func Alive(counter int) WormBehavior {
	return WormBehavior{State: StateAlive, Counter: counter}
}

func Chasing() WormBehavior {
	return WormBehavior{State: StateChasing}
}

func Dead(counter int) WormBehavior {
	return WormBehavior{State: StateDead, Counter: counter}
}

func Removed() WormBehavior {
	return WormBehavior{State: StateRemoved}
}
