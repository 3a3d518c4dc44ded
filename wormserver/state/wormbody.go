package state

import (
	"math/rand"
	"strings"

	"github.com/leomalta/worms/common/utils/trigo"
	"github.com/leomalta/worms/common/utils/vector"
)

// MaxBodySize is the fixed capacity of every worm body. A worm that
// reaches it must be split by the scene before it can grow again.
const MaxBodySize = 64

// WormBody is a fixed-capacity ring buffer of body segments, ordered
// head to tail, emulating a bounded deque with no allocation on the
// movement path. The zero value is a valid empty body.
//
// Invariants maintained by the scene: size <= MaxBodySize, and
// Head/Tail are only called on bodies with size > 0.
type WormBody struct {
	start  int
	size   int
	parts  [MaxBodySize]vector.Point
	target vector.Point
}

// NewWormBody builds a body of the given size whose segments extend
// backward from head along the given direction, spaced twice the
// segment radius apart. The caller guarantees 1 <= size <= MaxBodySize.
func NewWormBody(size int, head vector.Point, direction trigo.Direction, partRadius float64) *WormBody {
	body := &WormBody{
		start:  size - 1,
		size:   size,
		target: head,
	}
	body.parts[size-1] = head
	for i := size - 1; i >= 1; i-- {
		body.parts[i-1] = direction.Advance(body.parts[i], partRadius*2)
	}
	return body
}

// MakeRandomWormBody spawns a body at a random position and heading
// within the given world bounds.
func MakeRandomWormBody(rng *rand.Rand, size int, partRadius float64, width float64, height float64) *WormBody {
	return NewWormBody(
		size,
		vector.MakeRandomPoint(rng, width, height),
		trigo.MakeRandomDirection(rng),
		partRadius,
	)
}

func (b *WormBody) Head() vector.Point {
	return b.parts[b.start]
}

func (b *WormBody) Tail() vector.Point {
	return b.parts[(MaxBodySize+b.start-b.size+1)%MaxBodySize]
}

func (b *WormBody) Size() int {
	return b.size
}

func (b *WormBody) Full() bool {
	return b.size == MaxBodySize
}

func (b *WormBody) AvailableSpace() int {
	return MaxBodySize - b.size
}

// SetSize truncates (or logically restores) the body from the tail
// end; the head is unaffected.
func (b *WormBody) SetSize(size int) {
	b.size = size
}

// Target is the remembered steering destination of the last committed move.
func (b *WormBody) Target() vector.Point {
	return b.target
}

// At returns the ith segment counting from the head (At(0) == Head).
// The caller guarantees 0 <= i < Size.
func (b *WormBody) At(i int) vector.Point {
	return b.parts[(MaxBodySize+b.start-i)%MaxBodySize]
}

// AtFromTail returns the ith segment counting from the tail
// (AtFromTail(0) == Tail).
func (b *WormBody) AtFromTail(i int) vector.Point {
	return b.At(b.size - 1 - i)
}

// Roll advances the head by one slot, dropping the tail: a constant
// length step. The steering destination that produced the step is
// remembered for the next tick.
func (b *WormBody) Roll(part vector.Point, target vector.Point) {
	b.start = (b.start + 1) % MaxBodySize
	b.parts[b.start] = part
	b.target = target
}

// Grow rolls a new head in without dropping the tail, lengthening the
// body by one segment, capped at capacity. The new head becomes the
// remembered destination, which effectively clears any previous one.
func (b *WormBody) Grow(part vector.Point) {
	b.Roll(part, part)
	if b.size < MaxBodySize {
		b.size++
	}
}

// Shrink detaches the n foremost segments. The caller guarantees n <= Size.
func (b *WormBody) Shrink(n int) {
	b.start = (MaxBodySize + b.start - n) % MaxBodySize
	b.size -= n
}

// Shift rigidly translates every live segment by delta.
func (b *WormBody) Shift(delta vector.Point) {
	for i := 0; i < b.size; i++ {
		pos := (MaxBodySize + b.start - i) % MaxBodySize
		b.parts[pos] = b.parts[pos].Add(delta)
	}
}

func (b *WormBody) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < b.size; i++ {
		sb.WriteString(b.At(i).String())
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}
