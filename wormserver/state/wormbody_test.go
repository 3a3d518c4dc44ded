package state

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leomalta/worms/common/utils/trigo"
	"github.com/leomalta/worms/common/utils/vector"
)

func east() trigo.Direction {
	return trigo.DirectionFromAngle(0)
}

func TestNewWormBody(t *testing.T) {
	body := NewWormBody(4, vector.MakeNullPoint(), east(), 5.0)

	assert.Equal(t, 4, body.Size())
	assert.Equal(t, "[ (0.00, 0.00) (10.00, 0.00) (20.00, 0.00) (30.00, 0.00) ]", body.String())
	assert.True(t, body.Head().Equals(vector.MakeNullPoint()))
	assert.True(t, body.Tail().Equals(vector.MakePoint(30, 0)))

	// segments are spaced twice the given radius apart
	for i := 0; i < body.Size()-1; i++ {
		assert.InDelta(t, 10.0, body.At(i).DistanceTo(body.At(i+1)), 1e-9)
	}
}

func TestRollKeepsSize(t *testing.T) {
	body := NewWormBody(4, vector.MakeNullPoint(), east(), 5.0)
	destination := vector.MakePoint(100, 100)

	for i := 0; i < 3*MaxBodySize; i++ {
		newHead := body.Head().Add(vector.MakePoint(-10, 0))
		body.Roll(newHead, destination)

		assert.Equal(t, 4, body.Size())
		assert.True(t, body.Head().Equals(newHead))
		assert.True(t, body.Target().Equals(destination))
	}
}

func TestGrowThenShrinkRoundTrips(t *testing.T) {
	body := NewWormBody(4, vector.MakeNullPoint(), east(), 5.0)
	oldHead := body.Head()
	oldSize := body.Size()

	body.Grow(vector.MakePoint(-10, 0))
	assert.Equal(t, oldSize+1, body.Size())
	assert.True(t, body.Target().Equals(vector.MakePoint(-10, 0)))

	body.Shrink(1)
	assert.Equal(t, oldSize, body.Size())
	assert.True(t, body.Head().Equals(oldHead))
}

func TestGrowCapsAtCapacity(t *testing.T) {
	body := &WormBody{}

	for i := 0; i < MaxBodySize+10; i++ {
		body.Grow(vector.MakePoint(float64(i), 0))
		assert.LessOrEqual(t, body.Size(), MaxBodySize)
	}
	assert.Equal(t, MaxBodySize, body.Size())
	assert.True(t, body.Full())
	assert.Equal(t, 0, body.AvailableSpace())
}

func TestIterationBothWays(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	body := MakeRandomWormBody(rng, 7, 5.0, 500, 500)

	for i := 0; i < body.Size(); i++ {
		assert.True(t, body.At(i).Equals(body.AtFromTail(body.Size()-1-i)))
	}
	assert.True(t, body.At(0).Equals(body.Head()))
	assert.True(t, body.AtFromTail(0).Equals(body.Tail()))
}

func TestShiftTranslatesAllSegments(t *testing.T) {
	body := NewWormBody(5, vector.MakePoint(1, 2), east(), 5.0)
	before := make([]vector.Point, body.Size())
	for i := range before {
		before[i] = body.At(i)
	}

	delta := vector.MakePoint(-3, 8)
	body.Shift(delta)

	for i := range before {
		assert.True(t, body.At(i).Equals(before[i].Add(delta)))
	}
}

func TestFillFromAnotherBodyTail(t *testing.T) {
	donor := NewWormBody(4, vector.MakeNullPoint(), east(), 5.0)
	receiver := &WormBody{}

	// copy the two tail-most segments, reading tail-ward
	for i := 0; i < 2; i++ {
		receiver.Grow(donor.AtFromTail(i))
	}

	assert.Equal(t, "[ (20.00, 0.00) (30.00, 0.00) ]", receiver.String())
}

func TestNewWormBodyFollowsDirection(t *testing.T) {
	north := trigo.DirectionFromAngle(math.Pi / 2)
	body := NewWormBody(3, vector.MakeNullPoint(), north, 2.0)

	assert.InDelta(t, 0, body.At(1).GetX(), 1e-9)
	assert.InDelta(t, 4, body.At(1).GetY(), 1e-9)
	assert.InDelta(t, 8, body.At(2).GetY(), 1e-9)
}
