package trigo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/leomalta/worms/common/utils/number"
	"github.com/leomalta/worms/common/utils/vector"
)

// Number of possible movement directions (North, South, etc)
const NbDirections = 32

// The arc covered by one direction (eg: 4 directions = 90 degrees)
const ArcRange = 2 * math.Pi / NbDirections

// Direction is a heading quantized on a ring of NbDirections sectors.
// The value is a signed sector offset; it is only reduced modulo the
// ring when converted back to an angle, so accumulated shifts (as
// produced by Rotator) stay exact.
type Direction struct {
	value int
}

func MakeDirection(value int) Direction {
	return Direction{value: value}
}

func MakeRandomDirection(rng *rand.Rand) Direction {
	return Direction{value: rng.Intn(NbDirections)}
}

// DirectionFromAngle quantizes a continuous angle to the nearest
// sector. The boundary exactly between two sectors rounds toward the
// higher index.
func DirectionFromAngle(angle float64) Direction {
	return Direction{value: int(math.Floor((angle + ArcRange/2) / ArcRange))}
}

// DirectionBetween returns the quantized bearing from origin to destination.
func DirectionBetween(origin vector.Point, destination vector.Point) Direction {
	return DirectionFromAngle(origin.AngleTo(destination))
}

func (d Direction) Add(other Direction) Direction {
	return Direction{value: d.value + other.value}
}

func (d Direction) Angle() float64 {
	return ArcRange * float64(d.value)
}

func (d Direction) Opposite() Direction {
	return Direction{value: ((NbDirections / 2) + (d.value % NbDirections)) % NbDirections}
}

// Point returns the unit vector along this direction.
func (d Direction) Point() vector.Point {
	return vector.MakeUnitPoint().Rotate(d.Angle())
}

// Advance copies a point one step of the given length along this direction.
func (d Direction) Advance(from vector.Point, distance float64) vector.Point {
	return from.Add(d.Point().Scale(distance))
}

// Connect checks if the destination lies at this direction from the
// origin, within an angular tolerance of half the given vision angle.
func (d Direction) Connect(origin vector.Point, destination vector.Point, visionAngle float64) bool {
	return number.AngleDistance(d.Angle(), origin.AngleTo(destination)) <= visionAngle/2
}

func (d Direction) String() string {
	return fmt.Sprintf("Dir(%d, %.1f)", d.value, number.RadianToDegree(d.Angle()))
}
