package vector

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
)

// Point is an immutable 2D position/displacement in world space.
type Point struct {
	x float64
	y float64
}

func MakePoint(x float64, y float64) Point {
	return Point{x, y}
}

// Returns a null point
func MakeNullPoint() Point {
	return MakePoint(0, 0)
}

// Returns the east-pointing unit vector
func MakeUnitPoint() Point {
	return MakePoint(1, 0)
}

// Returns a uniformly random point within [0,xlimit]x[0,ylimit]
func MakeRandomPoint(rng *rand.Rand, xlimit float64, ylimit float64) Point {
	return MakePoint(
		rng.Float64()*xlimit,
		rng.Float64()*ylimit,
	)
}

func (p Point) Get() (float64, float64) {
	return p.x, p.y
}

func (p Point) GetX() float64 {
	return p.x
}

func (p Point) GetY() float64 {
	return p.y
}

func (a Point) Add(b Point) Point {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Point) Sub(b Point) Point {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Point) Scale(scale float64) Point {
	a.x *= scale
	a.y *= scale
	return a
}

func (a Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		x: cos*a.x - sin*a.y,
		y: sin*a.x + cos*a.y,
	}
}

func (a Point) DistanceTo(b Point) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

// AngleTo returns the bearing from a to b in radians.
func (a Point) AngleTo(b Point) float64 {
	diff := b.Sub(a)
	return math.Atan2(diff.y, diff.x)
}

func (a Point) Equals(b Point) bool {
	return a.x == b.x && a.y == b.y
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.x, p.y)
}

var floatformat = byte('f')

func (p Point) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, p.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, p.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}
