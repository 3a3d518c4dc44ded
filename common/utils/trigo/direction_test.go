package trigo

import (
	"math"
	"testing"

	"github.com/leomalta/worms/common/utils/number"
	"github.com/leomalta/worms/common/utils/vector"
)

func TestDirectionFromAngle(t *testing.T) {
	halfArc := number.RadianToDegree(ArcRange / 2) // 5.625 degrees

	cases := []struct {
		degrees  float64
		expected int
	}{
		{0, 0},
		{halfArc - 0.001, 0},
		{-halfArc, 0}, // sector boundary rounds toward the higher index
		{halfArc, 1},
		{-halfArc - 0.001, -1},
		{3*halfArc - 0.001, 1},
		{3 * halfArc, 2},
		{90, 8},
		{135, 12},
		{-45, -4},
	}
	for _, c := range cases {
		dir := DirectionFromAngle(number.DegreeToRadian(c.degrees))
		if dir.value != c.expected {
			t.Errorf("from %f degrees: expected %d, got %d", c.degrees, c.expected, dir.value)
		}
	}
}

func TestDirectionFromAngleIdempotent(t *testing.T) {
	for v := -NbDirections; v <= 2*NbDirections; v++ {
		dir := MakeDirection(v)
		if requantized := DirectionFromAngle(dir.Angle()); requantized.value != v {
			t.Errorf("re-quantizing %d yielded %d", v, requantized.value)
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	p1 := vector.MakeUnitPoint()
	p2 := vector.MakePoint(0, 1)

	if dir := DirectionBetween(p1, p2); dir.value != 12 {
		t.Errorf("expected 12, got %d", dir.value)
	}
	if dir := DirectionBetween(p2, p1); dir.value != -4 {
		t.Errorf("expected -4, got %d", dir.value)
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := []struct {
		value    int
		expected int
	}{
		{0, 16},
		{16, 0},
		{12, 28},
		{-1, 15},
		{33, 17},
	}
	for _, c := range cases {
		if got := MakeDirection(c.value).Opposite(); got.value != c.expected {
			t.Errorf("opposite of %d: expected %d, got %d", c.value, c.expected, got.value)
		}
	}
}

func TestDirectionConnect(t *testing.T) {
	p1 := vector.MakeUnitPoint()
	p2 := vector.MakePoint(0, 1)
	visionAngle := number.DegreeToRadian(90)

	cases := []struct {
		degrees  float64
		expected bool
	}{
		{0, false},
		{180, true},
		{90, true},
		{-90, false},
		{45, false},
		{135, true},
		{270, false},
	}
	for _, c := range cases {
		dir := DirectionFromAngle(number.DegreeToRadian(c.degrees))
		if got := dir.Connect(p1, p2, visionAngle); got != c.expected {
			t.Errorf("connect from %f degrees: expected %v, got %v", c.degrees, c.expected, got)
		}
	}
}

func TestDirectionAdvance(t *testing.T) {
	east := DirectionFromAngle(0)
	moved := east.Advance(vector.MakeNullPoint(), 10)
	if math.Abs(moved.GetX()-10) > 1e-9 || math.Abs(moved.GetY()) > 1e-9 {
		t.Errorf("advance east by 10: got %s", moved)
	}

	north := DirectionFromAngle(math.Pi / 2)
	moved = north.Advance(vector.MakePoint(1, 1), 2)
	if math.Abs(moved.GetX()-1) > 1e-9 || math.Abs(moved.GetY()-3) > 1e-9 {
		t.Errorf("advance north by 2: got %s", moved)
	}
}
