package trigo

import (
	"math/rand"
	"testing"
)

func TestShiftOrder(t *testing.T) {
	expected := []int{0, -1, 1, -2, 2, -3, 3, -4}
	for i, want := range expected {
		if got := shift(i, Clockwise); got.value != want {
			t.Errorf("clockwise shift %d: expected %d, got %d", i, want, got.value)
		}
		if got := shift(i, CounterClockwise); got.value != -want {
			t.Errorf("counter-clockwise shift %d: expected %d, got %d", i, -want, got.value)
		}
	}
}

func TestRotatorSequence(t *testing.T) {
	rotator := &Rotator{direction: MakeDirection(0), rotation: Clockwise}

	expected := []int{0, -1, 1, -2, 2, -3, 3, -4}
	for i, want := range expected {
		dir, ok := rotator.Next()
		if !ok {
			t.Fatalf("rotator exhausted at emission %d", i)
		}
		if dir.value != want {
			t.Errorf("emission %d: expected %d, got %d", i, want, dir.value)
		}
	}
}

func TestRotatorCoversRingOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for seed := 0; seed < NbDirections; seed++ {
		rotator := NewRotator(MakeDirection(seed), rng)

		first, ok := rotator.Next()
		if !ok || first.value != seed {
			t.Fatalf("first emission must be the seed, got %v (ok=%v)", first, ok)
		}

		seen := map[int]bool{normalize(first.value): true}
		count := 1
		for {
			dir, ok := rotator.Next()
			if !ok {
				break
			}
			count++
			sector := normalize(dir.value)
			if seen[sector] {
				t.Fatalf("seed %d: sector %d emitted twice", seed, sector)
			}
			seen[sector] = true
		}

		if count != NbDirections {
			t.Errorf("seed %d: expected %d emissions, got %d", seed, NbDirections, count)
		}
		if len(seen) != NbDirections {
			t.Errorf("seed %d: ring not fully covered (%d sectors)", seed, len(seen))
		}
	}
}

func TestRotatorEndsOpposite(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rotator := NewRotator(MakeDirection(5), rng)

	var last Direction
	for {
		dir, ok := rotator.Next()
		if !ok {
			break
		}
		last = dir
	}

	if normalize(last.value) != MakeDirection(5).Opposite().value {
		t.Errorf("last emission should be the opposite direction, got %v", last)
	}
}

func normalize(value int) int {
	return ((value % NbDirections) + NbDirections) % NbDirections
}
