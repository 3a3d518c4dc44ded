package movement

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/leomalta/worms/common/utils/vector"
	"github.com/leomalta/worms/wormserver/state"
)

// Obstacle scans are read-only reductions over the population, so they
// can fan out over goroutines within a single worm's movement attempt.
// The scene still commits worms strictly one after the other.

// Below this population size the fan-out overhead outweighs the scan.
const parallelScanThreshold = 64

func anyBody(bodies []*state.WormBody, pred func(*state.WormBody) bool) bool {
	return anyBodyIndexed(bodies, func(_ int, body *state.WormBody) bool {
		return pred(body)
	})
}

func anyBodyIndexed(bodies []*state.WormBody, pred func(int, *state.WormBody) bool) bool {
	if len(bodies) < parallelScanThreshold {
		for pos, body := range bodies {
			if pred(pos, body) {
				return true
			}
		}
		return false
	}

	chunk := (len(bodies) + runtime.NumCPU() - 1) / runtime.NumCPU()
	var found atomic.Bool
	wait := &sync.WaitGroup{}

	for begin := 0; begin < len(bodies); begin += chunk {
		end := min(begin+chunk, len(bodies))
		wait.Add(1)
		go func(begin int, end int) {
			defer wait.Done()
			for pos := begin; pos < end; pos++ {
				if found.Load() {
					return
				}
				if pred(pos, bodies[pos]) {
					found.Store(true)
					return
				}
			}
		}(begin, end)
	}

	wait.Wait()
	return found.Load()
}

func anyPoint(points []vector.Point, pred func(vector.Point) bool) bool {
	if len(points) < parallelScanThreshold {
		for _, point := range points {
			if pred(point) {
				return true
			}
		}
		return false
	}

	chunk := (len(points) + runtime.NumCPU() - 1) / runtime.NumCPU()
	var found atomic.Bool
	wait := &sync.WaitGroup{}

	for begin := 0; begin < len(points); begin += chunk {
		end := min(begin+chunk, len(points))
		wait.Add(1)
		go func(begin int, end int) {
			defer wait.Done()
			for pos := begin; pos < end; pos++ {
				if found.Load() {
					return
				}
				if pred(points[pos]) {
					found.Store(true)
					return
				}
			}
		}(begin, end)
	}

	wait.Wait()
	return found.Load()
}
