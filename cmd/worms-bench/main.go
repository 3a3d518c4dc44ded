package main

import (
	"flag"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/cheggaaa/pb"

	"github.com/leomalta/worms/wormserver"
)

const warmupTicks = 50

// benchScene matches the stress setup used to profile the tick loop:
// a dense world where collision scans dominate.
func benchScene(rng *rand.Rand) *wormserver.Scene {
	return wormserver.NewScene(
		1000, 1000,
		wormserver.SceneParameters{
			WormSize:   8,
			PartRadius: 2.0,
			Starvation: 5000,
			Expiration: 1000,
		},
		2000, 200,
		rng,
	)
}

func main() {

	ticks := flag.Int("ticks", 500, "Number of measured ticks")
	seed := flag.Int64("seed", 1, "Random seed")

	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	scene := benchScene(rng)

	for i := 0; i < warmupTicks; i++ {
		scene.Execute()
	}

	bar := pb.New(*ticks)
	bar.SetWidth(80)
	bar.Start()

	durations := make([]time.Duration, *ticks)

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		tickstart := time.Now()
		scene.Execute()
		durations[i] = time.Since(tickstart)
		bar.Increment()
	}
	elapsed := time.Since(start)

	bar.Finish()

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	percentile := func(p int) time.Duration {
		return durations[(len(durations)-1)*p/100]
	}

	perTick := elapsed / time.Duration(*ticks)
	log.Println("total:", elapsed)
	log.Println("per tick:", perTick)
	log.Println("p50:", percentile(50), "p90:", percentile(90), "p99:", percentile(99))
	log.Println("ticks per second:", float64(time.Second)/float64(perTick))
}
