package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/leomalta/worms/common/config"
	"github.com/leomalta/worms/common/utils"
	"github.com/leomalta/worms/vizserver"
	"github.com/leomalta/worms/wormserver"
)

const warmupTicks = 50

func main() {

	configpath := flag.String("config", "", "Path to the simulation config file (JSON); defaults used when empty")
	port := flag.Int("port", 8080, "Port serving the viz")
	webclientpath := flag.String("webclient", "./webclient", "Path to the viz client assets")
	width := flag.Float64("width", 800, "World width")
	height := flag.Float64("height", 600, "World height")
	seed := flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")

	flag.Parse()

	cfg := config.DefaultSimConfig()
	if *configpath != "" {
		cfg = config.LoadSimConfig(*configpath)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Println("Worms Server v0.1 seed#" + strconv.FormatInt(*seed, 10))

	scene := wormserver.NewScene(
		*width, *height,
		wormserver.SceneParameters{
			WormSize:   cfg.WormSize,
			PartRadius: cfg.PartSize,
			Starvation: cfg.Starvation,
			Expiration: cfg.Expiration,
		},
		cfg.NbWorms, cfg.NbRewards,
		rng,
	)

	// Warm up so the first frame shows worms already on the move
	for i := 0; i < warmupTicks; i++ {
		scene.Execute()
	}

	tickspersec := int(1000 / cfg.Milisec)
	if tickspersec < 1 {
		tickspersec = 1
	}

	server := wormserver.NewServer(scene, tickspersec)

	vizservice := vizserver.NewVizService("0.0.0.0:"+strconv.Itoa(*port), *webclientpath, server)
	go func() {
		err := vizservice.ListenAndServe()
		utils.Check(err, "Could not start viz service")
	}()

	hassigtermed := make(chan os.Signal, 2)
	signal.Notify(hassigtermed, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-hassigtermed
		log.Println("Received shutdown signal")
		server.Stop()
	}()

	<-server.Start()
	log.Println("Simulation stopped")
}
