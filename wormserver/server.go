package wormserver

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/ttacon/chalk"

	"github.com/leomalta/worms/common/utils"
)

// Server drives a scene at a fixed tick rate and publishes a state
// snapshot for each turn on the "viz:message" notify channel.
type Server struct {
	scene       *Scene
	scenemutex  *sync.Mutex
	stopticking chan struct{}
	tickspersec int

	currentturn      utils.Tickturn
	currentturnmutex *sync.Mutex
}

func NewServer(scene *Scene, tickspersec int) *Server {
	return &Server{
		scene:            scene,
		scenemutex:       &sync.Mutex{},
		stopticking:      make(chan struct{}),
		tickspersec:      tickspersec,
		currentturnmutex: &sync.Mutex{},
	}
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (server *Server) SetTurn(turn utils.Tickturn) {
	server.currentturnmutex.Lock()
	server.currentturn = turn
	server.currentturnmutex.Unlock()
}

func (server *Server) GetTurn() utils.Tickturn {
	server.currentturnmutex.Lock()
	res := server.currentturn
	server.currentturnmutex.Unlock()
	return res
}

// WithScene runs fn with exclusive access to the scene; ticks wait
// until fn returns.
func (server *Server) WithScene(fn func(scene *Scene)) {
	server.scenemutex.Lock()
	fn(server.scene)
	server.scenemutex.Unlock()
}

func (server *Server) DoTick() {

	turn := server.GetTurn()
	server.SetTurn(turn.Next())

	dolog := (turn.GetSeq() % uint32(server.tickspersec)) == 0

	if dolog {
		fmt.Print(chalk.Yellow)
		log.Println("######## Tick #####", turn, chalk.Reset)
	}

	server.scenemutex.Lock()
	server.scene.Execute()
	snapshot := takeSnapshot(server.scene, turn.GetSeq())
	summary := server.scene.LastSummary()
	server.scenemutex.Unlock()

	payload, err := json.Marshal(snapshot)
	utils.Check(err, "Failed to marshal scene snapshot")

	notify.PostTimeout("viz:message", string(payload), time.Millisecond)

	if summary.Splits > 0 {
		notify.PostTimeout("worm:split", summary.Splits, time.Millisecond)
	}
	if summary.Merges > 0 {
		notify.PostTimeout("worm:merge", summary.Merges, time.Millisecond)
	}
	if summary.Deaths > 0 {
		notify.PostTimeout("worm:death", summary.Deaths, time.Millisecond)
	}

	if dolog {
		fmt.Print(chalk.Blue)
		log.Println(
			"# eaten:", summary.RewardsEaten,
			"splits:", summary.Splits,
			"merges:", summary.Merges,
			"deaths:", summary.Deaths,
			chalk.Reset,
		)
	}
}

func (server *Server) startTicking() {

	go func() {

		tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
		ticker := time.Tick(tickduration)

		for {
			select {
			case <-server.stopticking:
				{
					log.Println("Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return // exiting goroutine,
				}
			case <-ticker:
				{
					server.DoTick()
				}
			}
		}
	}()
}

// Start begins ticking and returns a channel that receives a value
// once the server has stopped.
func (server *Server) Start() chan interface{} {
	server.startTicking()

	block := make(chan interface{})
	notify.Start("app:stopticking", block)

	return block
}

func (server *Server) Stop() {
	close(server.stopticking)
}
