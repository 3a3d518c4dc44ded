package vizserver

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apphandler "github.com/leomalta/worms/vizserver/handler"
	"github.com/leomalta/worms/vizserver/types"
	"github.com/leomalta/worms/wormserver"
)

// VizService exposes the simulation over HTTP: a canvas client on /
// and a websocket stream of scene snapshots on /ws.
type VizService struct {
	addr          string
	webclientpath string
	vizscene      *types.VizScene
}

func NewVizService(addr string, webclientpath string, server *wormserver.Server) *VizService {
	return &VizService{
		addr:          addr,
		webclientpath: webclientpath,
		vizscene:      types.NewVizScene(server),
	}
}

func (viz *VizService) ListenAndServe() error {

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.webclientpath)),
	)).Methods("GET")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.vizscene)),
	)).Methods("GET")

	// Static assets of the viz client
	router.PathPrefix("/lib/").Handler(http.FileServer(http.Dir(viz.webclientpath)))
	router.PathPrefix("/res/").Handler(http.FileServer(http.Dir(viz.webclientpath)))

	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, router)
}
