package types

import (
	"github.com/leomalta/worms/common/utils"
	"github.com/leomalta/worms/wormserver"
)

// VizScene ties the running simulation server to its pool of
// websocket watchers.
type VizScene struct {
	server *wormserver.Server
	pool   *WatcherMap
}

func NewVizScene(server *wormserver.Server) *VizScene {
	return &VizScene{
		server: server,
		pool:   NewWatcherMap(),
	}
}

func (vizscene *VizScene) GetTps() int {
	return vizscene.server.GetTicksPerSecond()
}

type VizInitMessageData struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	PartSize float64 `json:"partsize"`
	Tps      int     `json:"tps"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

func (vizscene *VizScene) SetWatcher(watcher *Watcher) {
	vizscene.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
	}
	vizscene.server.WithScene(func(scene *wormserver.Scene) {
		initMsg.Data = VizInitMessageData{
			Width:    scene.Width(),
			Height:   scene.Height(),
			PartSize: scene.Params().PartRadius,
			Tps:      vizscene.server.GetTicksPerSecond(),
		}
	})

	err := watcher.conn.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
	}
}

func (vizscene *VizScene) RemoveWatcher(watcherid string) {
	vizscene.pool.Remove(watcherid)
}

func (vizscene *VizScene) GetNumberWatchers() int {
	return vizscene.pool.Size()
}
