package handler

import (
	"fmt"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/websocket"

	"github.com/leomalta/worms/common/utils"
	"github.com/leomalta/worms/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

func Websocket(vizscene *types.VizScene) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		vizscene.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			vizscene.RemoveWatcher(watcher.GetId())
			log.Println(vizscene.GetNumberWatchers(), "watcher(s) left")
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Mandatory to notice when the websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		// Listen to scene snapshots coming from the tick server
		vizmsgchan := make(chan interface{})
		notify.Start("viz:message", vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					log.Println("<-clientclosedsocket")
					return
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					c.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("{\"type\":\"framebatch\", \"data\": %s}", vizmsgString)))
				}
			}
		}
	}
}
