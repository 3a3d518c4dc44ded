package types

import (
	uuid "github.com/satori/go.uuid"

	"github.com/gorilla/websocket"
)

// Watcher is one connected visualization client.
type Watcher struct {
	id   uuid.UUID
	conn *websocket.Conn
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:   uuid.NewV4(),
		conn: conn,
	}
}

func (watcher *Watcher) GetId() string {
	return watcher.id.String()
}
