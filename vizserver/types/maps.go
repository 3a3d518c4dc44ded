package types

import "sync"

type WatcherMap struct {
	data map[string]*Watcher
	lock *sync.RWMutex
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		data: make(map[string]*Watcher),
		lock: &sync.RWMutex{},
	}
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	wmap.lock.RLock()
	res := wmap.data[id]
	wmap.lock.RUnlock()
	return res
}

func (wmap *WatcherMap) Set(id string, watcher *Watcher) {
	wmap.lock.Lock()
	wmap.data[id] = watcher
	wmap.lock.Unlock()
}

func (wmap *WatcherMap) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *WatcherMap) Size() int {
	wmap.lock.RLock()
	res := len(wmap.data)
	wmap.lock.RUnlock()
	return res
}
