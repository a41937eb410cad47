package local

import (
	"sync"
)

func New() Client {
	return &local{
		store: make(map[string][]byte),
		mut:   &sync.RWMutex{},
	}
}

// Client is an in process key value store. A nil value is a valid entry:
// it records that the key is known to be absent upstream.
type Client interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte)
	Delete(key string)
	Len() int
}

type local struct {
	store map[string][]byte
	mut   *sync.RWMutex
}

func (l *local) Get(key string) ([]byte, bool) {
	l.mut.RLock()
	defer l.mut.RUnlock()

	data, ok := l.store[key]
	return data, ok
}

func (l *local) Set(key string, data []byte) {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.store[key] = data
}

func (l *local) Delete(key string) {
	l.mut.Lock()
	defer l.mut.Unlock()

	delete(l.store, key)
}

func (l *local) Len() int {
	l.mut.RLock()
	defer l.mut.RUnlock()

	return len(l.store)
}
