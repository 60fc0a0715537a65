package repofake

import (
	"sync"

	"github.com/hirestack/go-interview-server/sessions"
)

var _ sessions.TokenStore = (*FakeTokenStore)(nil)

// FakeTokenStore is an in-memory TokenStore for tests
type FakeTokenStore struct {
	token string
	lock  sync.RWMutex
}

func NewFakeTokenStore() *FakeTokenStore {
	return &FakeTokenStore{}
}

func (ts *FakeTokenStore) Get() (string, error) {
	ts.lock.RLock()
	defer ts.lock.RUnlock()
	return ts.token, nil
}

func (ts *FakeTokenStore) Set(token string) error {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	ts.token = token
	return nil
}

func (ts *FakeTokenStore) Clear() error {
	ts.lock.Lock()
	defer ts.lock.Unlock()
	ts.token = ""
	return nil
}
