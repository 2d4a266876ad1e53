package concurrency

import (
	"sort"
	"sync"
)

// LockManager hands out named mutexes. The engine is single-writer per
// account: every mutation of an account/inventory pair must hold that
// player's lock, since the read-modify-write sequences (level-up
// cascade, buy check-then-debit, dual-account gift) are not atomic at
// the storage layer.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockAll locks every key in sorted order so that concurrent multi-key
// holders (gift sender + recipient) cannot deadlock, and returns an
// unlock function releasing them in reverse order.
func (lm *LockManager) LockAll(keys ...string) func() {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	mus := make([]*sync.Mutex, 0, len(sorted))
	for _, key := range sorted {
		mu := lm.GetLock(key)
		mu.Lock()
		mus = append(mus, mu)
	}

	return func() {
		for i := len(mus) - 1; i >= 0; i-- {
			mus[i].Unlock()
		}
	}
}
