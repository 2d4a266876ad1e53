package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLockReturnsSameMutexForKey(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("guild:player"), lm.GetLock("guild:player"))
	assert.NotSame(t, lm.GetLock("a"), lm.GetLock("b"))
}

func TestLockAllSerializesCounter(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.LockAll("b", "a")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockAllOppositeOrderDoesNotDeadlock(t *testing.T) {
	lm := NewLockManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := lm.LockAll("sender", "recipient")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := lm.LockAll("recipient", "sender")
			unlock()
		}()
	}
	wg.Wait()
}
