package syncutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomic(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		a := &Atomic[string]{}
		assert.Equal(t, "", a.Load())
	})

	t.Run("Initial", func(t *testing.T) {
		a := NewAtomic(true)
		assert.True(t, a.Load())
	})

	t.Run("StoreLoad", func(t *testing.T) {
		a := NewAtomic(1)
		a.Store(42)
		assert.Equal(t, 42, a.Load())
	})

	t.Run("ConcurrentStores", func(t *testing.T) {
		a := NewAtomic(0)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(v int) {
				defer wg.Done()
				a.Store(v)
			}(i)
		}
		wg.Wait()
		assert.GreaterOrEqual(t, a.Load(), 0)
		assert.Less(t, a.Load(), 50)
	})
}

func TestCounter(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		c := &Counter{}
		assert.Equal(t, int64(0), c.Load())
	})

	t.Run("IncAdd", func(t *testing.T) {
		c := &Counter{}
		c.Inc()
		c.Add(4)
		assert.Equal(t, int64(5), c.Load())
	})

	t.Run("ConcurrentIncs", func(t *testing.T) {
		c := &Counter{}
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Inc()
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(100), c.Load())
	})
}
