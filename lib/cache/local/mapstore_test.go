package local

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocal(t *testing.T) {
	c := New()

	data, ok := c.Get("casa")
	assert.False(t, ok)
	assert.Nil(t, data)

	c.Set("casa", []byte("NOUN"))
	c.Set("xyz", nil)
	assert.Equal(t, 2, c.Len())

	data, ok = c.Get("casa")
	assert.True(t, ok)
	assert.Equal(t, []byte("NOUN"), data)

	data, ok = c.Get("xyz")
	assert.True(t, ok, "absence is cached")
	assert.Nil(t, data)

	c.Delete("casa")
	_, ok = c.Get("casa")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestLocalConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("%d-%d", i, j)
				c.Set(key, []byte(key))
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 800, c.Len())
}
