package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New[string, int]()
	require.NotNil(t, c)
	assert.NotNil(t, c.entries)
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, uint64(0), c.Generation())
}

func TestSetGetDelete(t *testing.T) {
	c := New[string, int]()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key1", 100)
	c.Set("key2", 200)
	c.Set("key1", 150)
	assert.Equal(t, 2, c.Size())

	v, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, 150, v)

	c.Delete("key1")
	_, ok = c.Get("key1")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"key2"}, c.Keys())
}

func TestClear(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Set("b", 2)

	gen := c.Generation()
	c.Clear()

	assert.Equal(t, 0, c.Size())
	assert.Equal(t, gen+1, c.Generation())
}

func TestSetIfGeneration(t *testing.T) {
	c := New[string, int]()

	gen := c.Generation()
	assert.True(t, c.SetIfGeneration("a", 1, gen))

	stale := c.Generation()
	c.Clear()
	assert.False(t, c.SetIfGeneration("a", 2, stale))

	_, ok := c.Get("a")
	assert.False(t, ok, "value computed before Clear must not be stored")
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int]()
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.GetOrCreate("a", create))
	assert.Equal(t, 42, c.GetOrCreate("a", create))
	assert.Equal(t, 1, calls)
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set(n, n)
			c.Get(n)
			c.Keys()
			if n%10 == 0 {
				c.Clear()
			}
		}(i)
	}

	wg.Wait()
	assert.LessOrEqual(t, c.Size(), 50)
}
