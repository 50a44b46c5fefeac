package utils_test

import (
	"testing"
	"time"

	"tracker/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("empty cache misses", func(t *testing.T) {
		c := utils.NewCache[string]()
		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		c := utils.NewCache[string]()
		c.Set("cached", time.Minute)

		got, ok := c.Get()
		assert.True(t, ok)
		assert.Equal(t, "cached", got)
	})

	t.Run("expired value misses", func(t *testing.T) {
		c := utils.NewCache[int]()
		c.Set(42, -time.Second)

		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("clear drops the value", func(t *testing.T) {
		c := utils.NewCache[int]()
		c.Set(42, time.Minute)
		c.Clear()

		_, ok := c.Get()
		assert.False(t, ok)
	})
}
