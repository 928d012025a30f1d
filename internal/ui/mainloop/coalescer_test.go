package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurstIntoSingleIdle(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("settings-reload", func() { value = v })
	}

	require.Len(t, queue, 1)
	queue[0]()
	assert.Equal(t, 5, value, "latest callback wins")

	c.Post("settings-reload", func() { value = 6 })
	require.Len(t, queue, 2, "a new burst schedules again")
	queue[1]()
	assert.Equal(t, 6, value)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer[int](func(fn func()) { queue = append(queue, fn) })

	var ran []int
	c.Post(1, func() { ran = append(ran, 1) })
	c.Post(2, func() { ran = append(ran, 2) })

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []int{1, 2}, ran)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("filter", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("filter", func() { ran = true })
	assert.Len(t, queue, 1, "no new callback after destroy")
}

func TestCoalescer_IgnoresNilFunc(t *testing.T) {
	queue := make([]func(), 0, 1)
	c := NewCoalescer[string](func(fn func()) { queue = append(queue, fn) })

	c.Post("x", nil)
	assert.Empty(t, queue)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer[string](nil) })
}
