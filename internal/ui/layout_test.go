package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidLayout(t *testing.T, r Regions, width, height int) {
	t.Helper()
	all := r.All()
	area := 0
	for i, a := range all {
		assert.GreaterOrEqual(t, a.X, 0)
		assert.GreaterOrEqual(t, a.Y, 0)
		assert.LessOrEqual(t, a.X+a.W, width, "region %d exceeds width", i)
		assert.LessOrEqual(t, a.Y+a.H, height, "region %d exceeds height", i)
		area += max(a.W, 0) * max(a.H, 0)
		for j := i + 1; j < len(all); j++ {
			assert.False(t, a.Overlaps(all[j]), "regions %d and %d overlap: %+v %+v", i, j, a, all[j])
		}
	}
	assert.Equal(t, width*height, area, "regions tile the whole screen")
}

func TestLayout_StandardSizes(t *testing.T) {
	sizes := [][2]int{{80, 24}, {200, 50}, {80, 24}}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(t *testing.T) {
			assertValidLayout(t, Layout(sz[0], sz[1]), sz[0], sz[1])
		})
	}
}

func TestLayout_80x24(t *testing.T) {
	r := Layout(80, 24)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 80, H: 1}, r.Spacer)
	assert.Equal(t, Rect{X: 0, Y: 1, W: 36, H: 8}, r.Info)
	assert.Equal(t, Rect{X: 36, Y: 1, W: 44, H: 8}, r.Gauges)
	assert.Equal(t, Rect{X: 0, Y: 9, W: 80, H: 8}, r.Processes)
	assert.Equal(t, Rect{X: 0, Y: 17, W: 40, H: 6}, r.Disks)
	assert.Equal(t, Rect{X: 40, Y: 17, W: 40, H: 6}, r.Network)
	assert.Equal(t, Rect{X: 0, Y: 23, W: 80, H: 1}, r.Footer)
}

func TestLayout_200x50(t *testing.T) {
	r := Layout(200, 50)

	assert.Equal(t, 90, r.Info.W)
	assert.Equal(t, 110, r.Gauges.W)
	assert.Equal(t, 8, r.Info.H)
	assert.Equal(t, 9, r.Disks.H)
	assert.Equal(t, 100, r.Network.W)
	assert.Equal(t, 50-1-8-9-1, r.Processes.H, "process table absorbs the slack")
	assert.Equal(t, 49, r.Footer.Y)
}

func TestLayout_TinyAndDegenerate(t *testing.T) {
	sizes := [][2]int{{0, 0}, {1, 1}, {10, 3}, {40, 12}, {80, 18}, {3, 100}, {500, 5}}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(t *testing.T) {
			require.NotPanics(t, func() { Layout(sz[0], sz[1]) })
			assertValidLayout(t, Layout(sz[0], sz[1]), sz[0], sz[1])
		})
	}
}

func TestLayout_ShortTerminalPriority(t *testing.T) {
	// 1 + 8 + 1 + 8 = 18 rows go to spacer, top, footer and the process
	// minimum before the bottom row gets anything.
	r := Layout(80, 18)
	assert.Equal(t, 8, r.Processes.H)
	assert.Equal(t, 0, r.Disks.H)
	assert.Equal(t, 1, r.Footer.H)
	assert.Equal(t, 17, r.Footer.Y)
}

func TestLayout_NegativeInput(t *testing.T) {
	r := Layout(-5, -5)
	for _, a := range r.All() {
		assert.True(t, a.Empty())
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 9, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 10, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Rect{X: 2, Y: 2, W: 0, H: 5}))
}
