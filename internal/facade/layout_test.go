package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/facade/pkg/math"
)

func TestLayoutGrid(t *testing.T) {
	got := Layout(3, 2, 0.5)
	require.Len(t, got, 9)

	// Row-major: X varies fastest
	assert.Equal(t, math.Vec3{X: -2, Y: 0.5, Z: -2}, got[0])
	assert.Equal(t, math.Vec3{X: 0, Y: 0.5, Z: -2}, got[1])
	assert.Equal(t, math.Vec3{X: 2, Y: 0.5, Z: -2}, got[2])
	assert.Equal(t, math.Vec3{X: 0, Y: 0.5, Z: 0}, got[4])
	assert.Equal(t, math.Vec3{X: 2, Y: 0.5, Z: 2}, got[8])
}

func TestLayoutCentred(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		var sum math.Vec3
		for _, p := range Layout(n, 3, 0) {
			sum = sum.Add(p)
		}
		assert.InDelta(t, 0, sum.X, 1e-3, "n=%d", n)
		assert.InDelta(t, 0, sum.Z, 1e-3, "n=%d", n)
	}

	assert.Equal(t, []math.Vec3{{}}, Layout(1, 10, 0))
}

func TestLayoutEmpty(t *testing.T) {
	assert.Nil(t, Layout(0, 1, 0))
	assert.Nil(t, Layout(-3, 1, 0))
}

func TestGridBounds(t *testing.T) {
	b := GridBounds(Layout(3, 2, 0), 1)
	assert.Equal(t, math.Vec3{X: -3, Y: 0, Z: -3}, b.Min)
	assert.Equal(t, math.Vec3{X: 3, Y: 0, Z: 3}, b.Max)

	assert.True(t, GridBounds(nil, 1).IsEmpty())
}
