package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSunDirection(t *testing.T) {
	overhead := SunDirection(0, 90)
	assert.InDelta(t, 0, overhead.X, 1e-6)
	assert.InDelta(t, 1, overhead.Y, 1e-6)
	assert.InDelta(t, 0, overhead.Z, 1e-6)

	south := SunDirection(0, 0)
	assert.InDelta(t, 1, south.Z, 1e-6)

	east := SunDirection(90, 0)
	assert.InDelta(t, 1, east.X, 1e-6)
	assert.InDelta(t, 0, east.Z, 1e-6)
}

func TestSunDirectionIsUnit(t *testing.T) {
	for _, c := range [][2]float32{{0, 0}, {45, 60}, {200, 10}, {-30, 35}} {
		d := SunDirection(c[0], c[1])
		assert.InDelta(t, 1, d.Length(), 1e-5, "azimuth %v elevation %v", c[0], c[1])
	}
}

func TestSunDirectionClampsElevation(t *testing.T) {
	assert.Equal(t, SunDirection(10, 90), SunDirection(10, 120))
	assert.Equal(t, SunDirection(10, 0), SunDirection(10, -15))
}
