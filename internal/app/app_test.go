package app

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/facade/internal/config"
)

func TestBakeOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Facade.TextureSize = 256
	cfg.Facade.FOV = 90
	cfg.Capture.SaveFacade = true

	opts := bakeOptions(cfg)
	assert.Equal(t, int32(256), opts.TextureSize)
	assert.InDelta(t, gomath.Pi/2, opts.FovY, 1e-6)
	assert.Equal(t, cfg.Facade.Padding, opts.Padding)
	assert.True(t, opts.Capture)
	assert.True(t, opts.Mipmaps)
	assert.Equal(t, [4]float32{}, opts.Background, "bake background must stay transparent")
}

func TestKnotOptionsFromConfig(t *testing.T) {
	s := config.Default().Scene
	s.KnotRadius = 2
	s.KnotP, s.KnotQ = 3, 5

	opts := knotOptions(s)
	assert.Equal(t, float32(2), opts.Radius)
	assert.Equal(t, s.KnotTube, opts.Tube)
	assert.Equal(t, 3, opts.P)
	assert.Equal(t, 5, opts.Q)
	assert.Equal(t, 64, opts.TubularSegments)
}
