// Package app wires the window, the bake and the per-frame billboard drawing together.
package app

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/facade/internal/config"
	"github.com/Faultbox/facade/internal/engine/camera"
	"github.com/Faultbox/facade/internal/engine/debug"
	"github.com/Faultbox/facade/internal/engine/input"
	"github.com/Faultbox/facade/internal/engine/lighting"
	"github.com/Faultbox/facade/internal/engine/model"
	"github.com/Faultbox/facade/internal/engine/scene"
	"github.com/Faultbox/facade/internal/engine/window"
	"github.com/Faultbox/facade/internal/facade"
	"github.com/Faultbox/facade/internal/logger"
	"github.com/Faultbox/facade/pkg/math"
)

const (
	title = "Facade"

	// Ground extends this far past the outermost placements
	groundMargin = 4.0
	groundTile   = 2.0
)

// App is the running demo.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
	orbit  *camera.OrbitCamera
	shots  *debug.ScreenshotCapture

	object *scene.GPUMesh
	ground *scene.GPUMesh
	facade *facade.Facade

	placements []math.Vec3

	// Draw the real mesh at every placement instead of the facade
	geometry bool
	// Lock billboards to the world Y axis
	upright bool

	width, height int32
}

// New opens the window, builds the object and bakes its facade.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing demo",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("grid", cfg.Scene.GridCount),
	)

	a := &App{
		cfg:   cfg,
		input: input.New(),
		orbit: camera.NewOrbitCamera(),
		shots: debug.NewScreenshotCapture(cfg.Capture.OutputDir, "facade"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	a.width, a.height = a.window.DrawableSize()

	// Renderers need the GL context the window just created
	a.scene, err = scene.New(cfg.Scene.Background)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	a.scene.Meshes.LightDir = lighting.SunDirection(cfg.Scene.SunAzimuth, cfg.Scene.SunElevation)

	if err := a.setup(); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("demo initialized")
	return a, nil
}

// setup uploads the object, bakes it once and lays out the grid.
func (a *App) setup() error {
	knot := model.TorusKnot(knotOptions(a.cfg.Scene))

	var err error
	a.object, err = a.scene.Meshes.Upload(knot)
	if err != nil {
		return fmt.Errorf("uploading object: %w", err)
	}

	color := a.cfg.Scene.ObjectColor
	src := facade.DrawFunc(func(viewProj math.Mat4) {
		a.scene.Meshes.Draw(a.object, viewProj, math.Identity(), scene.Material{Color: color})
	})

	a.facade, err = facade.Bake(src, a.object.Bounds, bakeOptions(a.cfg))
	if err != nil {
		return fmt.Errorf("baking facade: %w", err)
	}

	if a.facade.Image != nil {
		path, err := a.shots.CaptureFromImage(a.facade.Image)
		if err != nil {
			// The demo still works without the PNG
			logger.Warn("failed to save facade", zap.Error(err))
		} else {
			logger.Info("facade saved", zap.String("path", path))
		}
	}

	// Stand the object on the ground: its lowest point touches y = 0
	a.placements = facade.Layout(a.cfg.Scene.GridCount, a.cfg.Scene.GridSpacing, -a.object.Bounds.Min.Y)
	a.scene.Sprites.SetInstances(a.facade.Instances(a.placements))
	a.object.SetInstances(a.placements)

	area := facade.GridBounds(a.placements, groundMargin)
	if area.IsEmpty() {
		area = math.Box3{Min: math.Vec3{X: -groundMargin, Z: -groundMargin}, Max: math.Vec3{X: groundMargin, Z: groundMargin}}
	}
	size := area.Size()
	a.ground, err = a.scene.Meshes.Upload(model.Plane(size.X, size.Z, groundTile))
	if err != nil {
		return fmt.Errorf("uploading ground: %w", err)
	}

	a.orbit.FitToBounds(area.ExpandByPoint(math.Vec3{Y: a.object.Bounds.Size().Y}), a.fovY())

	logger.Info("scene ready",
		logger.Count("sprites", len(a.placements)),
		logger.Count("object_triangles", a.object.Triangles),
	)
	return nil
}

func knotOptions(s config.SceneConfig) model.TorusKnotOptions {
	opts := model.DefaultTorusKnot()
	opts.Radius = s.KnotRadius
	opts.Tube = s.KnotTube
	opts.P = s.KnotP
	opts.Q = s.KnotQ
	return opts
}

func bakeOptions(cfg *config.Config) facade.Options {
	opts := facade.DefaultOptions()
	opts.TextureSize = int32(cfg.Facade.TextureSize)
	opts.FovY = degToRad(cfg.Facade.FOV)
	opts.Padding = cfg.Facade.Padding
	opts.Capture = cfg.Capture.SaveFacade
	return opts
}

func degToRad(deg float32) float32 {
	return deg * gomath.Pi / 180
}

func (a *App) fovY() float32 {
	return degToRad(a.cfg.Graphics.FOV)
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	triangles := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		triangles += a.render()
		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			logger.Debug("frame stats",
				zap.Float64("fps", gomath.Round(fps*10)/10),
				logger.Count("triangles_per_frame", triangles/frameCount),
				zap.Bool("geometry", a.geometry),
			)
			a.window.SetTitle(fmt.Sprintf("%s - %.0f fps - %s", title, fps, a.modeName()))
			frameCount = 0
			triangles = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.width, a.height = a.window.DrawableSize()
		case input.EventDrag:
			a.orbit.HandleDrag(event.DX, event.DY)
		case input.EventWheel:
			a.orbit.HandleZoom(event.DY)
		case input.EventKeyDown:
			a.handleKey(event.Key)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_G:
		a.geometry = !a.geometry
		logger.Info("draw mode", zap.String("mode", a.modeName()))
	case sdl.SCANCODE_U:
		a.upright = !a.upright
		logger.Info("billboard axes", zap.Bool("upright", a.upright))
	case sdl.SCANCODE_F12:
		a.screenshot()
	}
}

func (a *App) modeName() string {
	if a.geometry {
		return "geometry"
	}
	return "facades"
}

// render draws one frame and returns the number of triangles submitted.
func (a *App) render() int {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}

	a.scene.Begin(a.width, a.height)

	view := a.orbit.ViewMatrix()
	proj := math.Perspective(a.fovY(), float32(a.width)/float32(a.height), 0.1, a.orbit.MaxDistance*4)
	viewProj := proj.Mul(view)

	a.scene.Meshes.Draw(a.ground, viewProj, math.Identity(), scene.Material{Color: [3]float32{0.35, 0.4, 0.3}, Checker: true})
	triangles := a.ground.Triangles

	if a.geometry {
		a.scene.Meshes.DrawInstanced(a.object, viewProj, math.Identity(), scene.Material{Color: a.cfg.Scene.ObjectColor}, len(a.placements))
		return triangles + a.object.Triangles*len(a.placements)
	}

	right, up := camera.BillboardAxes(view, a.upright)
	a.scene.Sprites.Render(viewProj, right, up, a.facade.Texture)
	return triangles + 2*a.scene.Sprites.Count()
}

func (a *App) screenshot() {
	pixels := a.scene.ReadScreen(a.width, a.height)
	path, err := a.shots.CaptureFromPixels(pixels, int(a.width), int(a.height))
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	logger.Info("closing demo")

	if a.facade != nil {
		a.facade.Destroy()
	}
	if a.object != nil {
		a.object.Destroy()
	}
	if a.ground != nil {
		a.ground.Destroy()
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
