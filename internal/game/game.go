// Package game implements the main loop: terrain synthesis at startup, then
// a frame-driven camera/render loop until the user quits.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/sandsea/internal/assets"
	"github.com/Faultbox/sandsea/internal/config"
	"github.com/Faultbox/sandsea/internal/engine/camera"
	"github.com/Faultbox/sandsea/internal/engine/debug"
	"github.com/Faultbox/sandsea/internal/engine/input"
	"github.com/Faultbox/sandsea/internal/engine/renderer"
	"github.com/Faultbox/sandsea/internal/engine/scene"
	"github.com/Faultbox/sandsea/internal/engine/scene/shaders"
	"github.com/Faultbox/sandsea/internal/engine/terrain"
	"github.com/Faultbox/sandsea/internal/engine/texture"
	"github.com/Faultbox/sandsea/internal/engine/window"
	"github.com/Faultbox/sandsea/internal/logger"
	"github.com/Faultbox/sandsea/pkg/math"
)

// Game is the main application instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager

	terrainRenderer *scene.TerrainRenderer
	sampler         *terrain.Sampler
	bounds          terrain.Bounds
	seed            uint64

	firstPerson *camera.FirstPersonCamera
	orbit       *camera.OrbitCamera
	overview    bool

	screenshots *debug.ScreenshotCapture

	projection math.Mat4
}

// New creates the game: window, GL state, terrain and cameras. Terrain is
// generated once here, before the loop; the heightfield is read-only from
// then on.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:  cfg,
		seed: cfg.Terrain.Seed,
	}
	if g.seed == 0 {
		g.seed = uint64(time.Now().UnixNano())
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Sand Sea",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created.
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	g.assets = assets.NewManager()
	for _, dir := range cfg.Assets.Dirs {
		if err := g.assets.AddDir(dir); err != nil {
			logger.Warn("skipping asset dir", zap.Error(err))
		}
	}

	if err := g.setupScene(); err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, err
	}

	g.buildTerrain()

	g.firstPerson = camera.NewFirstPersonCamera()
	g.firstPerson.Speed = cfg.Camera.Speed
	g.firstPerson.FastMultiplier = cfg.Camera.FastMultiplier
	g.firstPerson.AngularSpeed = cfg.Camera.AngularSpeed

	g.orbit = camera.NewOrbitCamera()
	g.orbit.FitToBounds(g.bounds.Min, g.bounds.Max)

	g.screenshots = debug.NewScreenshotCapture("screenshots", "sandsea")

	g.updateProjection()
	g.window.CaptureMouse(true)

	logger.Info("game initialized", zap.Uint64("seed", g.seed))
	return g, nil
}

// setupScene compiles the terrain shader and loads the surface texture.
// Both are required for rendering, so failure here is fatal.
func (g *Game) setupScene() error {
	vertexSrc := shaders.TerrainVertexShader
	fragmentSrc := shaders.TerrainFragmentShader

	// On-disk shaders override the embedded defaults when configured.
	var err error
	if path := g.cfg.Assets.VertexShader; path != "" {
		if vertexSrc, err = g.assets.LoadString(path); err != nil {
			return fmt.Errorf("loading vertex shader: %w", err)
		}
	}
	if path := g.cfg.Assets.FragmentShader; path != "" {
		if fragmentSrc, err = g.assets.LoadString(path); err != nil {
			return fmt.Errorf("loading fragment shader: %w", err)
		}
	}

	g.terrainRenderer, err = scene.NewTerrainRenderer(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}

	data, err := g.assets.Load(g.cfg.Assets.Texture)
	if err != nil {
		return fmt.Errorf("loading terrain texture %s: %w", g.cfg.Assets.Texture, err)
	}
	tex, err := texture.Load(data)
	if err != nil {
		return fmt.Errorf("terrain texture %s: %w", g.cfg.Assets.Texture, err)
	}
	g.terrainRenderer.SetTexture(tex)

	return nil
}

// buildTerrain runs the synthesis pipeline for the current seed and uploads
// the resulting mesh.
func (g *Game) buildTerrain() {
	start := time.Now()

	grid := terrain.GenerateGrid(g.cfg.Terrain.ControlSize, g.seed)
	field := terrain.Synthesize(grid, g.cfg.Terrain.FineSize)
	g.sampler = terrain.NewSampler(field)

	mesh := terrain.BuildMesh(field, g.cfg.Terrain.UVScale)
	g.bounds = mesh.Bounds
	g.terrainRenderer.Upload(mesh)

	logger.Info("terrain synthesized",
		zap.Uint64("seed", g.seed),
		zap.Int("control_size", g.cfg.Terrain.ControlSize),
		zap.Int("fine_size", g.cfg.Terrain.FineSize),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Duration("took", time.Since(start)),
	)
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}

		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.renderer.Resize(event.Width, event.Height)
				g.updateProjection()
			case input.EventKeyDown:
				g.handleKey(event.Key)
			}
		}

		// 2. Update cameras
		g.update(dt)

		// 3. Render
		g.render()

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleKey reacts to one-shot key presses.
func (g *Game) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		g.running = false

	case sdl.SCANCODE_TAB:
		g.overview = !g.overview
		g.window.CaptureMouse(!g.overview)
		logger.Debug("camera mode", zap.Bool("overview", g.overview))

	case sdl.SCANCODE_R:
		g.seed = uint64(time.Now().UnixNano())
		g.buildTerrain()
		g.orbit.FitToBounds(g.bounds.Min, g.bounds.Max)

	case sdl.SCANCODE_F12:
		pixels, w, h := g.renderer.ReadPixels()
		name, err := g.screenshots.Capture(pixels, w, h)
		if err != nil {
			logger.Error("screenshot failed", zap.Error(err))
			return
		}
		logger.Info("screenshot saved", zap.String("file", name))
	}
}

// update applies input to the active camera. In first-person mode the
// camera is re-grounded on the terrain every frame.
func (g *Game) update(dt float32) {
	if g.overview {
		if g.input.IsMouseButtonHeld(sdl.BUTTON_LEFT) {
			dx, dy := g.input.MouseDelta()
			g.orbit.HandleDrag(dx, dy)
		}
		if wheel := g.input.WheelDelta(); wheel != 0 {
			g.orbit.HandleZoom(wheel)
		}
		return
	}

	dx, dy := g.input.MouseDelta()
	g.firstPerson.HandleLook(dx, dy, dt)

	var forward, right float32
	if g.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	fast := g.input.IsKeyHeld(sdl.SCANCODE_LSHIFT) || g.input.IsKeyHeld(sdl.SCANCODE_RSHIFT)

	if forward != 0 || right != 0 {
		g.firstPerson.HandleMovement(forward, right, fast, dt)
	}

	// Stay grounded: eye height above the dune surface under the camera.
	pos := &g.firstPerson.Position
	pos.Y = g.sampler.HeightAt(pos.X, pos.Z) + g.cfg.Camera.EyeOffset
}

// render draws the current frame.
func (g *Game) render() {
	g.renderer.Begin()

	world := math.Identity()
	var view math.Mat4
	if g.overview {
		view = g.orbit.ViewMatrix()
	} else {
		view = g.firstPerson.ViewMatrix()
	}

	g.terrainRenderer.SetMatrices(&world, &view, &g.projection)
	g.terrainRenderer.Draw()

	g.renderer.End()
}

// updateProjection recomputes the projection matrix for the current aspect.
func (g *Game) updateProjection() {
	fov := g.cfg.Camera.FOVDegrees * float32(gomath.Pi) / 180
	g.projection = math.Perspective(fov, g.renderer.Aspect(), g.cfg.Camera.Near, g.cfg.Camera.Far)
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.terrainRenderer != nil {
		g.terrainRenderer.Close()
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
