// Package app bootstraps a window plus GL context and wires the rendering
// substrate on top of it. The App object is passed explicitly to whoever
// needs it; there is no hidden global context.
package app

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"blit/internal/gfx"
)

func init() {
	// GLFW event handling and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

// App owns the window, the GL backend, and the sprite rendering pipeline
// built on it. All methods must be called from the main thread.
type App struct {
	window   *glfw.Window
	backend  *gfx.GLBackend
	units    *gfx.UnitAllocator
	shader   *gfx.Shader
	renderer *gfx.BatchRenderer

	width  int
	height int
}

// New opens a window, initializes GL state, compiles the sprite shader, and
// constructs the batch renderer with a projection matching the window size.
func New(cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	window, err := initWindow(cfg)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0.08, 0.08, 0.10, 1.0)

	backend := gfx.NewGLBackend()
	units := gfx.NewUnitAllocator(backend.Limits().MaxTextureUnits)

	shader, err := gfx.NewShader(backend, spriteVertSrc, spriteFragSrc)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("sprite shader: %w", err)
	}
	renderer := gfx.NewBatchRenderer(backend, shader, cfg.Width, cfg.Height)

	return &App{
		window:   window,
		backend:  backend,
		units:    units,
		shader:   shader,
		renderer: renderer,
		width:    cfg.Width,
		height:   cfg.Height,
	}, nil
}

func (a *App) Window() *glfw.Window         { return a.window }
func (a *App) Backend() gfx.Backend         { return a.backend }
func (a *App) Units() *gfx.UnitAllocator    { return a.units }
func (a *App) Shader() *gfx.Shader          { return a.shader }
func (a *App) Renderer() *gfx.BatchRenderer { return a.renderer }
func (a *App) Size() (int, int)             { return a.width, a.height }

// Run drives the main loop, calling frame once per iteration until the
// window closes or Escape is pressed.
func (a *App) Run(frame func()) {
	for !a.window.ShouldClose() {
		glfw.PollEvents()
		if a.window.GetKey(glfw.KeyEscape) == glfw.Press {
			a.window.SetShouldClose(true)
			continue
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		a.shader.Use()
		frame()
		a.window.SwapBuffers()
	}
}

// Close tears down in reverse construction order.
func (a *App) Close() {
	if a.shader != nil {
		a.shader.Destroy()
	}
	if a.window != nil {
		a.window.Destroy()
	}
	glfw.Terminate()
}
