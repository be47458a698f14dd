// Package demo defines the contract between the host loop and the demo
// programs. Nothing here touches the window system or OpenGL, so demos can
// be driven by tests.
package demo

import (
	"time"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/timer"
	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Texture is an image uploaded by the host.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Textures loads image files into renderer textures.
type Textures interface {
	Load(path string) (Texture, error)
}

// Surface is the renderer as seen by a demo.
type Surface interface {
	scene.Renderer

	SetProjection(m math.Mat4)
	SetView(m math.Mat4)
	Viewport(x, y, width, height int)
	Size() (int, int)

	SetLighting(on bool)
	SetLight(v math.Vec3)
	SetDepthTest(on bool)
	SetPointSize(size float32)
}

// Context is what the host hands a demo at Init.
type Context struct {
	Config   *config.Config
	Textures Textures

	// Timer is polled by the host; a firing calls Demo.Step. Demos arm it
	// and re-arm it from Step to keep a periodic tick.
	Timer *timer.StepTimer
	// Now returns the current time. Tests replace it.
	Now func() time.Time

	Width  int
	Height int
}

// Demo is one interactive program.
type Demo interface {
	// Init builds the scene. An error is fatal.
	Init(ctx *Context) error
	// HandleEvent reacts to input and reports whether a redraw is needed.
	HandleEvent(ev input.Event) bool
	// Step runs one timer tick and reports whether a redraw is needed.
	Step() bool
	// Render draws one frame between the host's Begin and End.
	Render(s Surface)
	Close()
}

// ArmTimer arms the context timer from the current time.
func (c *Context) ArmTimer() {
	c.Timer.Arm(c.Time())
}

// Time returns the current time from Now, or the wall clock.
func (c *Context) Time() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
