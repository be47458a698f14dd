// Package game implements the host loop that runs a demo: it owns the
// window, input, step timer and renderer and forwards work to the demo.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/demo"
	"github.com/Faultbox/scenekit/internal/engine/debug"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/input/sdlinput"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/engine/texture"
	"github.com/Faultbox/scenekit/internal/engine/timer"
	"github.com/Faultbox/scenekit/internal/engine/window"
	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/pkg/math"
)

// idleWait bounds how long the loop sleeps when nothing needs drawing.
const idleWait = 5 * time.Millisecond

var _ demo.Surface = (*renderer.Renderer)(nil)

// Options describe the window a demo wants.
type Options struct {
	Title string
	// Depth requests a depth buffer and enables depth testing.
	Depth bool
	// StepInterval is the period of the demo's step timer.
	StepInterval time.Duration
}

// Game is the host for one demo.
type Game struct {
	running  bool
	redraw   bool
	capture  bool
	shots    *debug.Screenshots
	window   *window.Window
	renderer *renderer.Renderer
	input    *sdlinput.Input
	textures *textureCache
	demo     demo.Demo
	ctx      *demo.Context
	log      *zap.Logger
}

// New creates the window and renderer and initializes d.
func New(cfg *config.Config, d demo.Demo, opts Options) (*Game, error) {
	title := opts.Title
	if cfg.Window.Title != "" {
		title = cfg.Window.Title
	}

	g := &Game{
		demo: d,
		log:  logger.Named("game"),
	}
	g.log.Info("initializing",
		zap.String("title", title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	depthBits := 0
	if opts.Depth {
		depthBits = 24
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		DepthBits:  depthBits,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.Size()

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		VSync:      cfg.Window.VSync,
		DepthTest:  opts.Depth,
		ClearColor: math.Color{},
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.shots = debug.NewScreenshots(cfg.Window.ScreenshotDir, title)
	g.input = sdlinput.New()
	g.textures = &textureCache{log: g.log}
	g.ctx = &demo.Context{
		Config:   cfg,
		Textures: g.textures,
		Timer:    timer.New(opts.StepInterval),
		Now:      time.Now,
		Width:    width,
		Height:   height,
	}

	if err := d.Init(g.ctx); err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to initialize demo: %w", err)
	}

	g.log.Info("initialized successfully")
	return g, nil
}

// Run processes input and timer ticks until the window closes or escape is
// pressed. A frame is drawn only when an event or a tick asks for one.
func (g *Game) Run() error {
	g.running = true
	g.redraw = true

	frames := 0
	statsTimer := time.Now()

	g.log.Info("starting loop")

	for g.running {
		// 1. Process input
		g.input.Update()
		for _, ev := range g.input.Events() {
			if ev.IsQuit() {
				g.running = false
				break
			}
			if ev.Type == input.EventKeyDown && ev.Key == input.KeyF10 {
				g.capture = true
				g.redraw = true
				continue
			}
			if ev.Type == input.EventWindowResize {
				g.renderer.Resize(ev.Width, ev.Height)
				g.ctx.Width, g.ctx.Height = ev.Width, ev.Height
				g.redraw = true
			}
			if g.demo.HandleEvent(ev) {
				g.redraw = true
			}
		}
		if !g.running {
			break
		}

		// 2. Step timer
		now := time.Now()
		if g.ctx.Timer.Fire(now) && g.demo.Step() {
			g.redraw = true
		}

		// 3. Render and present
		if g.redraw {
			g.renderer.Begin()
			g.demo.Render(g.renderer)
			g.renderer.End()
			if g.capture {
				g.saveScreenshot()
			}
			g.window.SwapBuffers()
			g.redraw = false
			frames++
		} else {
			wait := idleWait
			if r := g.ctx.Timer.Remaining(now); g.ctx.Timer.Armed() && r < wait {
				wait = r
			}
			time.Sleep(wait)
		}

		if time.Since(statsTimer) >= time.Second {
			if frames > 0 {
				g.log.Debug("frames drawn", zap.Int("count", frames))
			}
			frames = 0
			statsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) saveScreenshot() {
	g.capture = false
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.shots.Save(pixels, w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", name))
}

// Close cleans up the demo and all host resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.demo != nil {
		g.demo.Close()
	}
	if g.textures != nil {
		g.textures.Close()
	}
	if g.input != nil {
		g.input.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// textureCache uploads each path once and frees everything on Close.
type textureCache struct {
	loaded map[string]*texture.Texture
	log    *zap.Logger
}

func (c *textureCache) Load(path string) (demo.Texture, error) {
	if t, ok := c.loaded[path]; ok {
		return demo.Texture{ID: t.ID, Width: t.Width, Height: t.Height}, nil
	}
	t, err := texture.LoadAndUpload(path)
	if err != nil {
		return demo.Texture{}, err
	}
	if c.loaded == nil {
		c.loaded = make(map[string]*texture.Texture)
	}
	c.loaded[path] = t
	c.log.Info("texture loaded",
		zap.String("path", path),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height),
	)
	return demo.Texture{ID: t.ID, Width: t.Width, Height: t.Height}, nil
}

func (c *textureCache) Close() {
	for path, t := range c.loaded {
		t.Delete()
		delete(c.loaded, path)
	}
}
