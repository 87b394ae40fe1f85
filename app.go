package lineage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// App is the viewer window. It implements ebiten.Game and wires the loader,
// renderer and controller together. The tree is only repainted when the
// controller schedules a redraw; the screen is not cleared between frames.
type App struct {
	cfg    Config
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	state    *State
	loader   *Loader
	renderer *Renderer
	camera   *Camera
	ctrl     *Controller

	buffer   *CommandBuffer
	overlay  *CommandBuffer
	checkbox Checkbox
	poller   inputPoller
	fps      *fpsWidget

	runner *TestRunner
	shots  screenshots

	width, height int
	painted       bool
}

// NewApp validates cfg and builds a viewer. No request is made until Start.
func NewApp(cfg Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	w, h := cfg.Window.Width, cfg.Window.Height

	state := &State{}
	loader := NewLoader(cfg.LoaderConfig(), logger)
	renderer := NewRenderer(state, logger)
	renderer.SetDebug(cfg.Debug)
	camera := NewCamera(Rect{Width: float64(w), Height: float64(h)})

	a := &App{
		cfg:      cfg,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		state:    state,
		loader:   loader,
		renderer: renderer,
		camera:   camera,
		ctrl:     NewController(ctx, state, loader, renderer, camera, logger),
		buffer:   NewCommandBuffer(float64(w), float64(h)),
		overlay:  NewCommandBuffer(float64(w), float64(h)),
		checkbox: NewCheckbox("Show deceased"),
		shots:    screenshots{dir: cfg.ScreenshotDir, logger: logger},
		width:    w,
		height:   h,
	}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("lineage: read script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			cancel()
			return nil, err
		}
		a.runner = runner
	}
	if cfg.Debug {
		a.fps = &fpsWidget{}
	}
	return a, nil
}

// Controller returns the app's interaction controller.
func (a *App) Controller() *Controller {
	return a.ctrl
}

// Start issues the initial fetch.
func (a *App) Start() {
	a.ctrl.SetCheckboxBounds(a.checkbox.Bounds)
	gen := a.ctrl.Start(a.cfg.ShowDeceasedOrDefault())
	a.logger.Info("viewer started",
		slog.String("url", a.loader.URL(a.cfg.ShowDeceasedOrDefault())),
		slog.Uint64("generation", gen))
}

// Close cancels outstanding fetches.
func (a *App) Close() {
	a.cancel()
}

// Update drains settled fetches, steps the input script and runs the
// gesture recognizer.
func (a *App) Update() error {
	a.drainResults()

	if a.runner != nil {
		a.runner.step(a.ctrl, a.shots.request)
		if a.runner.Done() && a.cfg.ExitAfterScript && a.ctrl.PendingInjections() == 0 {
			return ebiten.Termination
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	a.ctrl.ProcessInput(a.poller.poll())
	a.ctrl.Update(float32(dt))
	if a.fps != nil {
		a.fps.update(dt)
	}
	return nil
}

func (a *App) drainResults() {
	for {
		select {
		case r := <-a.loader.Results():
			a.ctrl.HandleFetchResult(r)
		default:
			return
		}
	}
}

// Draw repaints the tree when a redraw is scheduled and redraws the checkbox
// panel every frame.
func (a *App) Draw(screen *ebiten.Image) {
	if !a.painted {
		screen.Fill(ColorBackground.toRGBA())
		a.painted = true
	}

	if a.ctrl.RedrawPending() {
		a.buffer.Reset()
		if a.ctrl.Draw(a.buffer) {
			if err := a.buffer.Submit(screen); err != nil {
				a.logger.Error("draw tree", slog.Any("error", err))
			}
		}
	}

	a.overlay.Reset()
	a.checkbox.Draw(a.overlay, a.ctrl.ShowDeceased())
	if a.fps != nil {
		a.fps.Draw(a.overlay)
	}
	if err := a.overlay.Submit(screen); err != nil {
		a.logger.Error("draw overlay", slog.Any("error", err))
	}

	a.shots.flush(screen)
}

// Layout keeps the logical screen equal to the window size. A size change
// repaints the tree with the current transform.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		w, h := float64(outsideWidth), float64(outsideHeight)
		a.buffer.Resize(w, h)
		a.overlay.Resize(w, h)
		a.camera.Viewport = Rect{Width: w, Height: h}
		a.painted = false
		a.ctrl.RequestRedraw()
	}
	return outsideWidth, outsideHeight
}

// Run opens the viewer window and blocks until it is closed.
func Run(cfg Config, logger *slog.Logger) error {
	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	app.Start()
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("lineage: run: %w", err)
	}
	return nil
}
