package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomobius/pkg/analysis"
	"github.com/philipparndt/gomobius/pkg/config"
	"github.com/philipparndt/gomobius/pkg/mesh"
	"github.com/philipparndt/gomobius/pkg/mobius"
	"github.com/philipparndt/gomobius/pkg/watcher"
	"golang.org/x/image/font/gofont/goregular"
)

type App struct {
	Camera    CameraState
	Model     ModelData
	View      ViewSettings
	FileWatch FileWatchState
	UI        UIState
	logger    *slog.Logger
}

// Run opens the interactive viewer and blocks until the window is closed
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	app := &App{
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			showEdge:      true,
		},
		FileWatch: FileWatchState{configPath: opts.ConfigPath},
		logger:    logger,
	}

	// Build the strip before opening a window so bad parameters fail early
	strip, model, report, err := build(opts.Params)
	if err != nil {
		return err
	}

	// Initialize window
	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "Möbius Strip")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	// Load the Go font at a large base size so it stays crisp when scaled down
	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 96, nil)
	defer rl.UnloadFont(app.UI.font)

	app.Model.material = rl.LoadMaterialDefault()
	app.setModel(strip, model, report)
	app.resetCameraView()
	defer app.unloadMesh()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if app.FileWatch.configPath != "" {
		if err := app.setupFileWatcher(ctx); err != nil {
			logger.Warn("auto-reload unavailable", "error", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Reloads run on the main thread because they touch GPU resources
		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadConfig()
		}

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled {
			rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		if app.View.showEdge {
			app.drawEdge()
		}
		app.drawAxes()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

// build samples the strip and derives everything the viewer displays
func build(p mobius.Params) (*mobius.Strip, *mesh.Model, *analysis.Report, error) {
	strip, err := mobius.New(p)
	if err != nil {
		return nil, nil, nil, err
	}
	model, err := mesh.FromGrids("mobius", strip.X(), strip.Y(), strip.Z())
	if err != nil {
		return nil, nil, nil, err
	}
	report, err := analysis.AnalyzeStrip(strip)
	if err != nil {
		return nil, nil, nil, err
	}
	return strip, model, report, nil
}

// setModel replaces the displayed strip and uploads its mesh
func (app *App) setModel(strip *mobius.Strip, model *mesh.Model, report *analysis.Report) {
	app.unloadMesh()

	app.Model.strip = strip
	app.Model.model = model
	app.Model.report = report
	app.Model.mesh = modelToRaylibMesh(model)
	app.Model.loaded = true

	bbox := model.BoundingBox()
	center := bbox.Center()
	app.Model.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Model.size = float32(bbox.MaxExtent())

	app.logger.Info("strip loaded",
		"params", strip.Params().String(),
		"triangles", model.TriangleCount())
}

func (app *App) unloadMesh() {
	if app.Model.loaded {
		rl.UnloadMesh(&app.Model.mesh)
		app.Model.loaded = false
	}
}

// setParams rebuilds the strip with new parameters, keeping the camera
func (app *App) setParams(p mobius.Params) error {
	strip, model, report, err := build(p)
	if err != nil {
		return err
	}
	app.setModel(strip, model, report)
	return nil
}

// setupFileWatcher reloads the configuration whenever its file changes
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, app.logger)
	if err != nil {
		return err
	}

	err = fw.Watch([]string{app.FileWatch.configPath}, func(string) {
		app.FileWatch.needsReload.Store(true)
	})
	if err != nil {
		fw.Close()
		return err
	}

	go func() {
		if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
			app.logger.Warn("config watcher stopped", "error", err)
		}
	}()

	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadConfig applies the strip section of the watched configuration
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.FileWatch.configPath)
	if err == nil {
		err = app.setParams(cfg.Params())
	}
	if err != nil {
		app.FileWatch.lastError = err.Error()
		app.logger.Error("failed to reload config", "path", app.FileWatch.configPath, "error", err)
		return
	}
	app.FileWatch.lastError = ""
}

// stepResolution grows or shrinks a resolution by a quarter, never going
// below two samples
func stepResolution(current, direction int) int {
	step := int(math.Max(1, math.Round(float64(current)*0.25)))
	next := current + direction*step
	if next < 2 {
		return 2
	}
	return next
}

func (app *App) changeResolution(direction int) {
	p := app.Model.strip.Params()
	p.N = stepResolution(p.N, direction)
	if err := app.setParams(p); err != nil {
		app.FileWatch.lastError = fmt.Sprintf("resolution %d: %v", p.N, err)
	}
}

func (app *App) changeWidth(factor float64) {
	p := app.Model.strip.Params()
	p.W *= factor
	if err := app.setParams(p); err != nil {
		app.FileWatch.lastError = fmt.Sprintf("width %.3f: %v", p.W, err)
	}
}
