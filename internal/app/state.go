package app

import (
	"log/slog"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomobius/pkg/analysis"
	"github.com/philipparndt/gomobius/pkg/mesh"
	"github.com/philipparndt/gomobius/pkg/mobius"
	"github.com/philipparndt/gomobius/pkg/watcher"
)

// Options configures the viewer
type Options struct {
	Params     mobius.Params
	ConfigPath string // reloaded on change when set
	Logger     *slog.Logger
}

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	azimuth       float32    // around the Z axis
	elevation     float32    // above the XY plane
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAz     float32
	defaultEl     float32
}

// ModelData holds the strip and its GPU mesh
type ModelData struct {
	strip    *mobius.Strip
	model    *mesh.Model
	report   *analysis.Report
	mesh     rl.Mesh
	material rl.Material
	loaded   bool       // mesh uploaded to the GPU
	center   rl.Vector3 // Model center
	size     float32    // Model size (max dimension)
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showEdge      bool
	showHelp      bool
}

// FileWatchState holds config watching and reload state
type FileWatchState struct {
	configPath  string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set from the watcher goroutine
	lastError   string
}

// UIState holds UI-related state
type UIState struct {
	font rl.Font
}
