package main

import (
	"math"

	"github.com/kelseyhightower/envconfig"
)

// Rendering and interaction constants. The world window is chosen so the
// demo room (and the wedge edge at the origin) sit inside the view.
const (
	windowScale = 2

	viewMinX = -1.0
	viewMaxX = 5.0
	viewMinY = -1.5
	// viewMaxY follows from the aspect ratio; see newGame.

	// zSlice is the height of the rendered x/y plane for the 3D sources.
	zSlice = 1.2

	moveSpeed      = 0.02 // meters per tick
	rotateSpeed    = 0.03 // radians per tick
	freqStepHz     = 10.0
	minFreqHz      = 20.0
	maxFreqHz      = 4000.0
	defaultTPS     = 60.0
	renderGainStep = 1.25
)

// Room geometry used by the modal and image-source views.
var (
	roomDims       = [3]float64{4, 3, 2.5}
	roomImageOrder = 3
	roomDeltan     = 0.05
	wedgeAlpha     = 3 * math.Pi / 2
)

// Config carries the environment-derived defaults, overridable by flags.
type Config struct {
	Width   int     `default:"256"`
	Height  int     `default:"256"`
	Freq    float64 `default:"500"`
	Source  string  `default:"point"`
	Workers int     `default:"0"` // 0 selects one worker per CPU
}

// loadConfig reads FIELDVIEW_* environment variables into a Config.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("fieldview", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
