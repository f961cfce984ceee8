package main

import (
	"math"
	"math/cmplx"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"soundfield"
	"soundfield/field"
	"soundfield/grid"
	"soundfield/source"
)

// sourceKindList documents the runtime-selectable source kinds for flag help.
const sourceKindList = "point, point-dipole, line, line-dipole, plane, modal, images, edge"

// sourceKind pairs a display name with the uniform pressure evaluator and,
// where one is rendered, the matching velocity evaluator.
type sourceKind struct {
	name     string
	pressure source.Func
	velocity source.VelocityFunc
}

// evalJob is the immutable snapshot the workers evaluate for one generation.
type evalJob struct {
	pressure source.Func
	velocity source.VelocityFunc
	omega    float64
	x0, n0   soundfield.Vec3
	med      soundfield.Medium
	wantVel  bool
}

// Game holds the viewer state: the selected analytic source, the sampled
// field, and the evaluation worker pool.
type Game struct {
	cfg Config
	log *zap.Logger

	kinds   []sourceKind
	kindIdx int

	xAxis []float64
	yAxis []float64

	freq    float64
	x0      soundfield.Vec3
	orient  float64 // orientation angle of n0 in the view plane
	gain    float64
	showVel bool
	dirty   bool

	// samples holds one value per screen pixel, row-major by screen row.
	// Pressure views store complex pressure; velocity views store the
	// velocity magnitude in the real part.
	samples     []complex128
	renderScale float64

	lastEvalDuration time.Duration

	workerMu       sync.Mutex
	workerCond     *sync.Cond
	workerStep     int
	workerPending  int
	workerRows     [][]int
	workersStarted bool
	job            evalJob
}

// newGame constructs a fully initialized viewer.
func newGame(cfg Config, log *zap.Logger) *Game {
	w, h := cfg.Width, cfg.Height
	viewMaxY := viewMinY + (viewMaxX-viewMinX)*float64(h)/float64(w)

	xAxis := make([]float64, w)
	for i := range xAxis {
		xAxis[i] = viewMinX + (float64(i)+0.5)*(viewMaxX-viewMinX)/float64(w)
	}
	// Screen rows grow downward; world y grows upward.
	yAxis := make([]float64, h)
	for i := range yAxis {
		yAxis[i] = viewMaxY - (float64(i)+0.5)*(viewMaxY-viewMinY)/float64(h)
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		xAxis:   xAxis,
		yAxis:   yAxis,
		freq:    cfg.Freq,
		x0:      soundfield.Vec3{X: 1.5, Y: 1, Z: zSlice},
		gain:    1,
		dirty:   true,
		samples: make([]complex128, w*h),
	}
	g.kinds = g.buildKinds()
	for i, k := range g.kinds {
		if k.name == cfg.Source {
			g.kindIdx = i
		}
	}
	return g
}

// buildKinds wires every library evaluator into the viewer. Parameterized
// variants are reduced to the uniform signature by fixing their geometry
// here.
func (g *Game) buildKinds() []sourceKind {
	L := soundfield.Vec3{X: roomDims[0], Y: roomDims[1], Z: roomDims[2]}
	return []sourceKind{
		{"point", source.Point, source.PointVelocity},
		{"point-dipole", source.PointDipole, nil},
		{"line", source.Line, source.LineVelocity},
		{"line-dipole", source.LineDipole, nil},
		{"plane", source.Plane, source.PlaneVelocity},
		{
			name: "modal",
			pressure: func(omega float64, x0, n0 soundfield.Vec3, gr *grid.Grid, med soundfield.Medium) *field.Field {
				return source.PointModal(omega, x0, n0, gr, L, nil, roomDeltan, med)
			},
			velocity: func(omega float64, x0, n0 soundfield.Vec3, gr *grid.Grid, med soundfield.Medium) field.XYZ {
				return source.PointModalVelocity(omega, x0, n0, gr, L, nil, roomDeltan, med)
			},
		},
		{
			name: "images",
			pressure: func(omega float64, x0, n0 soundfield.Vec3, gr *grid.Grid, med soundfield.Medium) *field.Field {
				p, err := source.PointImageSources(omega, x0, n0, gr, L, roomImageOrder, nil, med)
				if err != nil {
					g.log.Error("image-source evaluation failed", zap.Error(err))
					return field.NewFromGrid(gr)
				}
				return p
			},
		},
		{
			name: "edge",
			pressure: func(omega float64, x0, n0 soundfield.Vec3, gr *grid.Grid, med soundfield.Medium) *field.Field {
				return source.LineDirichletEdge(omega, x0, n0, gr, wedgeAlpha, 0, med)
			},
		},
	}
}

// Update handles input and re-evaluates the field when anything changed.
func (g *Game) Update() error {
	g.handleInput()
	if g.dirty {
		g.startWorkers()
		start := time.Now()
		g.evaluate()
		g.lastEvalDuration = time.Since(start)
		g.dirty = false
	}
	return nil
}

// handleInput maps the keyboard onto source movement, orientation, source
// kind, frequency, view mode and render gain.
func (g *Game) handleInput() {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += moveSpeed
	}
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}
	if dx != 0 || dy != 0 {
		g.x0.X = math.Max(viewMinX, math.Min(viewMaxX, g.x0.X+dx))
		maxY := viewMinY + (viewMaxX-viewMinX)*float64(g.cfg.Height)/float64(g.cfg.Width)
		g.x0.Y = math.Max(viewMinY, math.Min(maxY, g.x0.Y+dy))
		g.dirty = true
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.orient += rotateSpeed
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.orient -= rotateSpeed
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.kindIdx = (g.kindIdx + 1) % len(g.kinds)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.showVel = !g.showVel
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.freq = math.Min(maxFreqHz, g.freq+freqStepHz)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.freq = math.Max(minFreqHz, g.freq-freqStepHz)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.gain *= renderGainStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.gain /= renderGainStep
	}
}

// evaluate posts a new job generation to the workers and blocks until every
// assigned row has been computed, then refreshes the render scale.
func (g *Game) evaluate() {
	kind := g.kinds[g.kindIdx]
	job := evalJob{
		pressure: kind.pressure,
		velocity: kind.velocity,
		omega:    2 * math.Pi * g.freq,
		x0:       g.x0,
		n0:       soundfield.Vec3{X: math.Cos(g.orient), Y: math.Sin(g.orient)},
		med:      soundfield.Medium{},
		wantVel:  g.showVel && kind.velocity != nil,
	}

	g.workerMu.Lock()
	g.job = job
	g.workerPending = len(g.workerRows)
	g.workerStep++
	g.workerCond.Broadcast()
	for g.workerPending > 0 {
		g.workerCond.Wait()
	}
	g.workerMu.Unlock()

	g.renderScale = g.autoScale()
}

// autoScale picks the color normalization from the largest finite sample.
func (g *Game) autoScale() float64 {
	max := 0.0
	for _, s := range g.samples {
		a := cmplx.Abs(s)
		if math.IsInf(a, 0) || math.IsNaN(a) {
			continue
		}
		if a > max {
			max = a
		}
	}
	if max == 0 {
		return 1
	}
	return max
}
