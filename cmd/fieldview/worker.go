package main

import (
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"soundfield/field"
	"soundfield/grid"
)

// assignRows distributes screen rows across workers in round-robin fashion.
// Every evaluator call is independent, so splitting the observation grid
// into per-row tiles is the natural parallelization axis.
func assignRows(workerCount, rows int) [][]int {
	if workerCount < 1 {
		workerCount = 1
	}
	out := make([][]int, workerCount)
	for y := 0; y < rows; y++ {
		idx := y % workerCount
		out[idx] = append(out[idx], y)
	}
	return out
}

// startWorkers launches the background goroutines that evaluate field rows.
func (g *Game) startWorkers() {
	if g.workersStarted {
		return
	}
	count := g.cfg.Workers
	if count < 1 {
		count = runtime.GOMAXPROCS(0)
	}
	if g.workerCond == nil {
		g.workerCond = sync.NewCond(&g.workerMu)
	}
	g.workerRows = assignRows(count, g.cfg.Height)
	g.workersStarted = true
	for i := range g.workerRows {
		go g.evalWorkerLoop(i)
	}
}

// evalWorkerLoop waits for a new job generation, evaluates the rows assigned
// to this worker, and reports completion. Workers write disjoint sample
// rows, so no lock is held during evaluation.
func (g *Game) evalWorkerLoop(index int) {
	lastStep := 0
	g.workerMu.Lock()
	for {
		for g.workerStep == lastStep {
			g.workerCond.Wait()
		}
		lastStep = g.workerStep
		job := g.job
		rows := g.workerRows[index]
		g.workerMu.Unlock()

		for _, y := range rows {
			g.evalRow(job, y)
		}

		g.workerMu.Lock()
		g.workerPending--
		if g.workerPending == 0 {
			g.workerCond.Broadcast()
		}
	}
}

// evalRow evaluates one screen row as a 1 x width x 1 observation grid and
// stores the samples.
func (g *Game) evalRow(job evalJob, y int) {
	rowGrid, err := grid.New(g.xAxis, []float64{g.yAxis[y]}, []float64{zSlice})
	if err != nil {
		return
	}

	base := y * g.cfg.Width
	if job.wantVel {
		v := job.velocity(job.omega, job.x0, job.n0, rowGrid, job.med)
		for i := range g.xAxis {
			g.samples[base+i] = complex(velocityMagnitude(v, i), 0)
		}
		return
	}
	p := job.pressure(job.omega, job.x0, job.n0, rowGrid, job.med)
	for i := range g.xAxis {
		g.samples[base+i] = p.At(i, 0, 0)
	}
}

// velocityMagnitude collapses the three velocity components at sample i to
// a single magnitude for rendering.
func velocityMagnitude(v field.XYZ, i int) float64 {
	x := cmplx.Abs(v.X.At(i, 0, 0))
	y := cmplx.Abs(v.Y.At(i, 0, 0))
	z := cmplx.Abs(v.Z.At(i, 0, 0))
	return math.Sqrt(x*x + y*y + z*z)
}
