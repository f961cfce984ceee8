package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// sourceMarkerRad is the half-width of the red source marker in pixels.
const sourceMarkerRad = 2

// Draw colorizes the current samples and overlays the source marker and the
// optional debug text.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.cfg.Width, g.cfg.Height
	pixels := make([]byte, w*h*4)
	scale := g.renderScale / g.gain
	if scale == 0 {
		scale = 1
	}

	magView := g.showVel && g.kinds[g.kindIdx].velocity != nil
	for idx, s := range g.samples {
		var r, gr, b byte
		if magView {
			r, gr, b = magnitudeColor(real(s) / scale)
		} else {
			r, gr, b = divergingColor(real(s) / scale)
		}
		base := idx * 4
		pixels[base] = r
		pixels[base+1] = gr
		pixels[base+2] = b
		pixels[base+3] = 255
	}
	screen.WritePixels(pixels)

	px, py := g.worldToScreen(g.x0.X, g.x0.Y)
	for y := -sourceMarkerRad; y <= sourceMarkerRad; y++ {
		for x := -sourceMarkerRad; x <= sourceMarkerRad; x++ {
			cx, cy := px+x, py+y
			if cx >= 0 && cx < w && cy >= 0 && cy < h {
				screen.Set(cx, cy, color.RGBA{255, 0, 0, 255})
			}
		}
	}

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nSource: %s (Tab)\nFreq: %.0f Hz (+/-)\nView: %s (V)\nEval: %.1f ms",
			ebiten.ActualFPS(), g.kinds[g.kindIdx].name, g.freq, g.viewName(), g.lastEvalDuration.Seconds()*1000)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.cfg.Width, g.cfg.Height }

// viewName names the current render quantity for the overlay.
func (g *Game) viewName() string {
	if g.showVel && g.kinds[g.kindIdx].velocity != nil {
		return "velocity magnitude"
	}
	return "pressure"
}

// worldToScreen maps world coordinates onto pixel coordinates.
func (g *Game) worldToScreen(x, y float64) (int, int) {
	w, h := g.cfg.Width, g.cfg.Height
	viewMaxY := viewMinY + (viewMaxX-viewMinX)*float64(h)/float64(w)
	px := int((x - viewMinX) / (viewMaxX - viewMinX) * float64(w))
	py := int((viewMaxY - y) / (viewMaxY - viewMinY) * float64(h))
	return px, py
}

// divergingColor maps a normalized signed value onto a blue/black/red ramp:
// compressions glow red, rarefactions blue. Non-finite samples (source
// positions, resonances) render white.
func divergingColor(v float64) (byte, byte, byte) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 255, 255, 255
	}
	v = math.Max(-1, math.Min(1, v))
	level := byte(math.Min(255, math.Abs(v)*255))
	if v >= 0 {
		return level, level / 4, 0
	}
	return 0, level / 4, level
}

// magnitudeColor maps a normalized non-negative value onto a green ramp.
func magnitudeColor(v float64) (byte, byte, byte) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 255, 255, 255
	}
	level := byte(math.Min(255, math.Abs(v)*255))
	return level / 5, level, level / 3
}
