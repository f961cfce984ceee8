// Command fieldview renders closed-form acoustic source fields interactively.
// WASD moves the source, Q/E rotates its orientation, Tab cycles the source
// kind, +/- changes the frequency, V toggles the velocity-magnitude view and
// [ ] adjust the render gain.
package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("configuration failed", zap.Error(err))
	}
	cfg = applyFlags(cfg)

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatal("CPU profile failed", zap.Error(err))
		}
		defer stop()
	}

	g := newGame(cfg, log)
	log.Info("fieldview starting",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Float64("freq_hz", cfg.Freq),
		zap.String("source", g.kinds[g.kindIdx].name),
	)

	ebiten.SetWindowSize(cfg.Width*windowScale, cfg.Height*windowScale)
	ebiten.SetWindowTitle("soundfield viewer")
	ebiten.SetTPS(int(defaultTPS))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("viewer exited", zap.Error(err))
	}
}
