package main

import "flag"

// Command-line flags. Each overrides the corresponding FIELDVIEW_*
// environment default when set.
var (
	// freqFlag sets the source frequency in Hz.
	freqFlag = flag.Float64("freq", 0, "source frequency in Hz (overrides FIELDVIEW_FREQ)")

	// sourceFlag selects the initial source kind; Tab cycles at runtime.
	sourceFlag = flag.String("source", "", "initial source kind: "+sourceKindList)

	// workersFlag sets the number of row-evaluation goroutines.
	workersFlag = flag.Int("workers", 0, "field evaluation workers (0 = one per CPU)")

	// debugFlag enables the FPS and evaluation-time overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and evaluation timing overlay")

	// cpuProfileFlag writes a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this path")
)

// applyFlags folds set flags over the environment configuration.
func applyFlags(cfg Config) Config {
	if *freqFlag > 0 {
		cfg.Freq = *freqFlag
	}
	if *sourceFlag != "" {
		cfg.Source = *sourceFlag
	}
	if *workersFlag > 0 {
		cfg.Workers = *workersFlag
	}
	return cfg
}
