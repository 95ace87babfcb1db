package gobanparser

// Params controls the full detection pipeline. The defaults reproduce
// the tuned constants; expose a modified copy through the With helpers
// rather than mutating shared values.
type Params struct {
	// Pixel classifier: exclusive red-channel ceiling and maximum
	// channel-to-channel difference for a pixel to count as stone.
	BlackThreshold uint8
	GraynessLimit  uint8

	// MinStoneDim is the exclusive floor on both blob dimensions.
	MinStoneDim int

	// MinStones is required both after size filtering and in the final
	// board; fewer means there is not enough geometry to fit a grid.
	MinStones int

	// Grid fitting bounds.
	MaxLatticeRadius float64
	MaxFitError      float64
	MaxIterations    int

	// Verbose enables per-stage diagnostics on stdout.
	Verbose bool

	// Debug, when non-nil, receives intermediate artifacts. It must not
	// influence the pipeline outcome.
	Debug DebugSink
}

// DefaultParams returns the standard pipeline parameters.
func DefaultParams() Params {
	return Params{
		BlackThreshold:   30,
		GraynessLimit:    8,
		MinStoneDim:      5,
		MinStones:        6,
		MaxLatticeRadius: 20,
		MaxFitError:      0.5,
		MaxIterations:    64,
	}
}

// WithThresholds returns a copy with custom classifier thresholds, for
// photographs darker or more color-cast than the defaults assume.
func (p Params) WithThresholds(blackThreshold, graynessLimit uint8) Params {
	p.BlackThreshold = blackThreshold
	p.GraynessLimit = graynessLimit
	return p
}

// WithMinStones returns a copy with a custom stone-count floor.
func (p Params) WithMinStones(n int) Params {
	p.MinStones = n
	return p
}

// WithDebugSink returns a copy that forwards intermediate artifacts to
// sink.
func (p Params) WithDebugSink(sink DebugSink) Params {
	p.Debug = sink
	return p
}
