package stone

// Params controls pixel classification and blob acceptance.
type Params struct {
	// BlackThreshold is the exclusive upper bound on the red channel for a
	// pixel to count as stone material.
	BlackThreshold uint8

	// GraynessLimit is the maximum channel-to-channel difference for a
	// pixel to count as achromatic.
	GraynessLimit uint8

	// MinDim is the exclusive lower bound on both blob dimensions; smaller
	// blobs are discarded as noise.
	MinDim int
}

// DefaultParams returns parameters tuned for black stones in a
// daylight photograph of a board.
func DefaultParams() Params {
	return Params{
		BlackThreshold: 30, // stones read nearly black even in shade
		GraynessLimit:  8,  // rejects dark saturated wood grain
		MinDim:         5,
	}
}
