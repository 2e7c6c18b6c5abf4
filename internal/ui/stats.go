package ui

// FrameStats carries the driver's per-frame numbers for the HUD readout.
// RateOK is false when no real time elapsed between ticks, in which case
// the rate line shows as unavailable instead of dividing by zero.
type FrameStats struct {
	TickRate   float64
	TickMillis float64
	RateOK     bool

	Epoch      int
	SpeedLimit int
}
