package params

import "time"

// ActConfig decides whether an interval between two waypoints
// represents movement (active) or a pause or standstill (inactive).
// Either threshold alone is sufficient to mark an interval inactive.
type ActConfig struct {
	// PauseInterval separates active intervals by time.
	// A gap between waypoints at or above it is a pause.
	PauseInterval time.Duration `mapstructure:"pause-interval"`

	// StationaryDistance separates active intervals by distance, in meters.
	// A displacement at or below it is considered standing still (or GPS noise).
	StationaryDistance float64 `mapstructure:"stationary-distance"`
}

var DefaultActConfig = &ActConfig{
	PauseInterval:      30 * time.Second,
	StationaryDistance: 0.75,
}

type SmoothConfig struct {
	// Window is the size of the centered median window applied to elevations.
	// Values below 2 disable smoothing.
	Window int `mapstructure:"smooth-window"`
}

var DefaultSmoothConfig = &SmoothConfig{
	Window: 7,
}

type SimplificationConfig struct {
	DouglasPeuckerThreshold float64 `mapstructure:"simplify-threshold"`
}

var DefaultSimplificationConfig = &SimplificationConfig{
	DouglasPeuckerThreshold: 0.00008,
}
