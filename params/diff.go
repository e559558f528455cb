package params

import "github.com/rotblauer/gpxstat/common"

type DiffConfig struct {
	// EarthRadius is the sphere radius used for haversine distances, in meters.
	EarthRadius float64 `mapstructure:"earth-radius"`

	// MaxSpeed is the highest plausible calculated speed, in m/s.
	// Faster intervals are treated as GPS jumps: their speed is zeroed and a warning is emitted.
	// NOTE: Legacy documentation calls this 110 km/h, but the value has always been 30 m/s (108 km/h).
	MaxSpeed float64 `mapstructure:"max-speed"`
}

var DefaultDiffConfig = &DiffConfig{
	EarthRadius: common.EarthRadiusLocal,
	MaxSpeed:    common.SpeedImplausible,
}
