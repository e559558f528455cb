package params

// TrackConfig is everything a single track processing run depends on.
// It is hashed into result cache keys, so only add fields that change output.
type TrackConfig struct {
	ActConfig  `mapstructure:",squash"`
	DiffConfig `mapstructure:",squash"`
	GPXConfig  `mapstructure:",squash"`

	// SkipInactive excludes inactive intervals from distance, duration and average speed.
	SkipInactive bool `mapstructure:"skip-inactive"`
}

func DefaultTrackConfig() *TrackConfig {
	return &TrackConfig{
		ActConfig:    *DefaultActConfig,
		DiffConfig:   *DefaultDiffConfig,
		GPXConfig:    *DefaultGPXConfig,
		SkipInactive: true,
	}
}
