package params

// GPXNamespace is the namespace track documents are validated against.
// Extraction also accepts documents without a namespace.
const GPXNamespace = "http://www.topografix.com/GPX/1/1"

// GPXTimeLayout is the waypoint time format, always UTC.
// Fractional seconds are tolerated by the parser and truncated.
const GPXTimeLayout = "2006-01-02T15:04:05Z"

type GPXConfig struct {
	TimeLayout string `mapstructure:"time-layout"`
}

var DefaultGPXConfig = &GPXConfig{
	TimeLayout: GPXTimeLayout,
}
