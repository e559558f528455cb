package common

// All units are in metric:
// - Speed is in m/s
// - Distance is in meters
// - Time is in seconds

// EarthRadiusLocal is the radius track distances are measured with.
// Summaries computed with it are not comparable with ones using the mean radius.
const EarthRadiusLocal = 6_379_000.0

const EarthRadiusMean = 6_371_000.0

const MetersPerSecondToKMH = 3.6

// SpeedImplausible is the speed above which an interval is taken for a GPS jump.
const SpeedImplausible = 30.0 // or 108 km/h
