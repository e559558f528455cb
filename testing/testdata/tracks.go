package testdata

import "strings"

// GPX_ThreeWaypoints is the smallest valid track: one segment, three points.
// The second interval is a 40 second pause.
var GPX_ThreeWaypoints = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="gpxstat-test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>three</name>
    <trkseg>
      <trkpt lat="0" lon="0">
        <ele>100</ele>
        <time>2024-06-01T08:00:00Z</time>
      </trkpt>
      <trkpt lat="0" lon="0.0001">
        <ele>105</ele>
        <time>2024-06-01T08:00:10Z</time>
      </trkpt>
      <trkpt lat="0" lon="0.0002">
        <ele>95</ele>
        <time>2024-06-01T08:00:50Z</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>
`

// GPX_NoElevation is valid but has no retained waypoints.
var GPX_NoElevation = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="gpxstat-test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="47.1" lon="8.5"><time>2024-06-01T08:00:00Z</time></trkpt>
      <trkpt lat="47.1" lon="8.6"><time>2024-06-01T08:00:10Z</time></trkpt>
      <trkpt lat="47.1" lon="8.7"><time>2024-06-01T08:00:20Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>
`

// GPX_TwoSegments carries metadata, extensions, a trackpoint without elevation
// (the fifth) and elevation text that is not in canonical float form.
var GPX_TwoSegments = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="gpxstat-test" xmlns="http://www.topografix.com/GPX/1/1"
     xmlns:gpxtpx="http://www.garmin.com/xmlschemas/TrackPointExtension/v1">
  <metadata>
    <name>Morning ride</name>
    <time>2024-06-02T06:59:00Z</time>
  </metadata>
  <trk>
    <name>ride</name>
    <trkseg>
      <trkpt lat="46.94800" lon="7.44740">
        <ele>540.0</ele>
        <time>2024-06-02T07:00:00Z</time>
        <extensions><gpxtpx:TrackPointExtension><gpxtpx:hr>120</gpxtpx:hr></gpxtpx:TrackPointExtension></extensions>
      </trkpt>
      <trkpt lat="46.94810" lon="7.44760">
        <ele>541.25</ele>
        <time>2024-06-02T07:00:05Z</time>
      </trkpt>
      <trkpt lat="46.94820" lon="7.44780">
        <ele>0542.5</ele>
        <time>2024-06-02T07:00:10Z</time>
      </trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="46.94830" lon="7.44800">
        <ele>542.5</ele>
        <time>2024-06-02T07:05:10Z</time>
      </trkpt>
      <trkpt lat="46.94840" lon="7.44820">
        <time>2024-06-02T07:05:15Z</time>
      </trkpt>
      <trkpt lat="46.94850" lon="7.44840">
        <ele>541.0</ele>
        <time>2024-06-02T07:05:20Z</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>
`

// GPX_NoNamespace is structurally a track but declares no namespace,
// so it fails validation while remaining extractable.
var GPX_NoNamespace = `<?xml version="1.0"?>
<gpx version="1.1">
  <trk>
    <trkseg>
      <trkpt lat="10" lon="20"><ele>1</ele><time>2024-06-01T08:00:00Z</time></trkpt>
      <trkpt lat="10" lon="20.001"><ele>2</ele><time>2024-06-01T08:00:10Z</time></trkpt>
      <trkpt lat="10" lon="20.002"><ele>3</ele><time>2024-06-01T08:00:20Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>
`

// GPX_TooFewPoints has a segment with only two trackpoints.
var GPX_TooFewPoints = `<?xml version="1.0"?>
<gpx version="1.1" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="10" lon="20"><ele>1</ele><time>2024-06-01T08:00:00Z</time></trkpt>
      <trkpt lat="10" lon="20.001"><ele>2</ele><time>2024-06-01T08:00:10Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>
`

// GPX_BadValues violates several value constraints:
// a latitude out of range, a missing time, and an unparseable time.
var GPX_BadValues = `<?xml version="1.0"?>
<gpx version="1.1" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="91" lon="20"><ele>1</ele><time>2024-06-01T08:00:00Z</time></trkpt>
      <trkpt lat="10" lon="20.001"><ele>2</ele></trkpt>
      <trkpt lat="10" lon="20.002"><ele>3</ele><time>yesterday</time></trkpt>
    </trkseg>
  </trk>
</gpx>
`

// GPX_TwoTracks has one track too many.
var GPX_TwoTracks = `<?xml version="1.0"?>
<gpx version="1.1" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="10" lon="20"><ele>1</ele><time>2024-06-01T08:00:00Z</time></trkpt>
      <trkpt lat="10" lon="20.001"><ele>2</ele><time>2024-06-01T08:00:10Z</time></trkpt>
      <trkpt lat="10" lon="20.002"><ele>3</ele><time>2024-06-01T08:00:20Z</time></trkpt>
    </trkseg>
  </trk>
  <trk>
    <trkseg>
      <trkpt lat="11" lon="20"><ele>1</ele><time>2024-06-01T09:00:00Z</time></trkpt>
      <trkpt lat="11" lon="20.001"><ele>2</ele><time>2024-06-01T09:00:10Z</time></trkpt>
      <trkpt lat="11" lon="20.002"><ele>3</ele><time>2024-06-01T09:00:20Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>
`

// GPX_Malformed is not well-formed XML.
var GPX_Malformed = `<?xml version="1.0"?>
<gpx version="1.1" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="10" lon="20"><ele>1</ele><time>2024-06-01T08:00:00Z</time>
    </trkseg>
  </trk>
</gpx>
`

// GPX_Latin1 is GPX_ThreeWaypoints declared and encoded as ISO-8859-1,
// with a non-ASCII track name.
var GPX_Latin1 = strings.NewReplacer(
	`encoding="UTF-8"`, `encoding="ISO-8859-1"`,
	"<name>three</name>", "<name>Caf\xe9</name>",
).Replace(GPX_ThreeWaypoints)
