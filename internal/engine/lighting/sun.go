// Package lighting provides the directional light the scene is shaded with.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/heliscene/pkg/math"
)

// Sun is a directional light with an ambient floor.
type Sun struct {
	Direction math.Vec3 // unit vector pointing towards the sun
	Ambient   float32   // brightness of faces turned away, in [0, 1]
}

// NewSun creates a sun from angles in degrees. Ambient is clamped to [0, 1].
func NewSun(azimuth, elevation, ambient float32) Sun {
	return Sun{
		Direction: SunDirection(azimuth, elevation),
		Ambient:   math32.Max(0, math32.Min(1, ambient)),
	}
}

// SunDirection converts azimuth/elevation angles to a light direction.
// Azimuth is rotation around the Y axis measured from +Z, elevation is the
// angle above the horizon. The result points towards the sun.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := math.Radians(azimuth)
	el := math.Radians(elevation)

	sinAz, cosAz := math32.Sincos(az)
	sinEl, cosEl := math32.Sincos(el)

	return math.Vec3{
		X: cosEl * sinAz,
		Y: sinEl,
		Z: cosEl * cosAz,
	}
}

// Intensity returns the brightness factor for a surface with unit normal n.
// It matches the default fragment shader.
func (s Sun) Intensity(n math.Vec3) float32 {
	diffuse := math32.Max(n.Dot(s.Direction), 0)
	return s.Ambient + (1-s.Ambient)*diffuse
}
