package utils

import (
	"github.com/chewxy/math32"
	"github.com/voxelsplace/dualmc/dualmc"
)

// SphereVolume fills an n-cubed volume with a radial ramp field whose 128
// iso-surface is a sphere of the given radius around the grid center.
// Values fall off linearly by 128 per sample of distance and are clamped
// to [0,255], so the transition band around the boundary is about two
// samples wide and extracted surfaces interpolate smoothly.
func SphereVolume(n int32, radius float32) (*dualmc.Volume, error) {
	vol, err := dualmc.NewVolume(n, n, n)
	if err != nil {
		return nil, err
	}
	c := float32(n-1) / 2
	for z := int32(0); z < n; z++ {
		for y := int32(0); y < n; y++ {
			for x := int32(0); x < n; x++ {
				dx := float32(x) - c
				dy := float32(y) - c
				dz := float32(z) - c
				r := math32.Sqrt(dx*dx + dy*dy + dz*dz)
				v := 128 + 128*(radius-r)
				if v < 0 {
					v = 0
				}
				if v > 255 {
					v = 255
				}
				vol.Set(x, y, z, uint8(v))
			}
		}
	}
	return vol, nil
}

// RunGenerateSphere writes an n-cubed sphere test volume as .dvol. The
// radius is a third of the grid extent.
func RunGenerateSphere(n int32, outPath string) error {
	vol, err := SphereVolume(n, float32(n)/3)
	if err != nil {
		return err
	}
	return dualmc.SaveDVOL(vol, outPath, dualmc.CompZstd)
}
