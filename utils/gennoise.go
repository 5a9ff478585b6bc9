package utils

import (
	"math/rand"
	"time"

	"github.com/voxelsplace/dualmc/dualmc"
)

// NoiseVolume fills a volume so that roughly percentage percent of the
// samples carry a random value in [128,255] and the rest stay zero.
// Useful as stress input for the extractor and the sparse DVOL encoding.
func NoiseVolume(nx, ny, nz int32, percentage float64, r *rand.Rand) (*dualmc.Volume, error) {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	vol, err := dualmc.NewVolume(nx, ny, nz)
	if err != nil {
		return nil, err
	}
	for i := range vol.Data {
		if r.Float64()*100 < percentage {
			vol.Data[i] = uint8(128 + r.Intn(128))
		}
	}
	return vol, nil
}

// RunGenerateNoise writes a random test volume as .dvol.
func RunGenerateNoise(nx, ny, nz int32, percentage float64, outPath string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	vol, err := NoiseVolume(nx, ny, nz, percentage, r)
	if err != nil {
		return err
	}
	return dualmc.SaveDVOL(vol, outPath, dualmc.CompZstd)
}
