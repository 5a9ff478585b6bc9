package utils

import (
	"fmt"

	"github.com/voxelsplace/dualmc/dualmc"
)

// ParseCompression maps a codec name to its DVOL compression id.
func ParseCompression(name string) (dualmc.Compression, error) {
	switch name {
	case "none":
		return dualmc.CompNone, nil
	case "zlib":
		return dualmc.CompZlib, nil
	case "zstd":
		return dualmc.CompZstd, nil
	}
	return 0, fmt.Errorf("unknown compression %q (want none, zlib or zstd)", name)
}

// RunRaw2DVOL wraps a headerless sample file into a .dvol container.
func RunRaw2DVOL(inPath string, nx, ny, nz int32, comp dualmc.Compression, outPath string) error {
	vol, err := dualmc.LoadRaw(inPath, nx, ny, nz)
	if err != nil {
		return err
	}
	return dualmc.SaveDVOL(vol, outPath, comp)
}

// RunDVOL2Raw unwraps a .dvol container into a headerless sample file.
func RunDVOL2Raw(inPath, outPath string) error {
	vol, err := dualmc.LoadDVOL(inPath)
	if err != nil {
		return err
	}
	return vol.SaveRaw(outPath)
}
