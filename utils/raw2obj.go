package utils

import (
	"github.com/voxelsplace/dualmc/dualmc"
)

// RunRaw2OBJ extracts the iso-surface of a headerless sample file and
// writes it as Wavefront OBJ quads.
func RunRaw2OBJ(inPath string, nx, ny, nz int32, iso uint8, manifold, soup bool, outPath string) error {
	vol, err := dualmc.LoadRaw(inPath, nx, ny, nz)
	if err != nil {
		return err
	}
	var mc dualmc.DualMC
	mesh, err := mc.BuildMesh(vol, iso, manifold, soup)
	if err != nil {
		return err
	}
	return mesh.SaveOBJ(outPath)
}

// RunDVOL2OBJ extracts the iso-surface of a .dvol file and writes it as
// Wavefront OBJ quads.
func RunDVOL2OBJ(inPath string, iso uint8, manifold, soup bool, outPath string) error {
	vol, err := dualmc.LoadDVOL(inPath)
	if err != nil {
		return err
	}
	var mc dualmc.DualMC
	mesh, err := mc.BuildMesh(vol, iso, manifold, soup)
	if err != nil {
		return err
	}
	return mesh.SaveOBJ(outPath)
}
