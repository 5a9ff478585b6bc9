package utils

import (
	"github.com/qmuntal/gltf"
	"github.com/voxelsplace/dualmc/api"
	"github.com/voxelsplace/dualmc/dualmc"
)

// RunRaw2GLB extracts the iso-surface of a headerless sample file and
// writes a binary glTF file.
func RunRaw2GLB(inPath string, nx, ny, nz int32, iso uint8, manifold bool, outPath string) error {
	vol, err := dualmc.LoadRaw(inPath, nx, ny, nz)
	if err != nil {
		return err
	}
	return saveGLB(vol, iso, manifold, outPath)
}

// RunDVOL2GLB extracts the iso-surface of a .dvol file and writes a
// binary glTF file.
func RunDVOL2GLB(inPath string, iso uint8, manifold bool, outPath string) error {
	vol, err := dualmc.LoadDVOL(inPath)
	if err != nil {
		return err
	}
	return saveGLB(vol, iso, manifold, outPath)
}

func saveGLB(vol *dualmc.Volume, iso uint8, manifold bool, outPath string) error {
	var mc dualmc.DualMC
	mesh, err := mc.BuildMesh(vol, iso, manifold, false)
	if err != nil {
		return err
	}
	doc, err := api.MeshToGLTF(mesh)
	if err != nil {
		return err
	}
	return gltf.SaveBinary(doc, outPath)
}
