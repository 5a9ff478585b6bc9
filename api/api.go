// Package api offers in-memory conversions between volume blobs and mesh
// blobs for embedders that do not want to touch the filesystem.
package api

import (
	"bytes"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxelsplace/dualmc/dualmc"
)

// Options selects the extraction parameters for the conversion helpers.
type Options struct {
	Iso      uint8
	Manifold bool
	Soup     bool
}

// RawToOBJ extracts the iso-surface of a headerless sample blob and
// returns the Wavefront OBJ text.
func RawToOBJ(raw []byte, nx, ny, nz int32, opt Options) ([]byte, error) {
	var mc dualmc.DualMC
	var mesh dualmc.Mesh
	if err := mc.Build(raw, nx, ny, nz, opt.Iso, opt.Manifold, opt.Soup, &mesh.Vertices, &mesh.Quads); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := mesh.WriteOBJ(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DVOLToOBJ extracts the iso-surface of a .dvol blob and returns the
// Wavefront OBJ text.
func DVOLToOBJ(dvol []byte, opt Options) ([]byte, error) {
	vol, err := dualmc.UnmarshalDVOL(dvol)
	if err != nil {
		return nil, err
	}
	return RawToOBJ(vol.Data, vol.NX, vol.NY, vol.NZ, opt)
}

// RawToGLB extracts the iso-surface of a headerless sample blob and
// returns a binary glTF document. Quads are split into triangles for the
// export; the mesh itself is extracted as quads.
func RawToGLB(raw []byte, nx, ny, nz int32, opt Options) ([]byte, error) {
	var mc dualmc.DualMC
	var mesh dualmc.Mesh
	if err := mc.Build(raw, nx, ny, nz, opt.Iso, opt.Manifold, opt.Soup, &mesh.Vertices, &mesh.Quads); err != nil {
		return nil, err
	}
	doc, err := MeshToGLTF(&mesh)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DVOLToGLB extracts the iso-surface of a .dvol blob and returns a
// binary glTF document.
func DVOLToGLB(dvol []byte, opt Options) ([]byte, error) {
	vol, err := dualmc.UnmarshalDVOL(dvol)
	if err != nil {
		return nil, err
	}
	return RawToGLB(vol.Data, vol.NX, vol.NY, vol.NZ, opt)
}

// MeshToGLTF builds a single-node glTF document from an extracted mesh,
// with flat per-face normals.
func MeshToGLTF(mesh *dualmc.Mesh) (*gltf.Document, error) {
	positions := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{v.X, v.Y, v.Z}
	}
	indices := mesh.TriangleIndices()

	// flat normals per face; shared vertices keep the last face's normal
	normals := make([][3]float32, len(positions))
	for i := 0; i < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[v0], positions[v1], positions[v2]
		vec1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		vec2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		cross := [3]float32{
			vec1[1]*vec2[2] - vec1[2]*vec2[1],
			vec1[2]*vec2[0] - vec1[0]*vec2[2],
			vec1[0]*vec2[1] - vec1[1]*vec2[0],
		}
		length := math32.Sqrt(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])
		if length > 0 {
			cross[0] /= length
			cross[1] /= length
			cross[2] /= length
		}
		normals[v0] = cross
		normals[v1] = cross
		normals[v2] = cross
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "DVOL -> GLB"
	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indicesAccessor := modeler.WriteIndices(doc, indices)
	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}
	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{0.8, 0.8, 0.8, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	prim.Material = gltf.Index(0)
	meshGltf := &gltf.Mesh{Name: "IsoSurface", Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{meshGltf}
	node := &gltf.Node{Mesh: gltf.Index(0)}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}
