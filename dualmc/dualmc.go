// Package dualmc extracts quad-mesh iso-surfaces from regularly sampled
// 8-bit volumes with Gregory M. Nielson's dual marching cubes. Faces and
// vertices of standard marching cubes correspond to vertices and faces of
// the dual algorithm, so the mesh consists entirely of quadrangles.
// Optionally the manifold dual marching cubes correction from Rephael
// Wenger ("Isosurfaces: Geometry, Topology, and Algorithms", ch. 3.3.5)
// is applied, which guarantees 2-manifold output.
package dualmc

// DualMC is the extraction engine. The zero value is ready to use. An
// instance must not be re-entered while Build is in progress; distinct
// instances are fully independent.
type DualMC struct {
	vol              grid
	generateManifold bool

	// pointToIndex memoizes shared vertex indices. A dual point is
	// uniquely identified by its linearized cell id and point code, and a
	// cell never emits two dual points with the same code, so the packed
	// key is injective.
	pointToIndex map[uint64]int32
}

func dualPointKey(cellID int32, code pointCode) uint64 {
	return uint64(uint32(cellID)) | uint64(code)<<32
}

// Build extracts the iso-surface of a nx*ny*nz sample grid. Samples at or
// above iso are inside. vertices and quads are caller-owned; both are
// truncated on entry and appended to. With soup set, vertices are not
// shared between quads and every quad k references vertices 4k..4k+3.
// Output is deterministic for identical inputs.
//
// len(volume) must equal nx*ny*nz and the product must fit in int32;
// otherwise Build fails with ErrInvalidInput and leaves the buffers
// empty. Any dimension below 2 yields an empty mesh.
func (d *DualMC) Build(volume []uint8, nx, ny, nz int32, iso uint8, manifold, soup bool, vertices *[]Vertex, quads *[]Quad) error {
	*vertices = (*vertices)[:0]
	*quads = (*quads)[:0]

	if err := checkVolume(volume, nx, ny, nz); err != nil {
		return err
	}

	d.vol = grid{data: volume, dims: [3]int32{nx, ny, nz}}
	d.generateManifold = manifold
	defer func() { d.vol.data = nil }()

	if nx < 2 || ny < 2 || nz < 2 {
		return nil
	}

	if soup {
		d.buildQuadSoup(iso, vertices, quads)
	} else {
		d.buildSharedVerticesQuads(iso, vertices, quads)
	}
	return nil
}

// BuildMesh is a convenience wrapper around Build.
func (d *DualMC) BuildMesh(v *Volume, iso uint8, manifold, soup bool) (*Mesh, error) {
	var m Mesh
	if err := d.Build(v.Data, v.NX, v.NY, v.NZ, iso, manifold, soup, &m.Vertices, &m.Quads); err != nil {
		return nil, err
	}
	return &m, nil
}

// cellCodeAt computes the 8-bit corner mask for the cell at (x,y,z).
func (d *DualMC) cellCodeAt(x, y, z int32, iso uint8) cellCode {
	v := &d.vol
	var code cellCode
	if v.sample(x, y, z) >= iso {
		code |= 1
	}
	if v.sample(x+1, y, z) >= iso {
		code |= 2
	}
	if v.sample(x, y+1, z) >= iso {
		code |= 4
	}
	if v.sample(x+1, y+1, z) >= iso {
		code |= 8
	}
	if v.sample(x, y, z+1) >= iso {
		code |= 16
	}
	if v.sample(x+1, y, z+1) >= iso {
		code |= 32
	}
	if v.sample(x, y+1, z+1) >= iso {
		code |= 64
	}
	if v.sample(x+1, y+1, z+1) >= iso {
		code |= 128
	}
	return code
}

// dualPointCode resolves the point code of the dual point of cell (x,y,z)
// that is adjacent to the given edge. It returns 0 only if the edge is
// not intersected, which a correct caller never asks for.
func (d *DualMC) dualPointCode(x, y, z int32, iso uint8, edge pointCode) pointCode {
	code := d.cellCodeAt(x, y, z, iso)

	if d.generateManifold {
		// When a problematic C16 or C19 configuration shares its single
		// ambiguous face with another C16 or C19 configuration, the cell
		// code is replaced by its inverse before looking up dual points
		// (Wenger 3.3.5). The dualism to marching cubes is lost, but the
		// pair no longer emits a dual edge used by four quads.
		if dir := problematicConfigs[code]; dir != 255 {
			neighbor := [3]int32{x, y, z}
			axis := dir >> 1
			if dir&1 == 1 {
				neighbor[axis]++
			} else {
				neighbor[axis]--
			}
			if neighbor[axis] >= 0 && neighbor[axis] < d.vol.dims[axis]-1 {
				ncode := d.cellCodeAt(neighbor[0], neighbor[1], neighbor[2], iso)
				if problematicConfigs[ncode] != 255 {
					code ^= 0xFF
				}
			}
		}
	}

	for _, p := range dualPointsList[code] {
		if p&edge != 0 {
			return p
		}
	}
	return 0
}

// calculateDualPoint places the dual point of cell (x,y,z) described by
// code: the arithmetic mean of the iso intersections of the edges in the
// code, offset by the cell's low corner. Every listed edge has endpoints
// on opposite sides of iso, so the interpolation denominator is nonzero.
func (d *DualMC) calculateDualPoint(x, y, z int32, iso uint8, code pointCode) Vertex {
	v := &d.vol
	t := func(a, b uint8) float32 {
		return (float32(iso) - float32(a)) / (float32(b) - float32(a))
	}

	var p Vertex
	var points float32

	if code&edge0 != 0 {
		p.X += t(v.sample(x, y, z), v.sample(x+1, y, z))
		points++
	}
	if code&edge1 != 0 {
		p.X += 1
		p.Z += t(v.sample(x+1, y, z), v.sample(x+1, y, z+1))
		points++
	}
	if code&edge2 != 0 {
		p.X += t(v.sample(x, y, z+1), v.sample(x+1, y, z+1))
		p.Z += 1
		points++
	}
	if code&edge3 != 0 {
		p.Z += t(v.sample(x, y, z), v.sample(x, y, z+1))
		points++
	}
	if code&edge4 != 0 {
		p.X += t(v.sample(x, y+1, z), v.sample(x+1, y+1, z))
		p.Y += 1
		points++
	}
	if code&edge5 != 0 {
		p.X += 1
		p.Y += 1
		p.Z += t(v.sample(x+1, y+1, z), v.sample(x+1, y+1, z+1))
		points++
	}
	if code&edge6 != 0 {
		p.X += t(v.sample(x, y+1, z+1), v.sample(x+1, y+1, z+1))
		p.Y += 1
		p.Z += 1
		points++
	}
	if code&edge7 != 0 {
		p.Y += 1
		p.Z += t(v.sample(x, y+1, z), v.sample(x, y+1, z+1))
		points++
	}
	if code&edge8 != 0 {
		p.Y += t(v.sample(x, y, z), v.sample(x, y+1, z))
		points++
	}
	if code&edge9 != 0 {
		p.X += 1
		p.Y += t(v.sample(x+1, y, z), v.sample(x+1, y+1, z))
		points++
	}
	if code&edge10 != 0 {
		p.X += 1
		p.Y += t(v.sample(x+1, y, z+1), v.sample(x+1, y+1, z+1))
		p.Z += 1
		points++
	}
	if code&edge11 != 0 {
		p.Y += t(v.sample(x, y, z+1), v.sample(x, y+1, z+1))
		p.Z += 1
		points++
	}

	inv := 1 / points
	return Vertex{
		X: float32(x) + p.X*inv,
		Y: float32(y) + p.Y*inv,
		Z: float32(z) + p.Z*inv,
	}
}

// sharedDualPointIndex returns the output index of the dual point of cell
// (x,y,z) adjacent to edge, computing and appending the vertex on first
// use.
func (d *DualMC) sharedDualPointIndex(x, y, z int32, iso uint8, edge pointCode, vertices *[]Vertex) int32 {
	cellID := d.vol.index(x, y, z)
	code := d.dualPointCode(x, y, z, iso, edge)
	key := dualPointKey(cellID, code)
	if i, ok := d.pointToIndex[key]; ok {
		return i
	}
	i := int32(len(*vertices))
	*vertices = append(*vertices, d.calculateDualPoint(x, y, z, iso, code))
	d.pointToIndex[key] = i
	return i
}

// buildSharedVerticesQuads emits one quad per intersected grid edge,
// stitching the dual points of the four cells around the edge and sharing
// vertices through the point cache.
func (d *DualMC) buildSharedVerticesQuads(iso uint8, vertices *[]Vertex, quads *[]Quad) {
	// The sweep stops one cell layer short on +x/+y/+z. Every quad only
	// references cells at or below its sweep position, so cells in that
	// layer neither act as quad positions nor supply dual points.
	reducedX := d.vol.dims[0] - 2
	reducedY := d.vol.dims[1] - 2
	reducedZ := d.vol.dims[2] - 2

	if d.pointToIndex == nil {
		d.pointToIndex = make(map[uint64]int32)
	}
	clear(d.pointToIndex)

	for z := int32(0); z < reducedZ; z++ {
		for y := int32(0); y < reducedY; y++ {
			for x := int32(0); x < reducedX; x++ {
				// quad for the x edge (x,y,z)-(x+1,y,z)
				if z > 0 && y > 0 {
					entering := d.vol.sample(x, y, z) < iso && d.vol.sample(x+1, y, z) >= iso
					exiting := d.vol.sample(x, y, z) >= iso && d.vol.sample(x+1, y, z) < iso
					if entering || exiting {
						i0 := d.sharedDualPointIndex(x, y, z, iso, edge0, vertices)
						i1 := d.sharedDualPointIndex(x, y, z-1, iso, edge2, vertices)
						i2 := d.sharedDualPointIndex(x, y-1, z-1, iso, edge6, vertices)
						i3 := d.sharedDualPointIndex(x, y-1, z, iso, edge4, vertices)
						if entering {
							*quads = append(*quads, Quad{i0, i1, i2, i3})
						} else {
							*quads = append(*quads, Quad{i0, i3, i2, i1})
						}
					}
				}

				// quad for the y edge (x,y,z)-(x,y+1,z)
				if z > 0 && x > 0 {
					entering := d.vol.sample(x, y, z) < iso && d.vol.sample(x, y+1, z) >= iso
					exiting := d.vol.sample(x, y, z) >= iso && d.vol.sample(x, y+1, z) < iso
					if entering || exiting {
						i0 := d.sharedDualPointIndex(x, y, z, iso, edge8, vertices)
						i1 := d.sharedDualPointIndex(x, y, z-1, iso, edge11, vertices)
						i2 := d.sharedDualPointIndex(x-1, y, z-1, iso, edge10, vertices)
						i3 := d.sharedDualPointIndex(x-1, y, z, iso, edge9, vertices)
						if exiting {
							*quads = append(*quads, Quad{i0, i1, i2, i3})
						} else {
							*quads = append(*quads, Quad{i0, i3, i2, i1})
						}
					}
				}

				// quad for the z edge (x,y,z)-(x,y,z+1)
				if x > 0 && y > 0 {
					entering := d.vol.sample(x, y, z) < iso && d.vol.sample(x, y, z+1) >= iso
					exiting := d.vol.sample(x, y, z) >= iso && d.vol.sample(x, y, z+1) < iso
					if entering || exiting {
						i0 := d.sharedDualPointIndex(x, y, z, iso, edge3, vertices)
						i1 := d.sharedDualPointIndex(x-1, y, z, iso, edge1, vertices)
						i2 := d.sharedDualPointIndex(x-1, y-1, z, iso, edge5, vertices)
						i3 := d.sharedDualPointIndex(x, y-1, z, iso, edge7, vertices)
						if exiting {
							*quads = append(*quads, Quad{i0, i1, i2, i3})
						} else {
							*quads = append(*quads, Quad{i0, i3, i2, i1})
						}
					}
				}
			}
		}
	}
}

// buildQuadSoup emits the same quads as buildSharedVerticesQuads but
// stores every corner vertex exactly once in winding order; quad k simply
// references vertices 4k..4k+3.
func (d *DualMC) buildQuadSoup(iso uint8, vertices *[]Vertex, quads *[]Quad) {
	reducedX := d.vol.dims[0] - 2
	reducedY := d.vol.dims[1] - 2
	reducedZ := d.vol.dims[2] - 2

	for z := int32(0); z < reducedZ; z++ {
		for y := int32(0); y < reducedY; y++ {
			for x := int32(0); x < reducedX; x++ {
				// quad for the x edge
				if z > 0 && y > 0 {
					entering := d.vol.sample(x, y, z) < iso && d.vol.sample(x+1, y, z) >= iso
					exiting := d.vol.sample(x, y, z) >= iso && d.vol.sample(x+1, y, z) < iso
					if entering || exiting {
						v0 := d.soupDualPoint(x, y, z, iso, edge0)
						v1 := d.soupDualPoint(x, y, z-1, iso, edge2)
						v2 := d.soupDualPoint(x, y-1, z-1, iso, edge6)
						v3 := d.soupDualPoint(x, y-1, z, iso, edge4)
						if entering {
							*vertices = append(*vertices, v0, v1, v2, v3)
						} else {
							*vertices = append(*vertices, v0, v3, v2, v1)
						}
					}
				}

				// quad for the y edge
				if z > 0 && x > 0 {
					entering := d.vol.sample(x, y, z) < iso && d.vol.sample(x, y+1, z) >= iso
					exiting := d.vol.sample(x, y, z) >= iso && d.vol.sample(x, y+1, z) < iso
					if entering || exiting {
						v0 := d.soupDualPoint(x, y, z, iso, edge8)
						v1 := d.soupDualPoint(x, y, z-1, iso, edge11)
						v2 := d.soupDualPoint(x-1, y, z-1, iso, edge10)
						v3 := d.soupDualPoint(x-1, y, z, iso, edge9)
						if exiting {
							*vertices = append(*vertices, v0, v1, v2, v3)
						} else {
							*vertices = append(*vertices, v0, v3, v2, v1)
						}
					}
				}

				// quad for the z edge
				if x > 0 && y > 0 {
					entering := d.vol.sample(x, y, z) < iso && d.vol.sample(x, y, z+1) >= iso
					exiting := d.vol.sample(x, y, z) >= iso && d.vol.sample(x, y, z+1) < iso
					if entering || exiting {
						v0 := d.soupDualPoint(x, y, z, iso, edge3)
						v1 := d.soupDualPoint(x-1, y, z, iso, edge1)
						v2 := d.soupDualPoint(x-1, y-1, z, iso, edge5)
						v3 := d.soupDualPoint(x, y-1, z, iso, edge7)
						if exiting {
							*vertices = append(*vertices, v0, v1, v2, v3)
						} else {
							*vertices = append(*vertices, v0, v3, v2, v1)
						}
					}
				}
			}
		}
	}

	numQuads := int32(len(*vertices) / 4)
	for k := int32(0); k < numQuads; k++ {
		*quads = append(*quads, Quad{4 * k, 4*k + 1, 4*k + 2, 4*k + 3})
	}
}

func (d *DualMC) soupDualPoint(x, y, z int32, iso uint8, edge pointCode) Vertex {
	return d.calculateDualPoint(x, y, z, iso, d.dualPointCode(x, y, z, iso, edge))
}
