package dualmc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a violated Build precondition: a sample slice
// whose length does not match the claimed dimensions, or dimensions whose
// product overflows int32.
var ErrInvalidInput = errors.New("dualmc: invalid input")

// Volume is a dense grid of 8-bit samples with x-fastest layout:
// index(x,y,z) = x + nx*(y + ny*z).
type Volume struct {
	NX, NY, NZ int32
	Data       []uint8
}

// NewVolume allocates a zeroed volume of the given dimensions.
func NewVolume(nx, ny, nz int32) (*Volume, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidInput, nx, ny, nz)
	}
	n := int64(nx) * int64(ny) * int64(nz)
	if n != int64(int32(n)) {
		return nil, fmt.Errorf("%w: %dx%dx%d overflows int32", ErrInvalidInput, nx, ny, nz)
	}
	return &Volume{NX: nx, NY: ny, NZ: nz, Data: make([]uint8, n)}, nil
}

// Index returns the linear index of (x,y,z).
func (v *Volume) Index(x, y, z int32) int32 {
	return x + v.NX*(y+v.NY*z)
}

// At returns the sample at (x,y,z).
func (v *Volume) At(x, y, z int32) uint8 {
	return v.Data[v.Index(x, y, z)]
}

// Set stores a sample at (x,y,z).
func (v *Volume) Set(x, y, z int32, s uint8) {
	v.Data[v.Index(x, y, z)] = s
}

// grid is the engine's borrowed view of the input samples. It is only
// valid for the duration of a single Build call and performs no bounds
// checks on the hot path.
type grid struct {
	data []uint8
	dims [3]int32
}

func (g *grid) index(x, y, z int32) int32 {
	return x + g.dims[0]*(y+g.dims[1]*z)
}

func (g *grid) sample(x, y, z int32) uint8 {
	return g.data[g.index(x, y, z)]
}

// checkVolume validates the sample slice against the claimed dimensions.
func checkVolume(data []uint8, x, y, z int32) error {
	n := int64(x) * int64(y) * int64(z)
	if n != int64(int32(n)) {
		return fmt.Errorf("%w: %dx%dx%d overflows int32", ErrInvalidInput, x, y, z)
	}
	if int64(len(data)) != n {
		return fmt.Errorf("%w: %d samples for a %dx%dx%d volume", ErrInvalidInput, len(data), x, y, z)
	}
	return nil
}
