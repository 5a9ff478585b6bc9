package dualmc

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the codec applied to a DVOL payload.
type Compression uint8

const (
	CompNone Compression = 0
	CompZlib Compression = 1
	CompZstd Compression = 2
)

const (
	dvolMagic   = "DVOL"
	dvolVersion = 1

	encDense  = 0 // raw sample stream
	encSparse = 1 // uvarint count, then (uvarint index gap, value) pairs
)

// MarshalDVOL encodes the volume as a .dvol blob. The payload encoding is
// chosen per volume (dense, or sparse for mostly-empty grids) and then
// run through the requested compression codec. An xxhash64 digest of the
// raw sample stream is stored for integrity checking on load.
func (v *Volume) MarshalDVOL(comp Compression) ([]byte, error) {
	enc, payload := bestEncoding(v.Data)

	var finalPayload []byte
	switch comp {
	case CompNone:
		finalPayload = payload
	case CompZlib:
		var buf bytes.Buffer
		zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if _, err := zw.Write(payload); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		finalPayload = buf.Bytes()
	case CompZstd:
		zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		finalPayload = zw.EncodeAll(payload, nil)
	default:
		return nil, fmt.Errorf("unsupported compression: %d", comp)
	}

	var out bytes.Buffer
	out.WriteString(dvolMagic)
	_ = binary.Write(&out, binary.LittleEndian, uint8(dvolVersion))
	_ = binary.Write(&out, binary.LittleEndian, uint8(enc))
	_ = binary.Write(&out, binary.LittleEndian, uint8(comp))
	_ = binary.Write(&out, binary.LittleEndian, uint32(v.NX))
	_ = binary.Write(&out, binary.LittleEndian, uint32(v.NY))
	_ = binary.Write(&out, binary.LittleEndian, uint32(v.NZ))
	_ = binary.Write(&out, binary.LittleEndian, xxhash.Sum64(v.Data))
	_ = binary.Write(&out, binary.LittleEndian, uint32(len(finalPayload)))
	_, _ = out.Write(finalPayload)
	return out.Bytes(), nil
}

// UnmarshalDVOL parses a .dvol blob and verifies its sample digest.
func UnmarshalDVOL(data []byte) (*Volume, error) {
	if len(data) < 4 || string(data[:4]) != dvolMagic {
		return nil, fmt.Errorf("not a valid DVOL file")
	}
	r := bytes.NewReader(data[4:])
	var ver, enc, comp uint8
	var nx, ny, nz, plen uint32
	var digest uint64
	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return nil, err
	}
	if ver != dvolVersion {
		return nil, fmt.Errorf("unsupported DVOL version: %d", ver)
	}
	if err := binary.Read(r, binary.LittleEndian, &enc); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &comp); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &nx); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &ny); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &nz); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &digest); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &plen); err != nil {
		return nil, err
	}
	payload := make([]byte, plen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	switch Compression(comp) {
	case CompNone:
		// no-op
	case CompZlib:
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, err
		}
		payload = b
	case CompZstd:
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		b, err := zr.DecodeAll(payload, nil)
		if err != nil {
			return nil, err
		}
		payload = b
	default:
		return nil, fmt.Errorf("unsupported compression: %d", comp)
	}

	vol, err := NewVolume(int32(nx), int32(ny), int32(nz))
	if err != nil {
		return nil, err
	}
	switch enc {
	case encDense:
		if len(payload) != len(vol.Data) {
			return nil, fmt.Errorf("dense payload length %d, want %d", len(payload), len(vol.Data))
		}
		copy(vol.Data, payload)
	case encSparse:
		if err := decodeSparse(payload, vol.Data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown encoding: %d", enc)
	}
	if xxhash.Sum64(vol.Data) != digest {
		return nil, fmt.Errorf("DVOL digest mismatch, payload corrupt")
	}
	return vol, nil
}

// SaveDVOL writes the volume to a .dvol file.
func SaveDVOL(v *Volume, path string, comp Compression) error {
	data, err := v.MarshalDVOL(comp)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadDVOL reads a .dvol file.
func LoadDVOL(path string) (*Volume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalDVOL(data)
}

// LoadRaw reads a headerless sample file with the given dimensions.
func LoadRaw(path string, nx, ny, nz int32) (*Volume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkVolume(data, nx, ny, nz); err != nil {
		return nil, err
	}
	return &Volume{NX: nx, NY: ny, NZ: nz, Data: data}, nil
}

// SaveRaw writes the headerless sample stream.
func (v *Volume) SaveRaw(path string) error {
	return os.WriteFile(path, v.Data, 0644)
}

func encodeDense(samples []uint8) []byte {
	return append([]byte(nil), samples...)
}

func encodeSparse(samples []uint8) []byte {
	count := uint32(0)
	for _, s := range samples {
		if s != 0 {
			count++
		}
	}
	out := writeUVarint(make([]byte, 0, 5+2*int(count)), count)
	prev := -1
	for i, s := range samples {
		if s == 0 {
			continue
		}
		out = writeUVarint(out, uint32(i-prev))
		out = append(out, s)
		prev = i
	}
	return out
}

func decodeSparse(payload []byte, samples []uint8) error {
	pos := 0
	count, err := readUVarint(payload, &pos)
	if err != nil {
		return err
	}
	idx := -1
	for n := uint32(0); n < count; n++ {
		gap, err := readUVarint(payload, &pos)
		if err != nil {
			return err
		}
		idx += int(gap)
		if gap == 0 || idx >= len(samples) {
			return fmt.Errorf("sparse index out of range: %d", idx)
		}
		if pos >= len(payload) {
			return io.ErrUnexpectedEOF
		}
		samples[idx] = payload[pos]
		pos++
	}
	return nil
}

// bestEncoding returns the smallest payload among the candidate
// encodings.
func bestEncoding(samples []uint8) (int, []byte) {
	dense := encodeDense(samples)
	sparse := encodeSparse(samples)
	if len(sparse) < len(dense) {
		return encSparse, sparse
	}
	return encDense, dense
}

func writeUVarint(dst []byte, x uint32) []byte {
	v := x
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	dst = append(dst, byte(v))
	return dst
}

func readUVarint(src []byte, pos *int) (uint32, error) {
	var x uint32
	var s uint32
	i := *pos
	for {
		if i >= len(src) {
			return 0, io.ErrUnexpectedEOF
		}
		b := src[i]
		i++
		if b < 0x80 {
			if s >= 32 {
				return 0, io.ErrUnexpectedEOF
			}
			x |= uint32(b) << s
			break
		}
		x |= uint32(b&0x7F) << s
		s += 7
		if s > 28 {
			return 0, io.ErrUnexpectedEOF
		}
	}
	*pos = i
	return x, nil
}
