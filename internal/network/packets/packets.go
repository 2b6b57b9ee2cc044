// Package packets defines the binary packets that carry transforms between
// peers. All multi-byte values are little-endian.
package packets

import (
	"encoding/binary"
	gomath "math"

	"github.com/pkg/errors"

	"github.com/Faultbox/pose/pkg/transform"
)

// Packet IDs
const (
	TRANSFORM_UPDATE uint16 = 0x0A10 // Local transform of one node
)

// Transform forms as written on the wire.
const (
	FormCustom     uint8 = 0
	FormDecomposed uint8 = 1
)

// Packet sizes.
const (
	headerSize            = 9                 // id, len, node id, form
	transformUpdateSRT    = headerSize + 10*4 // pos xyz, rot xyzw, scale xyz
	transformUpdateCustom = headerSize + 16*4 // matrix 0..15
)

// Decode errors.
var (
	ErrTruncatedPacket = errors.New("truncated packet")
	ErrUnknownPacket   = errors.New("unknown packet id")
	ErrInvalidForm     = errors.New("invalid transform form")
	ErrLengthMismatch  = errors.New("packet length mismatch")
)

// TransformUpdate (TRANSFORM_UPDATE 0x0A10)
//
//	0  uint16  PacketID
//	2  uint16  PacketLen
//	4  uint32  NodeID
//	8  uint8   Form
//	9  float32 x10 (decomposed) or x16 (custom)
type TransformUpdate struct {
	PacketID  uint16 // 0x0A10
	NodeID    uint32
	Transform transform.NetworkTransform
}

// NewTransformUpdate builds an update for the current state of t.
func NewTransformUpdate(nodeID uint32, t *transform.Transform) *TransformUpdate {
	return &TransformUpdate{
		PacketID:  TRANSFORM_UPDATE,
		NodeID:    nodeID,
		Transform: t.Serialize(),
	}
}

// Size returns packet size.
func (p *TransformUpdate) Size() int {
	if p.Transform.IsDecomposed {
		return transformUpdateSRT
	}
	return transformUpdateCustom
}

// Encode encodes the packet to bytes. The transform must be valid; see
// transform.NetworkTransform.Validate.
func (p *TransformUpdate) Encode() ([]byte, error) {
	if err := p.Transform.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, p.Size())
	WriteUint16(buf, 0, p.PacketID)
	WriteUint16(buf, 2, uint16(len(buf)))
	WriteUint32(buf, 4, p.NodeID)

	off := headerSize
	if p.Transform.IsDecomposed {
		buf[8] = FormDecomposed
		off = writeFloats(buf, off, p.Transform.Position[:])
		off = writeFloats(buf, off, p.Transform.Rotation[:])
		writeFloats(buf, off, p.Transform.Scale[:])
	} else {
		buf[8] = FormCustom
		writeFloats(buf, off, p.Transform.Matrix[:])
	}
	return buf, nil
}

// DecodeTransformUpdate parses a TRANSFORM_UPDATE packet.
func DecodeTransformUpdate(data []byte) (*TransformUpdate, error) {
	if len(data) < headerSize {
		return nil, errors.Wrapf(ErrTruncatedPacket, "%d bytes, header needs %d", len(data), headerSize)
	}

	id := ReadUint16(data, 0)
	if id != TRANSFORM_UPDATE {
		return nil, errors.Wrapf(ErrUnknownPacket, "0x%04X", id)
	}

	var want int
	switch data[8] {
	case FormDecomposed:
		want = transformUpdateSRT
	case FormCustom:
		want = transformUpdateCustom
	default:
		return nil, errors.Wrapf(ErrInvalidForm, "%d", data[8])
	}

	if n := int(ReadUint16(data, 2)); n != want {
		return nil, errors.Wrapf(ErrLengthMismatch, "declared %d, form needs %d", n, want)
	}
	if len(data) < want {
		return nil, errors.Wrapf(ErrTruncatedPacket, "%d bytes, packet needs %d", len(data), want)
	}

	p := &TransformUpdate{
		PacketID: id,
		NodeID:   ReadUint32(data, 4),
	}

	off := headerSize
	if data[8] == FormDecomposed {
		var pos, scale [3]float32
		var rot [4]float32
		off = readFloats(data, off, pos[:])
		off = readFloats(data, off, rot[:])
		readFloats(data, off, scale[:])
		p.Transform = transform.NetworkTransform{
			IsDecomposed: true,
			Position:     &pos,
			Rotation:     &rot,
			Scale:        &scale,
		}
	} else {
		var m [16]float32
		readFloats(data, off, m[:])
		p.Transform = transform.NetworkTransform{Matrix: &m}
	}
	return p, nil
}

// Apply deserializes the carried transform into t.
func (p *TransformUpdate) Apply(t *transform.Transform) error {
	return t.Deserialize(p.Transform)
}

// WriteUint16 writes a uint16 in little-endian format.
func WriteUint16(buf []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(buf[offset:], v)
}

// WriteUint32 writes a uint32 in little-endian format.
func WriteUint32(buf []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(buf[offset:], v)
}

// ReadUint16 reads a uint16 in little-endian format.
func ReadUint16(buf []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(buf[offset:])
}

// ReadUint32 reads a uint32 in little-endian format.
func ReadUint32(buf []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(buf[offset:])
}

func writeFloats(buf []byte, offset int, vs []float32) int {
	for _, v := range vs {
		WriteUint32(buf, offset, gomath.Float32bits(v))
		offset += 4
	}
	return offset
}

func readFloats(buf []byte, offset int, vs []float32) int {
	for i := range vs {
		vs[i] = gomath.Float32frombits(ReadUint32(buf, offset))
		offset += 4
	}
	return offset
}
