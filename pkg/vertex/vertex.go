// Package vertex represents the per-vertex data of imported models.
package vertex

import (
	"github.com/Faultbox/pose/pkg/math"
)

// Color is an 8-bit RGBA vertex color.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Byte4 holds four bone indices.
type Byte4 [4]uint8

// Record is one vertex with every channel the importer found.
//
// Models carry different channels depending on the shader they target, so
// each geometric channel is optional and each color or texture coordinate
// set may hold zero or more entries. BoneIndices and BoneWeights are present
// together when the vertex is skinned.
//
// A Record is a value; Transform returns a new Record and shares the channel
// slices with its input. Callers must not modify those slices after
// construction.
type Record struct {
	Position  Opt[math.Vec3] `yaml:"position,omitempty"`
	Normal    Opt[math.Vec3] `yaml:"normal,omitempty"`
	Tangent   Opt[math.Vec3] `yaml:"tangent,omitempty"`
	Bitangent Opt[math.Vec3] `yaml:"bitangent,omitempty"`

	Colors       []Color     `yaml:"colors,omitempty"`
	TexCoordsUV  []math.Vec2 `yaml:"uv,omitempty"`
	TexCoordsUVW []math.Vec3 `yaml:"uvw,omitempty"`

	BoneIndices Opt[Byte4]     `yaml:"bone_indices,omitempty"`
	BoneWeights Opt[math.Vec4] `yaml:"bone_weights,omitempty"`
}

// HasBones reports whether the vertex carries skinning data.
func (r Record) HasBones() bool {
	return r.BoneIndices.IsSome() && r.BoneWeights.IsSome()
}

// Transform returns r moved into the space of m. The position is transformed
// as a point. Normal, tangent and bitangent are transformed by the normal
// matrix of m, so they stay perpendicular to surfaces under non-uniform
// scale; they are not renormalized. All other channels are shared unchanged.
func (r Record) Transform(m math.Mat4) Record {
	return r.transform(m, m.NormalMatrix())
}

// TransformLinear is like Transform but applies the plain linear part of m to
// normal, tangent and bitangent. The result matches Transform for rotations
// and uniform scales only.
func (r Record) TransformLinear(m math.Mat4) Record {
	return r.transform(m, m)
}

func (r Record) transform(m, dirs math.Mat4) Record {
	out := r
	out.Position = Map(r.Position, m.TransformPoint)
	out.Normal = Map(r.Normal, dirs.TransformDirection)
	out.Tangent = Map(r.Tangent, dirs.TransformDirection)
	out.Bitangent = Map(r.Bitangent, dirs.TransformDirection)
	return out
}

// String returns the position, or "(no position)".
func (r Record) String() string {
	if p, ok := r.Position.Get(); ok {
		return p.String()
	}
	return "(no position)"
}
