// Package bake applies a transform to a stream of vertex records and
// measures the result.
package bake

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/pose/pkg/math"
	"github.com/Faultbox/pose/pkg/transform"
	"github.com/Faultbox/pose/pkg/vertex"
)

// Options configures a bake.
type Options struct {
	// Linear transforms normals, tangents and bitangents by the plain
	// linear part of the matrix instead of its normal matrix.
	Linear bool

	// CenterXZ moves the baked positions so the bounds are centered on the
	// X and Z axes. Y is preserved.
	CenterXZ bool
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3 `yaml:"min"`
	Max math.Vec3 `yaml:"max"`
}

// EmptyBounds returns bounds that contain nothing. The first Extend sets both
// corners to that point.
func EmptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether no point has been added.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Extend grows b to contain p.
func (b *Bounds) Extend(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Center returns the midpoint of b.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of b on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Result is the output of a bake.
type Result struct {
	Vertices []vertex.Record `yaml:"vertices"`
	Bounds   Bounds          `yaml:"bounds"`

	// Offset is the translation applied by XZ centering.
	Offset math.Vec3 `yaml:"offset"`

	// ReverseWinding is set when the matrix mirrors geometry, so triangle
	// index order must be flipped to keep faces pointing outwards.
	ReverseWinding bool `yaml:"reverse_winding"`
}

// Baker bakes vertex streams through transforms.
type Baker struct {
	opts Options
	log  *zap.Logger
}

// New creates a Baker. A nil logger disables logging.
func New(opts Options, log *zap.Logger) *Baker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Baker{opts: opts, log: log}
}

// Bake moves records into the local space of t.
func (b *Baker) Bake(t *transform.Transform, records []vertex.Record) Result {
	return b.BakeMatrix(t.LocalMatrix(), records)
}

// BakeMatrix moves records by m. The input slice is not modified.
func (b *Baker) BakeMatrix(m math.Mat4, records []vertex.Record) Result {
	res := Result{
		Vertices:       make([]vertex.Record, len(records)),
		Bounds:         EmptyBounds(),
		ReverseWinding: m.Det3() < 0,
	}

	for i, r := range records {
		if b.opts.Linear {
			r = r.TransformLinear(m)
		} else {
			r = r.Transform(m)
		}
		if p, ok := r.Position.Get(); ok {
			res.Bounds.Extend(p)
		}
		res.Vertices[i] = r
	}

	if b.opts.CenterXZ && !res.Bounds.IsEmpty() {
		res.Offset = centerXZ(res.Vertices, &res.Bounds)
	}

	b.log.Debug("baked vertices",
		zap.Int("count", len(res.Vertices)),
		zap.Bool("linear", b.opts.Linear),
		zap.Bool("reverse_winding", res.ReverseWinding),
		zap.Stringer("min", res.Bounds.Min),
		zap.Stringer("max", res.Bounds.Max))

	return res
}

// centerXZ shifts positions so bounds is centered horizontally and returns
// the applied offset.
func centerXZ(records []vertex.Record, bounds *Bounds) math.Vec3 {
	c := bounds.Center()
	offset := math.Vec3{X: -c.X, Z: -c.Z}
	shift := math.TranslateVec(offset)

	for i := range records {
		records[i] = records[i].Transform(shift)
	}

	bounds.Min = bounds.Min.Add(offset)
	bounds.Max = bounds.Max.Add(offset)
	return offset
}
