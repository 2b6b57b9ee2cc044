package transform

import (
	"github.com/pkg/errors"

	"github.com/Faultbox/pose/pkg/math"
)

// NetworkTransform is the serialized form of a Transform: a tagged union on
// IsDecomposed. The fields of the other branch are nil, never zero-filled.
//
// Matrix holds the sixteen elements in math.Mat4 index order (column-major).
type NetworkTransform struct {
	IsDecomposed bool `yaml:"is_decomposed"`

	Position *[3]float32 `yaml:"position,omitempty"`
	Rotation *[4]float32 `yaml:"rotation,omitempty"` // x, y, z, w
	Scale    *[3]float32 `yaml:"scale,omitempty"`

	Matrix *[16]float32 `yaml:"matrix,omitempty"`
}

// Serialize returns the network form of t.
func (t *Transform) Serialize() NetworkTransform {
	switch f := t.live().(type) {
	case *decomposed:
		pos := f.position.Array()
		rot := f.rotation.Array()
		scale := f.scale.Array()
		return NetworkTransform{
			IsDecomposed: true,
			Position:     &pos,
			Rotation:     &rot,
			Scale:        &scale,
		}
	default:
		m := [16]float32(f.matrix())
		return NetworkTransform{Matrix: &m}
	}
}

// Validate checks that n carries exactly the fields of its declared form.
func (n NetworkTransform) Validate() error {
	if n.IsDecomposed {
		switch {
		case n.Position == nil:
			return errors.Wrap(ErrMalformedData, "decomposed transform without position")
		case n.Rotation == nil:
			return errors.Wrap(ErrMalformedData, "decomposed transform without rotation")
		case n.Scale == nil:
			return errors.Wrap(ErrMalformedData, "decomposed transform without scale")
		case n.Matrix != nil:
			return errors.Wrap(ErrMalformedData, "decomposed transform with a matrix")
		}
		return nil
	}

	if n.Matrix == nil {
		return errors.Wrap(ErrMalformedData, "custom transform without matrix")
	}
	if n.Position != nil || n.Rotation != nil || n.Scale != nil {
		return errors.Wrap(ErrMalformedData, "custom transform with decomposed components")
	}
	return nil
}

// Deserialize replaces the state of t with n and notifies once. On error t is
// left unchanged.
func (t *Transform) Deserialize(n NetworkTransform) error {
	if err := n.Validate(); err != nil {
		return err
	}

	if n.IsDecomposed {
		t.SetDecomposed(
			math.Vec3FromArray(*n.Position),
			math.QuatFromArray(*n.Rotation),
			math.Vec3FromArray(*n.Scale),
		)
		return nil
	}

	t.SetMatrix(math.Mat4(*n.Matrix))
	return nil
}

// FromNetwork builds a new Transform from its network form.
func FromNetwork(n NetworkTransform) (*Transform, error) {
	t := New()
	if err := t.Deserialize(n); err != nil {
		return nil, err
	}
	return t, nil
}
