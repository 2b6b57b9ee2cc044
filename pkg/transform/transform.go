// Package transform provides the local transform of a scene object.
//
// A Transform holds one of two representations: a decomposed form made of a
// position, a rotation quaternion and a scale, or a custom form holding an
// arbitrary 4x4 matrix. Only the decomposed form exposes its components; a
// custom matrix is never decomposed implicitly.
//
// In the decomposed form the local matrix is T * R * S in the column-vector
// convention of pkg/math: scale is applied first and translation last. The
// local matrix and the matrix without scale are cached independently and
// recomputed on first read after a change.
//
// The zero Transform is ready to use. A Transform is not safe for
// concurrent use.
package transform

import (
	"fmt"

	"github.com/Faultbox/pose/pkg/math"
)

// Transform is the local-space pose of one object.
type Transform struct {
	form form

	observers []observer
	nextID    Subscription
}

// New returns a decomposed transform at the origin with identity rotation and
// unit scale.
func New() *Transform {
	d := newDecomposed(math.Vec3Zero(), math.QuatIdentity(), math.Vec3One())
	d.full, d.fullFresh = math.Identity(), true
	d.rt, d.rtFresh = math.Identity(), true
	return &Transform{form: d}
}

// live returns the current form. The zero Transform behaves like New.
func (t *Transform) live() form {
	if t.form == nil {
		t.form = New().form
	}
	return t.form
}

// IsDecomposed reports whether the transform is in the decomposed form.
func (t *Transform) IsDecomposed() bool {
	_, ok := t.live().(*decomposed)
	return ok
}

func (t *Transform) requireDecomposed(op string) (*decomposed, error) {
	d, ok := t.live().(*decomposed)
	if !ok {
		return nil, invalidState(op)
	}
	return d, nil
}

// LocalPosition returns the translation component.
func (t *Transform) LocalPosition() (math.Vec3, error) {
	d, err := t.requireDecomposed("local position")
	if err != nil {
		return math.Vec3{}, err
	}
	return d.position, nil
}

// LocalRotation returns the rotation component.
func (t *Transform) LocalRotation() (math.Quat, error) {
	d, err := t.requireDecomposed("local rotation")
	if err != nil {
		return math.Quat{}, err
	}
	return d.rotation, nil
}

// LocalScale returns the scale component.
func (t *Transform) LocalScale() (math.Vec3, error) {
	d, err := t.requireDecomposed("local scale")
	if err != nil {
		return math.Vec3{}, err
	}
	return d.scale, nil
}

// SetLocalPosition sets the translation component. Setting the current value
// is a no-op and does not notify.
func (t *Transform) SetLocalPosition(v math.Vec3) error {
	d, err := t.requireDecomposed("setting local position")
	if err != nil {
		return err
	}
	if d.position == v {
		return nil
	}
	d.position = v
	d.invalidate()
	t.notify()
	return nil
}

// SetLocalRotation sets the rotation component. Setting the current value is
// a no-op and does not notify.
func (t *Transform) SetLocalRotation(q math.Quat) error {
	d, err := t.requireDecomposed("setting local rotation")
	if err != nil {
		return err
	}
	if d.rotation == q {
		return nil
	}
	d.rotation = q
	d.invalidate()
	t.notify()
	return nil
}

// SetLocalScale sets the scale component. Only the local matrix is
// invalidated; the matrix without scale stays cached.
func (t *Transform) SetLocalScale(v math.Vec3) error {
	d, err := t.requireDecomposed("setting local scale")
	if err != nil {
		return err
	}
	if d.scale == v {
		return nil
	}
	d.scale = v
	d.fullFresh = false
	t.notify()
	return nil
}

// LocalMatrix returns the local transform matrix. For the decomposed form it
// is T * R * S; for the custom form it is the stored matrix.
func (t *Transform) LocalMatrix() math.Mat4 {
	return t.live().matrix()
}

// LocalMatrixWithoutScale returns T * R. There is no defined way to strip the
// scale from a custom matrix, so the custom form returns ErrInvalidState.
func (t *Transform) LocalMatrixWithoutScale() (math.Mat4, error) {
	d, err := t.requireDecomposed("local matrix without scale")
	if err != nil {
		return math.Mat4{}, err
	}
	return d.matrixWithoutScale(), nil
}

// ResetToDecomposed switches to the decomposed form with default components.
// It always notifies, even if the transform was already at the defaults.
func (t *Transform) ResetToDecomposed() {
	t.SetDecomposed(math.Vec3Zero(), math.QuatIdentity(), math.Vec3One())
}

// SetDecomposed switches to the decomposed form with the given components.
func (t *Transform) SetDecomposed(position math.Vec3, rotation math.Quat, scale math.Vec3) {
	t.setDecomposed(position, rotation, scale)
	t.notify()
}

func (t *Transform) setDecomposed(position math.Vec3, rotation math.Quat, scale math.Vec3) {
	if d, ok := t.form.(*decomposed); ok {
		d.position, d.rotation, d.scale = position, rotation, scale
		d.invalidate()
		return
	}
	t.form = newDecomposed(position, rotation, scale)
}

// ResetToMatrix switches to the custom form holding the identity matrix.
func (t *Transform) ResetToMatrix() {
	t.SetMatrix(math.Identity())
}

// SetMatrix switches to the custom form holding m.
func (t *Transform) SetMatrix(m math.Mat4) {
	t.setMatrix(m)
	t.notify()
}

func (t *Transform) setMatrix(m math.Mat4) {
	if c, ok := t.form.(*custom); ok {
		c.m = m
		return
	}
	t.form = &custom{m: m}
}

// Assign copies the effective state of from into t: its components if from
// is decomposed, otherwise its matrix. Handlers of t are notified once.
func (t *Transform) Assign(from *Transform) {
	switch f := from.live().(type) {
	case *decomposed:
		t.setDecomposed(f.position, f.rotation, f.scale)
	case *custom:
		t.setMatrix(f.m)
	}
	t.notify()
}

func (t *Transform) String() string {
	switch f := t.live().(type) {
	case *decomposed:
		return fmt.Sprintf("T SRT P: %v R: %v S: %v", f.position, f.rotation, f.scale)
	case *custom:
		return fmt.Sprintf("T CUS M: %v", f.m)
	}
	return ""
}
