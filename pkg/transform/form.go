package transform

import "github.com/Faultbox/pose/pkg/math"

// form is the live representation of a transform. Exactly one of
// *decomposed or *custom is held at a time.
type form interface {
	matrix() math.Mat4
}

// decomposed is the scale/rotate/translate form with its two derived
// matrices. full is T*R*S and rt is T*R; each is only read when its fresh
// flag is set.
type decomposed struct {
	position math.Vec3
	rotation math.Quat
	scale    math.Vec3

	full      math.Mat4
	fullFresh bool
	rt        math.Mat4
	rtFresh   bool
}

func newDecomposed(position math.Vec3, rotation math.Quat, scale math.Vec3) *decomposed {
	return &decomposed{
		position: position,
		rotation: rotation,
		scale:    scale,
	}
}

func (d *decomposed) invalidate() {
	d.fullFresh = false
	d.rtFresh = false
}

func (d *decomposed) matrix() math.Mat4 {
	if !d.fullFresh {
		d.full = math.TranslateVec(d.position).
			Mul(d.rotation.ToMat4()).
			Mul(math.ScaleVec(d.scale))
		d.fullFresh = true
	}
	return d.full
}

func (d *decomposed) matrixWithoutScale() math.Mat4 {
	if !d.rtFresh {
		d.rt = math.TranslateVec(d.position).Mul(d.rotation.ToMat4())
		d.rtFresh = true
	}
	return d.rt
}

// custom is an arbitrary matrix with no decomposition.
type custom struct {
	m math.Mat4
}

func (c *custom) matrix() math.Mat4 {
	return c.m
}
