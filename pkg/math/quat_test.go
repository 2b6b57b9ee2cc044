package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.Dot(n))))
	if abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion should normalize to identity, got %v", got)
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if abs(m[i]-identity[i]) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatToMat4MatchesMathgl(t *testing.T) {
	axis := Vec3{1, 2, 3}.Normalize()
	angle := float32(0.9)

	got := QuatFromAxisAngle(axis, angle).ToMat4()
	want := mgl32.QuatRotate(angle, mgl32.Vec3{axis.X, axis.Y, axis.Z}).Mat4()

	if !got.ApproxEqual(Mat4(want), 1e-5) {
		t.Errorf("ToMat4 disagrees with mgl32:\ngot  %v\nwant %v", got, Mat4(want))
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if abs(q.W-expectedW) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if abs(q.Y-expectedY) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatMulConjugate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, 1.3)
	got := q.Mul(q.Conjugate())

	if abs(got.W-1) > 1e-5 || abs(got.X)+abs(got.Y)+abs(got.Z) > 1e-5 {
		t.Errorf("q * conj(q) should be identity, got %v", got)
	}
}

func TestQuatArrayRoundTrip(t *testing.T) {
	q := Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}
	if got := QuatFromArray(q.Array()); got != q {
		t.Errorf("QuatFromArray(Array()) = %v, want %v", got, q)
	}
}
