// Package math provides the vector, quaternion and matrix types used by
// transforms and vertex records.
package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("{X:%g Y:%g}", v.X, v.Y)
}
