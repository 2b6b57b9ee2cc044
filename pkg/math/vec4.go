package math

import "fmt"

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Array returns the components as an array.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) String() string {
	return fmt.Sprintf("{X:%g Y:%g Z:%g W:%g}", v.X, v.Y, v.Z, v.W)
}
