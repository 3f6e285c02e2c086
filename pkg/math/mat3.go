package math

import "github.com/chewxy/math32"

// Mat3 is a 3x3 matrix in row-major order, used for homogeneous 2D
// transforms of texture coordinates.
// Layout: [m0 m1 m2]
//
//	[m3 m4 m5]
//	[m6 m7 m8]
type Mat3 [9]float32

// Mat3Identity returns an identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*other[c] + m[r*3+1]*other[3+c] + m[r*3+2]*other[6+c]
		}
	}
	return out
}

// MulVec2 applies m to the homogeneous point (v.X, v.Y, 1) and returns
// the transformed X and Y.
func (m Mat3) MulVec2(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[1]*v.Y + m[2],
		m[3]*v.X + m[4]*v.Y + m[5],
	}
}

// Mat3Scale2D returns a 2D scale matrix.
func Mat3Scale2D(x, y float32) Mat3 {
	return Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Mat3Rotate2D returns a 2D rotation matrix.
// angle is in radians, counter-clockwise.
func Mat3Rotate2D(angle float32) Mat3 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)

	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mat3Translate2D returns a 2D translation matrix.
func Mat3Translate2D(x, y float32) Mat3 {
	return Mat3{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// ComposeUV builds the matrix for a UV-space transform: scale and rotation
// about the UV origin, then translation. The multiplication order is fixed
// and must not change.
func ComposeUV(scale Vec2, rotation float32, translation Vec2) Mat3 {
	out := Mat3Identity()
	if scale.X != 1 || scale.Y != 1 {
		out = out.Mul(Mat3Scale2D(scale.X, scale.Y))
	}
	if rotation != 0 {
		out = out.Mul(Mat3Rotate2D(rotation))
	}
	if translation.X != 0 || translation.Y != 0 {
		out = out.Mul(Mat3Translate2D(translation.X, translation.Y))
	}
	return out
}
