package softge

// Mat3 is a 3x3 matrix in hardware register order. The register file stores
// a matrix as consecutive triples, each triple holding the image of one
// basis vector:
//
//	| m0  m3  m6 |
//	| m1  m4  m7 |
//	| m2  m5  m8 |
//
// This represents the transformation:
//
//	x' = m0*x + m3*y + m6*z
//	y' = m1*x + m4*y + m7*z
//	z' = m2*x + m5*y + m8*z
type Mat3 [9]float32

// Mat3Identity returns the identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// MulVec applies the matrix to a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Mul returns the composition m*other, so that
// m.Mul(other).MulVec(v) == m.MulVec(other.MulVec(v)).
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for j := range 3 {
		for i := range 3 {
			out[i+3*j] = m[i]*other[3*j] + m[i+3]*other[1+3*j] + m[i+6]*other[2+3*j]
		}
	}
	return out
}

// Mat4 is a 4x4 matrix in hardware register order, with the same
// column-grouped layout as Mat3 extended to four components:
//
//	x' = m0*x + m4*y + m8*z  + m12*w
//	y' = m1*x + m5*y + m9*z  + m13*w
//	z' = m2*x + m6*y + m10*z + m14*w
//	w' = m3*x + m7*y + m11*z + m15*w
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MulVec applies the matrix to a vector.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}
