package geom

import "math"

// Mat3 is a 3x3 matrix, in row-major order:
//
//	| 0 1 2 |
//	| 3 4 5 |
//	| 6 7 8 |
type Mat3 [9]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (a Mat3) Mult(b Mat3) Mat3 {
	return Mat3{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

func (a Mat3) Transpose() Mat3 {
	return Mat3{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

func (a Mat3) Det() float64 {
	return a[0]*a[4]*a[8] +
		a[1]*a[5]*a[6] +
		a[2]*a[3]*a[7] -
		a[2]*a[4]*a[6] -
		a[1]*a[3]*a[8] -
		a[0]*a[5]*a[7]
}

// MultVec applies the matrix to a column vector.
func (a Mat3) MultVec(v Vec3) Vec3 {
	return Vec3{
		a[0]*v[0] + a[1]*v[1] + a[2]*v[2],
		a[3]*v[0] + a[4]*v[1] + a[5]*v[2],
		a[6]*v[0] + a[7]*v[1] + a[8]*v[2],
	}
}

// Col returns column i as a vector.
func (a Mat3) Col(i int) Vec3 {
	return Vec3{a[i], a[3+i], a[6+i]}
}

// SetCol overwrites column i.
func (a *Mat3) SetCol(i int, v Vec3) {
	a[i], a[3+i], a[6+i] = v[0], v[1], v[2]
}

// FromCols builds a matrix whose columns are x, y and z.
func FromCols(x, y, z Vec3) Mat3 {
	return Mat3{
		x[0], y[0], z[0],
		x[1], y[1], z[1],
		x[2], y[2], z[2],
	}
}

// Rotation returns the matrix rotating by angle degrees about the given
// axis (right-hand rule). The axis need not be unit length.
func Rotation(axis Vec3, degrees float64) Mat3 {
	u := axis.Unit()
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	t := 1 - c
	x, y, z := u[0], u[1], u[2]
	return Mat3{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	}
}
