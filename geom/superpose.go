package geom

import (
	"fmt"
	"math"
)

// A Transform is the rigid-body motion found by Superpose: apply the
// rotation to a mobile point relative to the mobile centroid, then
// translate onto the fixed centroid.
type Transform struct {
	Rot            Mat3
	MobileCentroid Vec3
	FixedCentroid  Vec3

	// RMSD is the root-mean-square deviation of the mobile set from the
	// fixed set after applying the transform.
	RMSD float64
}

// Apply maps a point from the mobile set's coordinate system into the
// fixed set's.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rot.MultVec(p.Sub(t.MobileCentroid)).Add(t.FixedCentroid)
}

// Superpose computes the optimal least-squares superposition of the
// mobile point set onto the fixed point set using the Kabsch algorithm.
//
// A brief, high-level overview:
//
// Build the 3xN matrices X and Y containing, for the mobile and fixed
// sets respectively, the coordinates for each of the N points after
// centering by subtracting the centroids.
//
// Compute the covariance matrix C=X(Y^T)
//
// Compute the SVD (Singular Value Decomposition) of C=VS(W^T)
//
// Compute d=sign(det(W(V^T)))
//
// Compute the optimal rotation U as U = W([1 0 0] [0 1 0] [0 0 d])(V^T)
//
// Superpose panics if the two sets differ in length or are empty; a
// caller that matches points by name has already guaranteed equal
// lengths, so a mismatch is a programmer error.
func Superpose(mobile, fixed []Vec3) Transform {
	if len(mobile) != len(fixed) {
		panic(fmt.Sprintf("Superposing two point sets requires that they "+
			"have equal length. But the lengths of the two sets provided "+
			"are %d and %d.", len(mobile), len(fixed)))
	}
	if len(mobile) == 0 {
		panic("Superposing requires a non-empty point set.")
	}

	c1 := Centroid(mobile)
	c2 := Centroid(fixed)

	// Covariance matrix C = X(Y^T) over the centered sets. With only
	// 3x3 output there is no need to materialize X and Y.
	var C Mat3
	for i := range mobile {
		x := mobile[i].Sub(c1)
		y := fixed[i].Sub(c2)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				C[r*3+c] += x[r] * y[c]
			}
		}
	}

	V, W := C.SVD()
	rot := W.Mult(V.Transpose())

	// If the determinant of W(V^T) is negative, then we have to correct
	// for something called an "improper rotation" in that the matrix
	// doesn't constitute a "right handed system". To correct for it, we
	// multiply W by ( [1 0 0] [0 1 0] [0 0 -1] ). This makes the rotation
	// "proper". The test is on the composed result rather than det(C):
	// the two signs agree whenever det(C) is non-zero, but a planar point
	// set has det(C) exactly zero and its SVD can still compose to a
	// reflection.
	if rot.Det() < 0 {
		adjust := Mat3{
			1, 0, 0,
			0, 1, 0,
			0, 0, -1,
		}
		rot = W.Mult(adjust).Mult(V.Transpose())
	}

	// The residual after rotating the centered mobile set onto the
	// centered fixed set.
	var sum float64
	for i := range mobile {
		d := rot.MultVec(mobile[i].Sub(c1)).Sub(fixed[i].Sub(c2))
		sum += d.Dot(d)
	}

	return Transform{
		Rot:            rot,
		MobileCentroid: c1,
		FixedCentroid:  c2,
		RMSD:           math.Sqrt(sum / float64(len(mobile))),
	}
}

// RMSD is a convenience wrapper around Superpose for callers that only
// want the residual.
func RMSD(mobile, fixed []Vec3) float64 {
	return Superpose(mobile, fixed).RMSD
}
