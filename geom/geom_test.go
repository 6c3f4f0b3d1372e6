package geom

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	matrix "github.com/skelterjohn/go.matrix"
)

func ExampleRMSD() {
	mobile := []Vec3{
		{-2.803, -15.373, 24.556},
		{0.893, -16.062, 25.147},
		{1.368, -12.371, 25.885},
		{-1.651, -12.153, 28.177},
		{-0.440, -15.218, 30.068},
		{2.551, -13.273, 31.372},
		{0.105, -11.330, 33.567},
	}
	fixed := []Vec3{
		{-14.739, -18.673, 15.040},
		{-12.473, -15.810, 16.074},
		{-14.802, -13.307, 14.408},
		{-17.782, -14.852, 16.171},
		{-16.124, -14.617, 19.584},
		{-15.029, -11.037, 18.902},
		{-18.577, -10.001, 17.996},
	}
	fmt.Printf("RMSD: %f\n", RMSD(mobile, fixed))
	// Output:
	// RMSD: 0.719106
}

// TestSvd checks our 3x3 SVD against go.matrix's general SVD. Since the
// routine here is derived from the same Jama code, the results should
// agree exactly.
func TestSvd(t *testing.T) {
	for i := 0; i < 2000; i++ {
		test := randomMat3()

		tU_, tV_ := test.SVD()
		tU, tV := tmat(tU_[:]), tmat(tV_[:])

		mat := matrix.MakeDenseMatrix(test[:], 3, 3)
		U, _, V, _ := mat.SVD()
		aU, aV := tmat(U.Array()), tmat(V.Array())

		if !aU.equal(tU) {
			t.Fatalf("With matrix\n%s\nU =\n%s\nbut we said\n%s\n",
				tmat(test[:]), aU, tU)
		}
		if !aV.equal(tV) {
			t.Fatalf("With matrix\n%s\nV =\n%s\nbut we said\n%s\n",
				tmat(test[:]), aV, tV)
		}
	}
}

func TestDet(t *testing.T) {
	for i := 0; i < 2000; i++ {
		test := randomMat3()

		mat := matrix.MakeDenseMatrix(test[:], 3, 3)
		want := mat.Det()
		got := test.Det()
		if math.Abs(want-got) > 1e-6*math.Max(1, math.Abs(want)) {
			t.Fatalf("The determinant of\n%s\nis %f but we said %f",
				tmat(test[:]), want, got)
		}
	}
}

func TestMult(t *testing.T) {
	for i := 0; i < 2000; i++ {
		a, b := randomMat3(), randomMat3()

		got := a.Mult(b)
		prod, _ := matrix.MakeDenseMatrix(a[:], 3, 3).
			TimesDense(matrix.MakeDenseMatrix(b[:], 3, 3))
		want := tmat(prod.Array())

		if !want.equal(tmat(got[:])) {
			t.Fatalf("The product of\n%s\nand\n%s\nis\n%s\nbut we said\n%s\n",
				tmat(a[:]), tmat(b[:]), want, tmat(got[:]))
		}
	}
}

// TestSuperposeRecovers applies a random proper rotation and translation
// to a point set and checks that Superpose recovers the motion.
func TestSuperposeRecovers(t *testing.T) {
	base := []Vec3{
		{-1.291, 4.498, 0},
		{0.024, 4.897, 0},
		{0.877, 3.902, 0},
		{0.071, 2.771, 0},
		{0.369, 1.398, 0},
		{-0.668, 0.532, 0},
		{-1.912, 1.023, 0},
		{-2.320, 2.290, 0},
		{-1.267, 3.124, 0},
	}
	for i := 0; i < 200; i++ {
		rot := randomRotation()
		shift := Vec3{
			rand.Float64() * 50,
			rand.Float64() * 50,
			rand.Float64() * 50,
		}
		moved := make([]Vec3, len(base))
		for j, p := range base {
			moved[j] = rot.MultVec(p).Add(shift)
		}

		tr := Superpose(base, moved)
		if tr.RMSD > 1e-9 {
			t.Fatalf("rigid motion should superpose exactly; RMSD = %g",
				tr.RMSD)
		}
		for j := 0; j < 9; j++ {
			if math.Abs(tr.Rot[j]-rot[j]) > 1e-9 {
				t.Fatalf("recovered rotation\n%s\ndiffers from\n%s\n",
					tmat(tr.Rot[:]), tmat(rot[:]))
			}
		}
		for j, p := range base {
			if tr.Apply(p).Dist(moved[j]) > 1e-9 {
				t.Fatalf("Apply does not map point %d onto its image", j)
			}
		}
	}
}

func TestSuperposeProperRotation(t *testing.T) {
	for i := 0; i < 200; i++ {
		mobile := randomPoints(7)
		fixed := randomPoints(7)

		tr := Superpose(mobile, fixed)
		if d := tr.Rot.Det(); math.Abs(d-1) > 1e-9 {
			t.Fatalf("rotation determinant is %f, not +1", d)
		}
		for c := 0; c < 3; c++ {
			if n := tr.Rot.Col(c).Norm(); math.Abs(n-1) > 1e-9 {
				t.Fatalf("column %d has norm %f", c, n)
			}
		}
	}
}

// TestSuperposePlanarProperRotation superposes planar point sets, the
// rank-deficient case every base-ring fit goes through: the covariance
// matrix is singular, but the result must still be a proper rotation
// with the plane normal mapped, not mirrored.
func TestSuperposePlanarProperRotation(t *testing.T) {
	plane := []Vec3{
		{1.3, 0.2, 0},
		{-0.8, 1.1, 0},
		{0.4, -1.5, 0},
		{2.1, 1.9, 0},
		{-1.7, -0.6, 0},
		{-1.3, -1.1, 0},
	}

	// The commonest degenerate input: a planar set against itself.
	tr := Superpose(plane, plane)
	if d := tr.Rot.Det(); math.Abs(d-1) > 1e-9 {
		t.Fatalf("rotation determinant is %f, not +1", d)
	}
	if tr.RMSD > 1e-9 {
		t.Fatalf("a set superposed onto itself has RMSD %g", tr.RMSD)
	}
	for j, p := range plane {
		if tr.Apply(p).Dist(p) > 1e-9 {
			t.Fatalf("Apply moves point %d of an already-aligned set", j)
		}
	}

	for i := 0; i < 200; i++ {
		rot := randomRotation()
		shift := Vec3{
			rand.Float64() * 50,
			rand.Float64() * 50,
			rand.Float64() * 50,
		}
		moved := make([]Vec3, len(plane))
		for j, p := range plane {
			moved[j] = rot.MultVec(p).Add(shift)
		}

		tr := Superpose(plane, moved)
		if d := tr.Rot.Det(); math.Abs(d-1) > 1e-9 {
			t.Fatalf("rotation determinant is %f, not +1", d)
		}
		if tr.RMSD > 1e-9 {
			t.Fatalf("rigid motion should superpose exactly; RMSD = %g",
				tr.RMSD)
		}

		// The out-of-plane direction is not pinned by any point, so the
		// normal is where a reflection would sneak in.
		normal := rot.MultVec(Vec3{0, 0, 1})
		if tr.Rot.MultVec(Vec3{0, 0, 1}).Dist(normal) > 1e-9 {
			t.Fatal("plane normal was mirrored instead of rotated")
		}
	}
}

func TestFlipYZ(t *testing.T) {
	f := Frame{Rot: Identity()}
	g := f.FlipYZ()
	if g.X() != (Vec3{1, 0, 0}) {
		t.Fatal("x column must be unchanged")
	}
	if g.Y() != (Vec3{0, -1, 0}) || g.Normal() != (Vec3{0, 0, -1}) {
		t.Fatal("y and normal columns must be negated")
	}
	if d := g.Rot.Det(); math.Abs(d-1) > 1e-12 {
		t.Fatalf("flipped frame is not a proper rotation: det = %f", d)
	}
}

type tmat []float64

func (m tmat) String() string {
	return fmt.Sprintf(`
|%f  %f  %f|
|%f  %f  %f|
|%f  %f  %f|
`, m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

func (m1 tmat) equal(m2 tmat) bool {
	for i := 0; i < 9; i++ {
		if m1[i] != m2[i] {
			return false
		}
	}
	return true
}

func randomMat3() (m Mat3) {
	for i := 0; i < 9; i++ {
		m[i] = rand.Float64() * float64(rand.Intn(100000))
	}
	return
}

func randomRotation() Mat3 {
	axis := Vec3{
		rand.Float64() - 0.5,
		rand.Float64() - 0.5,
		rand.Float64() - 0.5,
	}
	return Rotation(axis, rand.Float64()*360-180)
}

func randomPoints(cnt int) []Vec3 {
	ps := make([]Vec3, cnt)
	for i := range ps {
		ps[i] = Vec3{
			rand.Float64() * 500,
			rand.Float64() * 500,
			rand.Float64() * 500,
		}
	}
	return ps
}
