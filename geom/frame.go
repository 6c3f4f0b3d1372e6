package geom

// A Frame is a local right-handed coordinate system fit to a nucleotide
// base: an origin plus a rotation whose columns are the base's short
// axis, long axis and plane normal, in that order. The columns are unit
// length and mutually orthogonal.
type Frame struct {
	Origin Vec3
	Rot    Mat3
}

// X returns the short-axis column.
func (f Frame) X() Vec3 { return f.Rot.Col(0) }

// Y returns the long-axis column.
func (f Frame) Y() Vec3 { return f.Rot.Col(1) }

// Normal returns the base-plane normal column.
func (f Frame) Normal() Vec3 { return f.Rot.Col(2) }

// FlipYZ returns the frame with its long-axis and normal columns
// negated. This is the legacy convention for expressing the second base
// of a pair in an anti-parallel orientation; the result is still a
// proper rotation.
func (f Frame) FlipYZ() Frame {
	r := f.Rot
	r.SetCol(1, r.Col(1).Scale(-1))
	r.SetCol(2, r.Col(2).Scale(-1))
	return Frame{Origin: f.Origin, Rot: r}
}
