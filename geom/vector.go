package geom

import "math"

// Vec3 is a point or direction in 3-space.
type Vec3 [3]float64

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

func (v Vec3) Dot(u Vec3) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. The zero vector is returned
// unchanged rather than dividing by zero.
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Dist returns the Euclidean distance between two points.
func (v Vec3) Dist(u Vec3) float64 {
	return v.Sub(u).Norm()
}

// Angle returns the angle between v and u in degrees, in [0, 180].
func Angle(v, u Vec3) float64 {
	c := v.Unit().Dot(u.Unit())
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * 180 / math.Pi
}

// SignedAngle returns the angle in degrees needed to rotate v onto u
// about the reference axis, in (-180, 180]. The sign follows the
// right-hand rule about ref.
func SignedAngle(v, u, ref Vec3) float64 {
	a := Angle(v, u)
	if v.Cross(u).Dot(ref) < 0 {
		return -a
	}
	return a
}

// Centroid returns the average position of a set of points. It panics
// on an empty set.
func Centroid(ps []Vec3) Vec3 {
	if len(ps) == 0 {
		panic("geom: centroid of empty point set")
	}
	var c Vec3
	for _, p := range ps {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(ps)))
}
