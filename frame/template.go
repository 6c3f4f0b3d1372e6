package frame

import "github.com/jyesselm/find-pair-sub012/geom"

// A Template holds the idealized ring geometry of one base, expressed in
// the standard reference frame: the origin sits between the base's edges
// and the z axis is the plane normal. Fitting a residue's observed ring
// atoms onto a template therefore yields the residue's local frame
// directly.
type Template struct {
	Letter byte
	Atoms  []TemplateAtom
}

type TemplateAtom struct {
	Name   string
	Coords geom.Vec3
}

// Coords returns the template coordinates for each of the given atom
// names, in order. Names not present in the template are skipped, so the
// result can be shorter than the input.
func (t *Template) Coords(names []string) []geom.Vec3 {
	ps := make([]geom.Vec3, 0, len(names))
	for _, name := range names {
		for _, a := range t.Atoms {
			if a.Name == name {
				ps = append(ps, a.Coords)
				break
			}
		}
	}
	return ps
}

// Has reports whether the template contains the named atom.
func (t *Template) Has(name string) bool {
	for _, a := range t.Atoms {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Standard base ring geometry in the standard reference frame. Purines
// carry the nine-atom fused ring, pyrimidines the six-atom ring. All z
// coordinates are zero: the idealized bases are planar by construction.
var templates = map[byte]*Template{
	'A': {Letter: 'A', Atoms: []TemplateAtom{
		{"N9", geom.Vec3{-1.291, 4.498, 0.000}},
		{"C8", geom.Vec3{0.024, 4.897, 0.000}},
		{"N7", geom.Vec3{0.877, 3.902, 0.000}},
		{"C5", geom.Vec3{0.071, 2.771, 0.000}},
		{"C6", geom.Vec3{0.369, 1.398, 0.000}},
		{"N1", geom.Vec3{-0.668, 0.532, 0.000}},
		{"C2", geom.Vec3{-1.912, 1.023, 0.000}},
		{"N3", geom.Vec3{-2.320, 2.290, 0.000}},
		{"C4", geom.Vec3{-1.267, 3.124, 0.000}},
	}},
	'G': {Letter: 'G', Atoms: []TemplateAtom{
		{"N9", geom.Vec3{-1.289, 4.551, 0.000}},
		{"C8", geom.Vec3{0.023, 4.962, 0.000}},
		{"N7", geom.Vec3{0.870, 3.969, 0.000}},
		{"C5", geom.Vec3{0.071, 2.833, 0.000}},
		{"C6", geom.Vec3{0.424, 1.460, 0.000}},
		{"N1", geom.Vec3{-0.700, 0.641, 0.000}},
		{"C2", geom.Vec3{-1.999, 1.087, 0.000}},
		{"N3", geom.Vec3{-2.342, 2.364, 0.000}},
		{"C4", geom.Vec3{-1.265, 3.177, 0.000}},
	}},
	'I': {Letter: 'I', Atoms: []TemplateAtom{
		// Hypoxanthine shares the guanine ring geometry.
		{"N9", geom.Vec3{-1.289, 4.551, 0.000}},
		{"C8", geom.Vec3{0.023, 4.962, 0.000}},
		{"N7", geom.Vec3{0.870, 3.969, 0.000}},
		{"C5", geom.Vec3{0.071, 2.833, 0.000}},
		{"C6", geom.Vec3{0.424, 1.460, 0.000}},
		{"N1", geom.Vec3{-0.700, 0.641, 0.000}},
		{"C2", geom.Vec3{-1.999, 1.087, 0.000}},
		{"N3", geom.Vec3{-2.342, 2.364, 0.000}},
		{"C4", geom.Vec3{-1.265, 3.177, 0.000}},
	}},
	'C': {Letter: 'C', Atoms: []TemplateAtom{
		{"N1", geom.Vec3{-1.285, 4.542, 0.000}},
		{"C2", geom.Vec3{-1.472, 3.158, 0.000}},
		{"N3", geom.Vec3{-0.391, 2.344, 0.000}},
		{"C4", geom.Vec3{0.837, 2.868, 0.000}},
		{"C5", geom.Vec3{1.056, 4.275, 0.000}},
		{"C6", geom.Vec3{-0.023, 5.068, 0.000}},
	}},
	'T': {Letter: 'T', Atoms: []TemplateAtom{
		{"N1", geom.Vec3{-1.284, 4.500, 0.000}},
		{"C2", geom.Vec3{-1.462, 3.135, 0.000}},
		{"N3", geom.Vec3{-0.298, 2.407, 0.000}},
		{"C4", geom.Vec3{0.994, 2.897, 0.000}},
		{"C5", geom.Vec3{1.106, 4.338, 0.000}},
		{"C6", geom.Vec3{-0.024, 5.057, 0.000}},
	}},
	'U': {Letter: 'U', Atoms: []TemplateAtom{
		{"N1", geom.Vec3{-1.284, 4.500, 0.000}},
		{"C2", geom.Vec3{-1.462, 3.131, 0.000}},
		{"N3", geom.Vec3{-0.302, 2.397, 0.000}},
		{"C4", geom.Vec3{0.989, 2.884, 0.000}},
		{"C5", geom.Vec3{1.089, 4.311, 0.000}},
		{"C6", geom.Vec3{-0.024, 5.053, 0.000}},
	}},
}

// ByLetter returns the idealized template for a base letter.
func ByLetter(b byte) (*Template, bool) {
	t, ok := templates[b]
	return t, ok
}

// PurineRing and PyrimidineRing name the ring atoms a residue may
// contribute to a fit, in template order.
var (
	PurineRing = []string{
		"N9", "C8", "N7", "C5", "C6", "N1", "C2", "N3", "C4",
	}
	PyrimidineRing = []string{"N1", "C2", "N3", "C4", "C5", "C6"}
)
