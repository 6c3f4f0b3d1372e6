/*
Package pair selects base pairs from a structure's residues.

The selection is a greedy, iteratively refined mutual-best matching over
the candidate cache: every unmatched residue names the eligible partner
with the lowest adjusted quality score, pairs whose choices are mutual
are accepted, and the scan repeats — removing matched residues can
change the remaining rankings — until a full pass accepts nothing new.

Determinism is a contract, not an accident. Residues are always visited
in ascending legacy index order, and score ties within Config.TieEps go
to the lower partner index, so rerunning on the same structure
reproduces the same pairs with the same scores, byte for byte. The
results feed bit-exact comparisons against the reference implementation
downstream.
*/
package pair

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jyesselm/find-pair-sub012/geom"
	"github.com/jyesselm/find-pair-sub012/hbond"
	"github.com/jyesselm/find-pair-sub012/pdb"
)

// A BasePair is one accepted pairing. Idx1 < Idx2 always; Swapped
// records that the discovery order was the other way around. Frame2 has
// its long axis and normal negated whenever the two plane normals met
// at a non-positive dot product, the legacy output convention for
// anti-parallel pairs. Immutable after creation except for OutputIndex,
// which downstream helix ordering assigns.
type BasePair struct {
	Idx1, Idx2 int
	Res1, Res2 *pdb.Residue
	Swapped    bool

	Frame1, Frame2 geom.Frame
	Bonds          []hbond.Bond
	Type           Type
	Score          float64

	OutputIndex int
}

func (bp *BasePair) String() string {
	return fmt.Sprintf("%s-%s (%s, %.3f)",
		bp.Res1, bp.Res2, bp.Type, bp.Score)
}

func newBasePair(c *Cache, i, j int) *BasePair {
	swapped := false
	if i > j {
		i, j = j, i
		swapped = true
	}
	ci := c.Get(i, j)
	r1, r2 := c.Residue(i), c.Residue(j)

	f1, f2 := *r1.Frame, *r2.Frame
	if f1.Normal().Dot(f2.Normal()) <= 0 {
		f2 = f2.FlipYZ()
	}

	return &BasePair{
		Idx1: i, Idx2: j,
		Res1: r1, Res2: r2,
		Swapped: swapped,
		Frame1:  f1,
		Frame2:  f2,
		Bonds:   ci.Bonds,
		Type:    ci.Type,
		Score:   ci.Adjusted,
	}
}

// An Engine runs the full pipeline on one structure: frame assignment,
// candidate cache construction, and mutual-best matching. Engines are
// cheap; build one per configuration. The logger receives the optional
// diagnostic trace (candidates, per-pass decisions); pass nil for
// silence.
type Engine struct {
	cfg Config
	log *zap.Logger
}

func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, log: logger}
}

// FindPairs computes the base pairs of a structure. An empty result is
// a legitimate outcome (single-stranded or sparse input), not an error.
// The structure is only annotated (frames on residues); atoms are never
// touched.
func (e *Engine) FindPairs(s *pdb.Structure) ([]*BasePair, error) {
	if s == nil {
		return nil, fmt.Errorf("pair: nil structure")
	}

	framed := e.cfg.calculator().AssignFrames(s)
	e.log.Debug("assigned reference frames",
		zap.Int("residues", len(s.Residues)),
		zap.Int("framed", framed))

	cache := BuildCache(s, NewValidator(e.cfg))
	e.log.Debug("built candidate cache",
		zap.Int("candidates", cache.Len()))

	return e.Match(cache), nil
}

// Match runs the mutual-best matching over a prebuilt cache. Exposed
// separately so callers that already have a cache (or tests) can drive
// the matching directly.
func (e *Engine) Match(c *Cache) []*BasePair {
	unmatched := append([]int(nil), c.Indices()...)
	sort.Ints(unmatched)
	inU := make(map[int]bool, len(unmatched))
	for _, i := range unmatched {
		inU[i] = true
	}

	var pairs []*BasePair
	for pass := 1; ; pass++ {
		best := make(map[int]int, len(unmatched))
		for _, i := range unmatched {
			best[i] = e.bestPartner(c, i, inU)
		}

		var acceptedIdx []int
		for _, i := range unmatched {
			j := best[i]
			// Mutual best is symmetric, so each accepted pair would
			// otherwise appear twice per pass; taking only j > i keeps
			// the first sighting. It also means Match always discovers
			// pairs at the lower index, so pairs built here are never
			// Swapped; newBasePair still normalizes for callers that
			// construct pairs in their own discovery order.
			if j == 0 || j < i {
				continue
			}
			if best[j] != i {
				continue
			}
			bp := newBasePair(c, i, j)
			pairs = append(pairs, bp)
			acceptedIdx = append(acceptedIdx, i, j)
			e.log.Debug("accepted mutual best",
				zap.Int("pass", pass),
				zap.Int("idx1", i),
				zap.Int("idx2", j),
				zap.Float64("score", bp.Score),
				zap.String("type", bp.Type.String()))
		}

		if len(acceptedIdx) == 0 {
			e.log.Debug("matching converged",
				zap.Int("passes", pass),
				zap.Int("pairs", len(pairs)),
				zap.Int("unmatched", len(unmatched)))
			return pairs
		}

		for _, i := range acceptedIdx {
			delete(inU, i)
		}
		next := unmatched[:0]
		for _, i := range unmatched {
			if inU[i] {
				next = append(next, i)
			}
		}
		unmatched = next
	}
}

// bestPartner returns the still-unmatched partner of i with the lowest
// adjusted score, or 0 when i has none. Partners are scanned in
// ascending index order and a challenger must beat the incumbent by
// more than TieEps, so exact ties resolve to the lower index.
func (e *Engine) bestPartner(c *Cache, i int, inU map[int]bool) int {
	best := 0
	var bestScore float64
	for _, j := range c.Partners(i) {
		if !inU[j] {
			continue
		}
		score := c.Get(i, j).Adjusted
		if best == 0 || score < bestScore-e.cfg.TieEps {
			best = j
			bestScore = score
		}
	}
	return best
}

// Unmatched lists the frame-bearing residues that ended up in no pair,
// in ascending index order. Purely diagnostic.
func Unmatched(s *pdb.Structure, pairs []*BasePair) []*pdb.Residue {
	taken := make(map[int]bool, 2*len(pairs))
	for _, bp := range pairs {
		taken[bp.Idx1] = true
		taken[bp.Idx2] = true
	}
	var out []*pdb.Residue
	for _, r := range s.Residues {
		if r.Frame != nil && !taken[r.Index] {
			out = append(out, r)
		}
	}
	return out
}
