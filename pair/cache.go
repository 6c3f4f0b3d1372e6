package pair

import "github.com/jyesselm/find-pair-sub012/pdb"

// A Cache holds the validator's verdict for every eligible residue pair
// in one structure, keyed by normalized legacy-index pairs. It is built
// in a single pass and read-only afterwards, which is what lets the
// matching engine rescan it freely across passes.
type Cache struct {
	infos    map[uint64]*CandidateInfo
	partners map[int][]int
	indices  []int
	byIndex  map[int]*pdb.Residue
}

func pairKey(i, j int) uint64 {
	if i > j {
		i, j = j, i
	}
	return uint64(i)<<32 | uint64(uint32(j))
}

// BuildCache evaluates all frame-bearing residue pairs of a structure.
// Only valid candidates are stored; everything else stays absent, so a
// Get miss means "not a candidate". Residues are visited in ascending
// legacy index order, making the build itself deterministic.
func BuildCache(s *pdb.Structure, v *Validator) *Cache {
	c := &Cache{
		infos:    make(map[uint64]*CandidateInfo),
		partners: make(map[int][]int),
		byIndex:  make(map[int]*pdb.Residue),
	}
	for _, r := range s.Residues {
		if r.Frame != nil {
			c.indices = append(c.indices, r.Index)
			c.byIndex[r.Index] = r
		}
	}

	for a, i := range c.indices {
		for _, j := range c.indices[a+1:] {
			ci := v.Check(c.byIndex[i], c.byIndex[j])
			if !ci.Valid {
				continue
			}
			c.infos[pairKey(i, j)] = &ci
			c.partners[i] = append(c.partners[i], j)
			c.partners[j] = append(c.partners[j], i)
		}
	}
	return c
}

// Get returns the cached verdict for an unordered index pair, or nil
// when the pair is not an eligible candidate.
func (c *Cache) Get(i, j int) *CandidateInfo {
	return c.infos[pairKey(i, j)]
}

// Partners returns the eligible partner indices of residue i, in
// ascending order.
func (c *Cache) Partners(i int) []int {
	return c.partners[i]
}

// Indices returns the legacy indices of all frame-bearing residues, in
// ascending order.
func (c *Cache) Indices() []int {
	return c.indices
}

// Residue maps a legacy index back to its residue.
func (c *Cache) Residue(i int) *pdb.Residue {
	return c.byIndex[i]
}

// Len is the number of eligible candidate pairs.
func (c *Cache) Len() int {
	return len(c.infos)
}
