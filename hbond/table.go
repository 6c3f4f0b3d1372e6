package hbond

import "github.com/jyesselm/find-pair-sub012/pdb"

// Role is an atom's hydrogen-bonding capability. The closed enum
// replaces the reference implementation's "ask the atom at runtime"
// scheme: capability is a pure function of base letter, element and
// atom name, nothing else.
type Role int

const (
	// None marks atoms that cannot take part in a hydrogen bond at
	// all (carbon, phosphorus, anything that is not N or O).
	None Role = iota
	Donor
	Acceptor
	// Either marks N/O atoms with no table entry: modified bases and
	// unusual naming make a fixed assignment impossible, so they are
	// allowed in both directions and their bonds are tagged ambiguous.
	Either
)

func (r Role) String() string {
	switch r {
	case Donor:
		return "donor"
	case Acceptor:
		return "acceptor"
	case Either:
		return "either"
	}
	return "none"
}

// roles maps base letter + atom name to a fixed role, for the base
// atoms whose chemistry is unambiguous. Sugar and phosphate oxygens are
// base-independent and live under letter 0.
var roles = map[byte]map[string]Role{
	'A': {
		"N6": Donor,
		"N1": Acceptor, "N3": Acceptor, "N7": Acceptor,
	},
	'G': {
		"N1": Donor, "N2": Donor,
		"O6": Acceptor, "N3": Acceptor, "N7": Acceptor,
	},
	'I': {
		"N1": Donor,
		"O6": Acceptor, "N3": Acceptor, "N7": Acceptor,
	},
	'C': {
		"N4": Donor,
		"N3": Acceptor, "O2": Acceptor,
	},
	'T': {
		"N3": Donor,
		"O2": Acceptor, "O4": Acceptor,
	},
	'U': {
		"N3": Donor,
		"O2": Acceptor, "O4": Acceptor,
	},
	0: {
		// The 2'-hydroxyl both donates and accepts.
		"O2'": Either,
		"O3'": Acceptor, "O4'": Acceptor, "O5'": Acceptor,
		"OP1": Acceptor, "OP2": Acceptor, "OP3": Acceptor,
		"O1P": Acceptor, "O2P": Acceptor, "O3P": Acceptor,
	},
}

// RoleOf looks up an atom's hydrogen-bonding role. Only nitrogen and
// oxygen heavy atoms can participate; anything else is None. Listed
// atoms get their fixed role; unlisted N/O atoms are Either.
func RoleOf(a *pdb.Atom) Role {
	if a.Element != "N" && a.Element != "O" {
		return None
	}
	if r, ok := roles[0][a.Name]; ok {
		return r
	}
	if base := roles[a.Residue.BaseLetter()]; base != nil {
		if r, ok := base[a.Name]; ok {
			return r
		}
	}
	return Either
}

// IsSugarAtom reports whether the atom belongs to the sugar/phosphate
// moiety rather than the base: primed names and phosphate oxygens.
func IsSugarAtom(a *pdb.Atom) bool {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == '\'' {
			return true
		}
	}
	switch a.Name {
	case "P", "OP1", "OP2", "OP3", "O1P", "O2P", "O3P":
		return true
	}
	return false
}
