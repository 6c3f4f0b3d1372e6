package pair

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/jyesselm/find-pair-sub012/frame"
	"github.com/jyesselm/find-pair-sub012/hbond"
)

// Config collects every numeric threshold the pairing engine consults.
// The reference implementation kept these in a mutable global; here the
// whole set is an explicit value handed to the validator and engine at
// construction, and Defaults reproduces the legacy constants exactly.
// Distances are in angstroms, angles in degrees.
type Config struct {
	// MaxDOrg is the largest allowed origin-to-origin distance.
	MaxDOrg float64 `toml:"max_dorg"`

	// MaxDV is the largest allowed displacement along the mean base
	// normal.
	MaxDV float64 `toml:"max_dv"`

	// MaxPlaneAngle is the largest allowed angle between base planes.
	MaxPlaneAngle float64 `toml:"max_plane_angle"`

	// MinDNN and MaxDNN bound the distance between the two glycosidic
	// nitrogens. MaxDNN defaults to +Inf; the lower bound is the one
	// doing the work (it rejects stacked and clashing geometries).
	MinDNN float64 `toml:"min_dnn"`
	MaxDNN float64 `toml:"max_dnn"`

	// MinBaseHB is the fewest base-base hydrogen bonds a candidate
	// needs. A candidate with zero base-base bonds is still eligible
	// if it has a sugar-edge bond.
	MinBaseHB int `toml:"min_base_hb"`

	// Hydrogen bond distance window and the tighter bound for bonds
	// trusted by the scoring adjustment.
	HBMinDist  float64 `toml:"hb_min_dist"`
	HBMaxDist  float64 `toml:"hb_max_dist"`
	HBGoodDist float64 `toml:"hb_good_dist"`

	// RMSDCutoff gates off-whitelist residues in frame fitting, and
	// MinRingAtoms is the fewest matched ring atoms for any fit.
	RMSDCutoff   float64 `toml:"rmsd_cutoff"`
	MinRingAtoms int     `toml:"min_ring_atoms"`

	// CanonicalDiscount is subtracted from the quality score of pairs
	// the classifier marks Watson-Crick or wobble.
	CanonicalDiscount float64 `toml:"canonical_discount"`

	// TieEps is the score window inside which two candidate partners
	// are considered tied and the lower residue index wins.
	TieEps float64 `toml:"tie_eps"`
}

// Defaults returns the legacy thresholds.
func Defaults() Config {
	return Config{
		MaxDOrg:           15.0,
		MaxDV:             2.5,
		MaxPlaneAngle:     65.0,
		MinDNN:            4.5,
		MaxDNN:            math.Inf(1),
		MinBaseHB:         1,
		HBMinDist:         hbond.DefaultMinDist,
		HBMaxDist:         hbond.DefaultMaxDist,
		HBGoodDist:        hbond.DefaultGoodDist,
		RMSDCutoff:        frame.DefaultRMSDCutoff,
		MinRingAtoms:      frame.MinRingAtoms,
		CanonicalDiscount: 2.0,
		TieEps:            1e-10,
	}
}

// LoadFile overlays thresholds from a TOML file onto c. Keys absent
// from the file keep their current values, so the usual pattern is
//
//	cfg := pair.Defaults()
//	err := cfg.LoadFile("thresholds.toml")
func (c *Config) LoadFile(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return err
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("%s: unknown configuration key %q", path, undec[0])
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.MaxDOrg <= 0 || c.MaxDV <= 0 || c.MaxPlaneAngle <= 0 {
		return fmt.Errorf("geometry thresholds must be positive")
	}
	if c.HBMinDist >= c.HBMaxDist {
		return fmt.Errorf("hb_min_dist %g must be below hb_max_dist %g",
			c.HBMinDist, c.HBMaxDist)
	}
	if c.MinDNN > c.MaxDNN {
		return fmt.Errorf("min_dnn %g must not exceed max_dnn %g",
			c.MinDNN, c.MaxDNN)
	}
	return nil
}

// detector builds the hydrogen bond detector matching the config.
func (c Config) detector() hbond.Detector {
	return hbond.Detector{
		MinDist:  c.HBMinDist,
		MaxDist:  c.HBMaxDist,
		GoodDist: c.HBGoodDist,
	}
}

// calculator builds the frame calculator matching the config.
func (c Config) calculator() frame.Calculator {
	return frame.Calculator{
		RMSDCutoff: c.RMSDCutoff,
		MinRing:    c.MinRingAtoms,
	}
}
