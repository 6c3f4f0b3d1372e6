package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/jyesselm/find-pair-sub012/cmd/util"
	"github.com/jyesselm/find-pair-sub012/pair"
)

var (
	flagConfig  = ""
	flagOutput  = ""
	flagVerbose = false
)

type report struct {
	Path      string       `json:"path"`
	Pairs     []pairRecord `json:"pairs"`
	Unmatched []string     `json:"unmatched"`
}

type pairRecord struct {
	Idx1    int          `json:"idx1"`
	Idx2    int          `json:"idx2"`
	Res1    string       `json:"res1"`
	Res2    string       `json:"res2"`
	Type    string       `json:"type"`
	Score   float64      `json:"score"`
	Swapped bool         `json:"swapped,omitempty"`
	HBonds  []bondRecord `json:"hbonds"`
}

type bondRecord struct {
	Donor    string  `json:"donor"`
	Acceptor string  `json:"acceptor"`
	Distance float64 `json:"distance"`
}

func init() {
	flag.StringVar(&flagConfig, "config", flagConfig,
		"A TOML file overriding the default pairing parameters.")
	flag.StringVar(&flagOutput, "o", flagOutput,
		"Write the JSON report to this file instead of stdout.")
	flag.BoolVar(&flagVerbose, "v", flagVerbose,
		"When set, diagnostic traces are written to stderr.")

	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] pdb-file\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	util.AssertNArg(1)

	cfg := pair.Defaults()
	if len(flagConfig) > 0 {
		err := cfg.LoadFile(flagConfig)
		util.Assert(err, "Could not load '%s'", flagConfig)
	}

	s := util.OpenStructure(flag.Arg(0))

	eng := pair.NewEngine(cfg, util.Logger(flagVerbose))
	pairs, err := eng.FindPairs(s)
	util.Assert(err, "Could not pair '%s'", flag.Arg(0))

	rep := report{
		Path:      s.Path,
		Pairs:     make([]pairRecord, 0, len(pairs)),
		Unmatched: make([]string, 0),
	}
	for _, bp := range pairs {
		rec := pairRecord{
			Idx1:    bp.Idx1,
			Idx2:    bp.Idx2,
			Res1:    bp.Res1.String(),
			Res2:    bp.Res2.String(),
			Type:    bp.Type.String(),
			Score:   bp.Score,
			Swapped: bp.Swapped,
			HBonds:  make([]bondRecord, 0, len(bp.Bonds)),
		}
		for _, b := range bp.Bonds {
			rec.HBonds = append(rec.HBonds, bondRecord{
				Donor:    b.Donor.Name,
				Acceptor: b.Acceptor.Name,
				Distance: b.Distance,
			})
		}
		rep.Pairs = append(rep.Pairs, rec)
	}
	for _, r := range pair.Unmatched(s, pairs) {
		rep.Unmatched = append(rep.Unmatched, r.String())
	}

	out := os.Stdout
	if len(flagOutput) > 0 {
		var err error
		out, err = os.Create(flagOutput)
		util.Assert(err, "Could not create '%s'", flagOutput)
		defer out.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	util.Assert(enc.Encode(rep), "Could not write report")
}
