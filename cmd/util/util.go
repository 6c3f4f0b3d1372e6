// Package util has shared plumbing for the command line tools: fatal
// error handling in the style of the rest of the tools, and the shared
// diagnostic logger setup.
package util

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jyesselm/find-pair-sub012/pdb"
)

func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Assert quits with an error message when err is non-nil. An optional
// format string and arguments prefix the message.
func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
	}
}

// OpenStructure reads a PDB file or dies trying.
func OpenStructure(fileName string) *pdb.Structure {
	s, err := pdb.Read(fileName)
	Assert(err, "Could not read '%s'", fileName)
	return s
}

// Logger builds the diagnostic logger handed to the pairing engine: a
// development-style console logger at debug level when verbose, and a
// no-op logger otherwise.
func Logger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger, err := cfg.Build()
	Assert(err, "Could not build logger")
	return logger
}
