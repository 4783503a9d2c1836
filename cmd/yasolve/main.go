// Command yasolve reads a DIMACS CNF file and reports its satisfiability.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/halloway-dev/yasolve/internal/sat"
	"github.com/halloway-dev/yasolve/parsers"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagNoDLIS = flag.Bool(
	"nodlis",
	false,
	"disable the DLIS heuristic, falling back to lowest-index unassigned variable",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"the instance file is gzip-compressed",
)

var flagMaxConflicts = flag.Int(
	"maxconflicts",
	-1,
	"give up and report unknown after this many conflicts (negative means unlimited)",
)

type config struct {
	instanceFile string
	gzipped      bool
	opts         sat.Options
	memProfile   bool
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		opts: sat.Options{
			UseDLIS:      !*flagNoDLIS,
			MaxConflicts: *flagMaxConflicts,
		},
		memProfile: *flagMemProfile,
		cpuProfile: *flagCPUProfile,
	}, nil
}

func run(cfg *config) (sat.LBool, error) {
	s := sat.NewSolver(cfg.opts)

	if err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return sat.Unknown, fmt.Errorf("could not load instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", s.NumVars())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	m := s.Metrics()
	fmt.Printf("c time (sec):       %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:        %d\n", m.Decisions)
	fmt.Printf("c conflicts:        %d\n", m.Conflicts)
	fmt.Printf("c propagations:     %d\n", m.Propagations)
	fmt.Printf("c avg trail/conflict: %.2f\n", m.AvgTrailAtConflict())

	return status, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	status, err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		os.Exit(10)
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
		os.Exit(20)
	default:
		fmt.Println("s UNKNOWN")
		os.Exit(0)
	}
}
