// Command vroom loads a TSPLIB instance, builds a Christofides tour,
// improves it with 2-opt/or-opt local search, and writes the result as
// JSON.
//
// Grounded on github.com/azaryc2s-bch_hmmmtsp's solver/main.go for the
// overall shape (flag parsing, InitLoggers-then-work, read input file,
// write output file) and on github.com/katalvlaran/lvlath's examples for
// how to call into the domain packages.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/giraldeau/vroom/christofides"
	"github.com/giraldeau/vroom/internal/config"
	"github.com/giraldeau/vroom/internal/emit"
	"github.com/giraldeau/vroom/internal/sysinfo"
	"github.com/giraldeau/vroom/internal/vlog"
	"github.com/giraldeau/vroom/localsearch"
	"github.com/giraldeau/vroom/tsplib"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("vroom", flag.ContinueOnError)

	cfgPath := fs.String("config", "vroom.toml", "path to an optional TOML config file supplying defaults")
	inputF := fs.String("i", "", "path to a TSPLIB instance (or pass it as the first positional argument; '-' or none reads standard input)")
	outputF := fs.String("o", "", "path to write the JSON solution (default: stdout)")
	logLvl := fs.Int("log", 0, "logging verbosity 1-4 (error, info, debug, spam); 0 uses the config default")
	timeLimit := fs.Duration("time", 0, "wall-clock budget for local search, e.g. 30s; accepted but not applied: local search always runs to convergence")
	two := fs.Bool("2opt", true, "enable 2-opt local search (default from config's two_opt when left unset)")
	orOpt := fs.Bool("oropt", true, "enable or-opt local search (default from config's or_opt when left unset)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vroom: reading config: %v\n", err)

		return 1
	}

	level := vlog.Level(cfg.LogLevel)
	if *logLvl != 0 {
		level = vlog.Level(*logLvl)
	}
	vlog.Init(level)
	sysinfo.LogStartupSummary()

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	enable2Opt := cfg.Enable2Opt
	if explicit["2opt"] {
		enable2Opt = *two
	}
	enableOrOpt := cfg.EnableOrOpt
	if explicit["oropt"] {
		enableOrOpt = *orOpt
	}

	inputPath := *inputF
	if inputPath == "" && fs.NArg() > 0 {
		inputPath = fs.Arg(0)
	}
	if inputPath == "" {
		inputPath = cfg.Input
	}

	outputPath := *outputF
	if outputPath == "" {
		outputPath = cfg.Output
	}

	_ = timeLimit // parsed only; localsearch.Optimize takes no deadline.

	var text []byte
	if inputPath == "" || inputPath == "-" {
		inputPath = "standard input"
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(inputPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vroom: reading %s: %v\n", inputPath, err)

		return 1
	}

	start := time.Now()
	vlog.Log(vlog.LevelInfo, "loading %s", inputPath)
	inst, err := tsplib.Load(string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vroom: parsing %s: %v\n", inputPath, err)

		return 1
	}

	if err = inst.Dist.ValidateSymmetric(); err != nil {
		fmt.Fprintf(os.Stderr, "vroom: invalid instance %s: %v\n", inputPath, err)

		return 1
	}

	vlog.Log(vlog.LevelInfo, "running Christofides on %d vertices", inst.Dist.Rows())
	result, err := christofides.Solve(inst.Dist, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vroom: %v\n", err)

		return 1
	}
	vlog.Log(vlog.LevelDebug, "Christofides tour cost: %d", result.Cost)

	tour, cost := result.Tour, result.Cost
	if enable2Opt || enableOrOpt {
		vlog.Log(vlog.LevelInfo, "running local search (2opt=%v oropt=%v)", enable2Opt, enableOrOpt)
		tour, cost, err = localsearch.Optimize(inst.Dist, tour, localsearch.Options{
			Enable2Opt:  enable2Opt,
			EnableOrOpt: enableOrOpt,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "vroom: local search: %v\n", err)

			return 1
		}
	}
	vlog.Log(vlog.LevelInfo, "final tour cost: %d (elapsed %s)", cost, time.Since(start))

	sol := emit.BuildSolution(tour, cost, inst.Nodes)

	out := os.Stdout
	if outputPath != "" {
		f, ferr := os.Create(outputPath)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "vroom: writing %s: %v\n", outputPath, ferr)

			return 1
		}
		defer f.Close()
		out = f
	}

	if err = emit.Write(out, sol); err != nil {
		fmt.Fprintf(os.Stderr, "vroom: encoding solution: %v\n", err)

		return 1
	}

	return 0
}
