// Package: lvlath-decision/cmd/decisioncli
//
// decisioncli solves one of the library's built-in demo problems with
// the mdpsolve, pomdpsolve, or pbvi solver and prints the resulting
// policy. Parsing the Cassandra-style .pomdp/.dpomdp problem-file
// grammar is out of the core library's scope (see SPEC_FULL.md §4),
// so this wrapper exists mainly to give the solver
// plumbing and the exit-code contract (spec.md §6) an exercised
// caller.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/mdpsolve"
	"github.com/katalvlaran/lvlath-decision/pbvi"
	"github.com/katalvlaran/lvlath-decision/policy"
	"github.com/katalvlaran/lvlath-decision/pomdpsolve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses flags, solves the selected demo problem, and writes the
// resulting policy to stdout. It never calls os.Exit itself so tests
// can drive it directly. Parse/solve/write failures are reported
// through a log.Logger bound to stderr, the only place in this module
// that logs.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "decisioncli: ", 0)

	fs := flag.NewFlagSet("decisioncli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	solverName := fs.String("solver", "pomdpsolve", "solver to run: mdpsolve, pomdpsolve, or pbvi")
	steps := fs.Uint("steps", 4, "finite horizon length; 0 selects infinite horizon")
	discount := fs.Float64("discount", 0.95, "discount factor in (0, 1]")
	seed := fs.Int64("seed", 1, "RNG seed for pbvi's stochastic expansion rules")

	if err := fs.Parse(args); err != nil {
		return exitParseError
	}
	if fs.NArg() > 0 {
		logger.Printf("unexpected positional arguments: %v", fs.Args())
		return exitParseError
	}

	switch *solverName {
	case "mdpsolve":
		return runMDP(uint32(*steps), *discount, stdout, logger)
	case "pomdpsolve":
		return runPOMDP(uint32(*steps), *discount, stdout, logger)
	case "pbvi":
		return runPBVI(uint32(*steps), *discount, *seed, stdout, logger)
	default:
		logger.Printf("unknown solver %q", *solverName)
		return exitParseError
	}
}

func runMDP(steps uint32, discount float64, stdout io.Writer, logger *log.Logger) int {
	m, states, err := buildMDPDemo(steps, discount)
	if err != nil {
		logger.Printf("model error: %v", err)
		return exitModelError
	}

	p, err := mdpsolve.New().Solve(m)
	if err != nil {
		logger.Printf("solve error: %v", err)
		return exitSolveError
	}

	if err := writeMDPPolicy(stdout, p, states); err != nil {
		logger.Printf("write error: %v", err)
		return exitIOError
	}
	return exitSuccess
}

func runPOMDP(steps uint32, discount float64, stdout io.Writer, logger *log.Logger) int {
	m, states, _, err := buildPOMDPDemo(steps, discount)
	if err != nil {
		logger.Printf("model error: %v", err)
		return exitModelError
	}

	p, err := pomdpsolve.New().Solve(m)
	if err != nil {
		logger.Printf("solve error: %v", err)
		return exitSolveError
	}

	return writeAlphaPolicy(p, states, stdout, logger)
}

func runPBVI(steps uint32, discount float64, seed int64, stdout io.Writer, logger *log.Logger) int {
	m, states, _, err := buildPOMDPDemo(steps, discount)
	if err != nil {
		logger.Printf("model error: %v", err)
		return exitModelError
	}

	hashes := make([]uint32, len(states))
	for i, st := range states {
		hashes[i] = st.Hash()
	}
	if len(hashes) != 2 {
		logger.Printf("pbvi demo requires a two-state model, got %d", len(hashes))
		return exitModelError
	}

	solver := pbvi.New(
		pbvi.WithInitialBeliefs(fivePointBeliefs(hashes[0], hashes[1])...),
		pbvi.WithSeed(seed),
	)
	p, err := solver.Solve(m)
	if err != nil {
		logger.Printf("solve error: %v", err)
		return exitSolveError
	}

	return writeAlphaPolicy(p, states, stdout, logger)
}

// writeAlphaPolicy writes every horizon slot's alpha-vector set via
// policy.WriteAlphaVectors, the common tail of the pomdpsolve and pbvi
// code paths.
func writeAlphaPolicy(p *policy.POMDP, states []entity.State, stdout io.Writer, logger *log.Logger) int {
	hashes := make([]uint32, len(states))
	for i, st := range states {
		hashes[i] = st.Hash()
	}

	for t := 0; t < p.Horizons(); t++ {
		set, err := p.AlphaVectors(t)
		if err != nil {
			logger.Printf("write error: %v", err)
			return exitIOError
		}
		fmt.Fprintf(stdout, "# horizon %d\n", t)
		if err := policy.WriteAlphaVectors(stdout, set, hashes); err != nil {
			logger.Printf("write error: %v", err)
			return exitIOError
		}
	}
	return exitSuccess
}

func writeMDPPolicy(w io.Writer, p *policy.MDP, states []entity.State) error {
	for t := 0; t < p.Horizons(); t++ {
		for _, st := range states {
			a, err := p.Action(t, st.Hash())
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%d\t%s\t%d\n", t, st.Label(), a); err != nil {
				return err
			}
		}
	}
	return nil
}

// fivePointBeliefs is the canonical five-point seed over a two-state
// belief simplex (spec.md §4.11's worked PBVI example).
func fivePointBeliefs(left, right uint32) []belief.Belief {
	mk := func(pLeft, pRight float64) belief.Belief {
		b := belief.New()
		b.Set(left, pLeft)
		b.Set(right, pRight)
		return b
	}
	return []belief.Belief{
		mk(1.0, 0.0),
		mk(0.0, 1.0),
		mk(0.25, 0.75),
		mk(0.75, 0.25),
		mk(0.5, 0.5),
	}
}
