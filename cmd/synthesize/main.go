// Command synthesize runs the layout-constraint pipeline over a JSON file
// of example view trees and writes the synthesized constraint set to a
// JSON file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:           "synthesize",
		Short:         "Synthesize layout constraints from example view trees",
		Long:          "Reads a JSON file of example view trees and writes the synthesized constraint set as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSynthesize(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.inputFile, "input-file", "", "path to the input JSON file (required)")
	flags.StringVar(&opts.inputFormat, "input-format", "default", "input wire format: default | bench")
	flags.StringVar(&opts.numericType, "numeric-type", "Q", "canonical coordinate number type: N | R | Q | Z")
	flags.StringVar(&opts.instantiationMethod, "instantiation-method", "numpy", "template enumerator: numpy | prolog")
	flags.StringVar(&opts.learningMethod, "learning-method", "noisetolerant", "parameter learner: simple | heuristic | noisetolerant")
	flags.StringVar(&opts.pruningMethod, "pruning-method", "baseline", "pruning strategy: baseline | hierarchical")
	flags.BoolVar(&opts.unambig, "unambig", true, "enable the CEGIS unambiguity refinement loop")
	flags.StringVar(&opts.outputFile, "output-file", "", "path to write the output JSON file (default stdout)")
	flags.Float64Var(&opts.debugNoise, "debug-noise", 0, "uniform noise magnitude added to input rects before synthesis (robustness testing)")
	flags.BoolVar(&opts.integration, "integration", true, "run the hierarchical re-admission pass (ignored under baseline pruning)")
	flags.Float64Var(&opts.boundsTolerance, "bounds-tolerance", 5, "tolerance for collapsing a Le/Ge bounds pair into a single Eq constraint")

	cmd.MarkFlagRequired("input-file")

	return cmd
}

// runOptions holds the raw flag values newRootCmd binds; runSynthesize
// turns them into the typed values Synthesize's option constructors want.
type runOptions struct {
	inputFile           string
	inputFormat         string
	numericType         string
	instantiationMethod string
	learningMethod      string
	pruningMethod       string
	unambig             bool
	outputFile          string
	debugNoise          float64
	integration         bool
	boundsTolerance     float64
}
