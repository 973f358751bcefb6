package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/layoutsynth/input"
	"github.com/katalvlaran/layoutsynth/instantiate"
	"github.com/katalvlaran/layoutsynth/learn"
	"github.com/katalvlaran/layoutsynth/output"
	"github.com/katalvlaran/layoutsynth/pipeline"
)

func runSynthesize(cmd *cobra.Command, opts *runOptions) error {
	format, err := input.ParseFormat(opts.inputFormat)
	if err != nil {
		return fmt.Errorf("input-format: %w", err)
	}

	instMethod, err := instantiate.ParseMethod(opts.instantiationMethod)
	if err != nil {
		return fmt.Errorf("instantiation-method: %w", err)
	}

	learnMethod, err := learn.ParseMethod(opts.learningMethod)
	if err != nil {
		return fmt.Errorf("learning-method: %w", err)
	}

	pruneMethod, err := pipeline.ParsePruningMethod(opts.pruningMethod)
	if err != nil {
		return fmt.Errorf("pruning-method: %w", err)
	}

	examples, err := input.LoadFile(opts.inputFile, format)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.inputFile, err)
	}

	pipelineOpts := []pipeline.Option{
		pipeline.WithInputFormat(format.String()),
		pipeline.WithNumericType(opts.numericType),
		pipeline.WithInstantiationMethod(instMethod),
		pipeline.WithLearningMethod(learnMethod),
		pipeline.WithPruningMethod(pruneMethod),
		pipeline.WithUnambig(opts.unambig),
		pipeline.WithIntegrationPass(opts.integration),
	}

	if opts.boundsTolerance > 0 {
		pipelineOpts = append(pipelineOpts, pipeline.WithBoundsCombineTolerance(big.NewRat(int64(opts.boundsTolerance*1e6), 1e6)))
	}

	if opts.debugNoise > 0 {
		pipelineOpts = append(pipelineOpts, pipeline.WithDebugNoise(big.NewRat(int64(opts.debugNoise*1e6), 1e6), nil))
	}

	result, err := pipeline.Synthesize(context.Background(), examples, pipelineOpts...)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}

	doc, err := output.Build(result.Selected, result.MinVals, result.MaxVals)
	if err != nil {
		return fmt.Errorf("building output: %w", err)
	}

	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if opts.outputFile == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(opts.outputFile, append(data, '\n'), 0o644)
}
