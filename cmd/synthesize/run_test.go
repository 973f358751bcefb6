package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedChildInput = `{
  "examples": [
    {"name": "root", "rect": [0, 0, 100, 100], "children": [
      {"name": "child", "rect": [10, 10, 60, 60]}
    ]},
    {"name": "root", "rect": [0, 0, 200, 100], "children": [
      {"name": "child", "rect": [10, 10, 60, 60]}
    ]}
  ]
}`

func TestRunSynthesizeWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.json")
	outputPath := filepath.Join(dir, "output.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(fixedChildInput), 0o644))

	opts := &runOptions{
		inputFile:           inputPath,
		inputFormat:         "default",
		numericType:         "Q",
		instantiationMethod: "numpy",
		learningMethod:      "noisetolerant",
		pruningMethod:       "baseline",
		unambig:             false,
		outputFile:          outputPath,
		integration:         true,
		boundsTolerance:     5,
	}

	require.NoError(t, runSynthesize(newRootCmd(), opts))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotEmpty(t, doc["constraints"])
	assert.NotEmpty(t, doc["axioms"])
}

func TestRunSynthesizeRejectsUnknownInputFormat(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(fixedChildInput), 0o644))

	opts := &runOptions{inputFile: inputPath, inputFormat: "yaml"}
	err := runSynthesize(newRootCmd(), opts)
	assert.Error(t, err)
}

func TestRunSynthesizeRejectsMissingInputFile(t *testing.T) {
	opts := &runOptions{inputFile: filepath.Join(t.TempDir(), "missing.json"), inputFormat: "default"}
	err := runSynthesize(newRootCmd(), opts)
	assert.Error(t, err)
}
