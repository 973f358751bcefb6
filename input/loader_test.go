package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layoutsynth/input"
)

func TestLoadBytesDefaultFormat(t *testing.T) {
	data := []byte(`{
		"examples": [
			{
				"name": "root",
				"rect": [0, 0, 100, 100],
				"children": [
					{"name": "child", "rect": [10, 10, 60, 60]}
				]
			}
		]
	}`)

	examples, err := input.LoadBytes(data, input.FormatDefault)
	require.NoError(t, err)
	require.Len(t, examples, 1)

	root := examples[0].Root
	assert.Equal(t, "root", root.Name)
	assert.Equal(t, int64(100), root.Rect.Width().Num().Int64())
	assert.Equal(t, int64(100), root.Rect.Height().Num().Int64())
	require.Len(t, root.Children, 1)
	assert.Equal(t, "child", root.Children[0].Name)
}

func TestLoadBytesBenchFormat(t *testing.T) {
	data := []byte(`{
		"train": [
			{
				"name": "root",
				"left": 0, "top": 0, "width": 100, "height": 100,
				"children": [
					{"name": "child", "left": 10, "top": 10, "width": 50, "height": 50}
				]
			}
		]
	}`)

	examples, err := input.LoadBytes(data, input.FormatBench)
	require.NoError(t, err)
	require.Len(t, examples, 1)

	root := examples[0].Root
	assert.Equal(t, int64(0), root.Rect.Left.Num().Int64())
	assert.Equal(t, int64(0), root.Rect.Top.Num().Int64())
	assert.Equal(t, int64(100), root.Rect.Right.Num().Int64())
	assert.Equal(t, int64(100), root.Rect.Bottom.Num().Int64())

	child := root.Children[0]
	assert.Equal(t, int64(10), child.Rect.Left.Num().Int64())
	assert.Equal(t, int64(60), child.Rect.Right.Num().Int64())
}

func TestLoadBytesDecimalLiteral(t *testing.T) {
	data := []byte(`{"examples": [{"name": "root", "rect": [0, 0, 33.5, 10]}]}`)

	examples, err := input.LoadBytes(data, input.FormatDefault)
	require.NoError(t, err)

	width := examples[0].Root.Rect.Width()
	assert.Equal(t, "67/2", width.RatString())
}

func TestLoadBytesRejectsMissingRect(t *testing.T) {
	data := []byte(`{"examples": [{"name": "root"}]}`)

	_, err := input.LoadBytes(data, input.FormatDefault)
	assert.ErrorIs(t, err, input.ErrMissingRect)
}

func TestLoadBytesRejectsMalformedRect(t *testing.T) {
	data := []byte(`{"examples": [{"name": "root", "rect": [0, 0, 100]}]}`)

	_, err := input.LoadBytes(data, input.FormatDefault)
	assert.ErrorIs(t, err, input.ErrMalformedRect)
}

func TestLoadBytesRejectsEmptyExamples(t *testing.T) {
	data := []byte(`{"examples": []}`)

	_, err := input.LoadBytes(data, input.FormatDefault)
	assert.ErrorIs(t, err, input.ErrNoExamples)
}

func TestParseFormat(t *testing.T) {
	f, err := input.ParseFormat("bench")
	require.NoError(t, err)
	assert.Equal(t, input.FormatBench, f)

	f, err = input.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, input.FormatDefault, f)

	_, err = input.ParseFormat("xml")
	assert.ErrorIs(t, err, input.ErrUnknownFormat)
}
