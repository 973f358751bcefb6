package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/katalvlaran/layoutsynth/view"
)

// LoadFile reads and decodes path as JSON in the given format.
func LoadFile(path string, format Format) ([]*view.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return LoadBytes(data, format)
}

// LoadBytes decodes a JSON document already held in memory. Numbers
// decode through json.Number so every coordinate reaches view.Build as
// an exact *big.Rat, never a float64.
func LoadBytes(data []byte, format Format) ([]*view.Example, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	views := env.views(format)
	if len(views) == 0 {
		return nil, ErrNoExamples
	}

	examples := make([]*view.Example, len(views))
	for i, wv := range views {
		spec, err := toSpec(wv, format)
		if err != nil {
			return nil, fmt.Errorf("input: example %d: %w", i, err)
		}
		root, err := view.Build(spec)
		if err != nil {
			return nil, fmt.Errorf("input: example %d: %w", i, err)
		}
		examples[i] = view.NewExample(root)
	}
	return examples, nil
}

func toSpec(wv wireView, format Format) (view.Spec, error) {
	rect, err := toRect(wv, format)
	if err != nil {
		return view.Spec{}, err
	}

	children := make([]view.Spec, len(wv.Children))
	for i, child := range wv.Children {
		childSpec, err := toSpec(child, format)
		if err != nil {
			return view.Spec{}, err
		}
		children[i] = childSpec
	}

	return view.Spec{Name: wv.Name, Rect: rect, Children: children}, nil
}

func toRect(wv wireView, format Format) (view.Rect, error) {
	if format == FormatBench {
		return benchRect(wv)
	}
	return defaultRect(wv)
}

func defaultRect(wv wireView) (view.Rect, error) {
	switch len(wv.Rect) {
	case 0:
		return view.Rect{}, ErrMissingRect
	case 4:
		// fine, fall through
	default:
		return view.Rect{}, ErrMalformedRect
	}
	left, err := parseRat(wv.Rect[0])
	if err != nil {
		return view.Rect{}, err
	}
	top, err := parseRat(wv.Rect[1])
	if err != nil {
		return view.Rect{}, err
	}
	right, err := parseRat(wv.Rect[2])
	if err != nil {
		return view.Rect{}, err
	}
	bottom, err := parseRat(wv.Rect[3])
	if err != nil {
		return view.Rect{}, err
	}
	return view.NewRect(left, top, right, bottom)
}

func benchRect(wv wireView) (view.Rect, error) {
	if wv.Left == nil || wv.Top == nil || wv.Width == nil || wv.Height == nil {
		return view.Rect{}, ErrMissingRect
	}
	left, err := parseRat(*wv.Left)
	if err != nil {
		return view.Rect{}, err
	}
	top, err := parseRat(*wv.Top)
	if err != nil {
		return view.Rect{}, err
	}
	width, err := parseRat(*wv.Width)
	if err != nil {
		return view.Rect{}, err
	}
	height, err := parseRat(*wv.Height)
	if err != nil {
		return view.Rect{}, err
	}
	right := new(big.Rat).Add(left, width)
	bottom := new(big.Rat).Add(top, height)
	return view.NewRect(left, top, right, bottom)
}
