package input

import "encoding/json"

// wireView is the JSON shape of one view, covering both formats: Rect is
// populated for "default", Left/Top/Width/Height for "bench". Fields for
// the format not in use are simply absent.
type wireView struct {
	Name     string          `json:"name"`
	Rect     []json.Number   `json:"rect,omitempty"`
	Children []wireView      `json:"children,omitempty"`
	Left     *json.Number    `json:"left,omitempty"`
	Top      *json.Number    `json:"top,omitempty"`
	Width    *json.Number    `json:"width,omitempty"`
	Height   *json.Number    `json:"height,omitempty"`
}

// envelope is the top-level document: "default" format nests views under
// examples, "bench" format nests them under train.
type envelope struct {
	Examples []wireView `json:"examples"`
	Train    []wireView `json:"train"`
}

func (e envelope) views(format Format) []wireView {
	if format == FormatBench {
		return e.Train
	}
	return e.Examples
}
