package sink

import (
	"encoding/json"

	"github.com/matzehuels/windrose/pkg/graph"
)

// RenderJSON writes the engine wire format for l: the positioned nodes in
// output order and the parent-child edges.
func RenderJSON(l graph.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l.Result(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
