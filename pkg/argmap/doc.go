// Package argmap defines argument maps: trees of claims rooted at a thesis,
// where every claim is a tailwind (supporting), headwind (opposing) or
// neutral child of its parent.
//
// # Nodes
//
// A [Node] carries an ID, an optional parent ID (nil for the thesis), a
// statement, and the polarity and strength attributes used by the balance
// aggregator. Additional attributes live in [Node.Meta] and are passed through
// layout and rendering untouched.
//
// # File Formats
//
// Maps are stored as a [Map] document in JSON, TOML or YAML. [ReadFile] and
// [WriteFile] pick the codec from the file extension:
//
//	m, err := argmap.ReadFile("climate.yaml")
//	if err != nil {
//	    return err
//	}
//	err = argmap.WriteFile(m, "climate.json")
//
// # Outlines
//
// [ImportOutline] converts an indented plain-text outline into nodes:
//
//	Cities should ban cars
//	  + [80] Cleaner air
//	    - [30] Electric cars already solve this
//	  - [60] Hurts deliveries
//	  ~ Some cities tried it
//
// The markers "+", "-" and "~" (or "*") select tailwind, headwind and neutral.
// An optional bracketed number sets the strength.
package argmap
