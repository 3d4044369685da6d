package argmap

import (
	"errors"

	errs "github.com/matzehuels/windrose/pkg/errors"
)

// MetaURL is the Meta key holding a node's source link.
const MetaURL = "url"

// Validate checks every node's ID, polarity, strength and source link.
// All problems are reported, joined into one error.
func Validate(nodes []Node) error {
	var problems []error
	for i, n := range nodes {
		if err := errs.ValidateNodeID(n.ID); err != nil {
			problems = append(problems, errs.Wrap(errs.ErrCodeInvalidMap, err, "node #%d", i))
			continue
		}
		if n.ParentID != nil {
			if err := errs.ValidateNodeID(*n.ParentID); err != nil {
				problems = append(problems, errs.Wrap(errs.ErrCodeInvalidMap, err, "node %q: parent", n.ID))
			}
			if *n.ParentID == n.ID {
				problems = append(problems, errs.New(errs.ErrCodeInvalidMap, "node %q is its own parent", n.ID))
			}
		}
		if err := errs.ValidatePolarity(string(n.Polarity)); err != nil {
			problems = append(problems, errs.Wrap(errs.ErrCodeInvalidPolarity, err, "node %q", n.ID))
		}
		if n.Strength != nil {
			if err := errs.ValidateStrength(*n.Strength, MaxStrength); err != nil {
				problems = append(problems, errs.Wrap(errs.ErrCodeInvalidStrength, err, "node %q", n.ID))
			}
		}
		if u, ok := n.Meta[MetaURL].(string); ok {
			if err := errs.ValidateURL(u); err != nil {
				problems = append(problems, errs.Wrap(errs.ErrCodeInvalidInput, err, "node %q: source link", n.ID))
			}
		}
	}
	return errors.Join(problems...)
}
