package argmap

import (
	"fmt"
	"strings"
)

// Polarity is a node's relation to its parent's claim.
type Polarity string

const (
	Tailwind Polarity = "tailwind"
	Headwind Polarity = "headwind"
	Neutral  Polarity = "neutral"
)

// MaxStrength is the upper bound of [Node.Strength].
const MaxStrength = 100

// ParsePolarity parses a polarity name. Matching is case-insensitive and the
// empty string yields the empty polarity (unset).
func ParsePolarity(s string) (Polarity, error) {
	switch p := Polarity(strings.ToLower(strings.TrimSpace(s))); p {
	case Tailwind, Headwind, Neutral, "":
		return p, nil
	default:
		return "", fmt.Errorf("unknown polarity %q (want tailwind, headwind or neutral)", s)
	}
}

// Valid reports whether p is a known polarity or unset.
func (p Polarity) Valid() bool {
	switch p {
	case Tailwind, Headwind, Neutral, "":
		return true
	}
	return false
}

// Node is a single claim in an argument map.
type Node struct {
	ID        string         `json:"id" toml:"id" yaml:"id"`
	ParentID  *string        `json:"parentId" toml:"parent_id,omitempty" yaml:"parentId"`
	Statement string         `json:"statement" toml:"statement" yaml:"statement"`
	Polarity  Polarity       `json:"polarity,omitempty" toml:"polarity,omitempty" yaml:"polarity,omitempty"`
	Strength  *int           `json:"strength,omitempty" toml:"strength,omitempty" yaml:"strength,omitempty"`
	Tags      []string       `json:"tags,omitempty" toml:"tags,omitempty" yaml:"tags,omitempty"`
	Meta      map[string]any `json:"meta,omitempty" toml:"meta,omitempty" yaml:"meta,omitempty"`
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool { return n.ParentID == nil }

// Parent returns the parent ID, or "" for the root.
func (n Node) Parent() string {
	if n.ParentID == nil {
		return ""
	}
	return *n.ParentID
}

// StrengthValue returns the strength, treating nil as 0.
func (n Node) StrengthValue() int {
	if n.Strength == nil {
		return 0
	}
	return *n.Strength
}

// Ref returns a pointer to a copy of s. It is a convenience for building
// [Node.ParentID] and [Node.Strength] literals.
func Ref[T any](v T) *T { return &v }

// Root builds a thesis node.
func Root(id, statement string) Node {
	return Node{ID: id, Statement: statement}
}

// Child builds a node under parent with the given polarity and strength.
func Child(id, parent, statement string, p Polarity, strength int) Node {
	return Node{
		ID:        id,
		ParentID:  Ref(parent),
		Statement: statement,
		Polarity:  p,
		Strength:  Ref(strength),
	}
}

// Children indexes nodes by parent ID, preserving input order within each
// sibling group. The root is not listed under any key.
func Children(nodes []Node) map[string][]Node {
	out := make(map[string][]Node)
	for _, n := range nodes {
		if n.ParentID == nil {
			continue
		}
		out[*n.ParentID] = append(out[*n.ParentID], n)
	}
	return out
}

// Find returns the node with the given ID.
func Find(nodes []Node, id string) (Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
