package argmap

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	errs "github.com/matzehuels/windrose/pkg/errors"
)

// NamespaceOutline is the default UUIDv5 namespace for deterministic outline imports.
var NamespaceOutline = uuid.MustParse("8f1c7a8e-4f0b-5d2e-9b7a-3c6d2f1e0a55")

// OutlineOptions controls [ImportOutline].
type OutlineOptions struct {
	// Deterministic derives node IDs from each line's position in the tree
	// (UUIDv5) so that re-importing the same outline yields the same IDs.
	Deterministic bool
	// Namespace overrides [NamespaceOutline] for deterministic IDs.
	Namespace uuid.UUID
	// TabWidth is the number of spaces a tab expands to. Defaults to 4.
	TabWidth int
}

// outline line markers
const (
	markerTailwind = '+'
	markerHeadwind = '-'
	markerNeutral  = '~'
	markerBullet   = '*'
)

// ImportOutline parses an indented text outline into an argument map.
// The first non-blank line is the thesis; every other line must be
// indented under it and start with a polarity marker. Lines starting
// with "#" are comments.
func ImportOutline(r io.Reader, opts OutlineOptions) (Map, error) {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	ns := opts.Namespace
	if ns == uuid.Nil {
		ns = NamespaceOutline
	}

	var (
		m        Map
		stack    []string // node IDs by depth
		ordinals = map[string]int{}
		unit     int
		lineNo   int
	)

	newID := func(parent, statement string) string {
		if !opts.Deterministic {
			return uuid.NewString()
		}
		ordinals[parent]++
		name := parent + "\x00" + strconv.Itoa(ordinals[parent]) + "\x00" + statement
		return uuid.NewSHA1(ns, []byte(name)).String()
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		raw := strings.ReplaceAll(sc.Text(), "\t", strings.Repeat(" ", opts.TabWidth))
		content := strings.TrimSpace(raw)
		if content == "" || strings.HasPrefix(content, "#") {
			continue
		}
		indent := len(raw) - len(strings.TrimLeft(raw, " "))

		if len(stack) == 0 {
			if indent != 0 {
				return Map{}, errs.New(errs.ErrCodeInvalidMap, "line %d: thesis must not be indented", lineNo)
			}
			id := newID("", content)
			m.Title = content
			m.Nodes = append(m.Nodes, Root(id, content))
			stack = append(stack, id)
			continue
		}

		if indent == 0 {
			return Map{}, errs.New(errs.ErrCodeInvalidMap, "line %d: only one unindented thesis is allowed", lineNo)
		}
		if unit == 0 {
			unit = indent
		}
		if indent%unit != 0 {
			return Map{}, errs.New(errs.ErrCodeInvalidMap, "line %d: indentation %d is not a multiple of %d", lineNo, indent, unit)
		}
		depth := indent / unit
		if depth > len(stack) {
			return Map{}, errs.New(errs.ErrCodeInvalidMap, "line %d: indented more than one level below its parent", lineNo)
		}

		polarity, strength, statement, err := parseOutlineItem(content)
		if err != nil {
			return Map{}, errs.Wrap(errs.ErrCodeInvalidMap, err, "line %d", lineNo)
		}

		stack = stack[:depth]
		parent := stack[depth-1]
		id := newID(parent, statement)
		n := Node{ID: id, ParentID: Ref(parent), Statement: statement, Polarity: polarity}
		if strength != nil {
			n.Strength = strength
		}
		m.Nodes = append(m.Nodes, n)
		stack = append(stack, id)
	}
	if err := sc.Err(); err != nil {
		return Map{}, err
	}
	if len(m.Nodes) == 0 {
		return Map{}, errs.New(errs.ErrCodeInvalidMap, "outline is empty")
	}
	return m, nil
}

// parseOutlineItem splits "+ [80] statement" into its parts.
func parseOutlineItem(s string) (Polarity, *int, string, error) {
	var p Polarity
	switch s[0] {
	case markerTailwind:
		p = Tailwind
	case markerHeadwind:
		p = Headwind
	case markerNeutral, markerBullet:
		p = Neutral
	default:
		return "", nil, "", errs.New(errs.ErrCodeInvalidPolarity, "missing marker (want +, -, ~ or *) in %q", s)
	}
	rest := strings.TrimSpace(s[1:])

	var strength *int
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, "", errs.New(errs.ErrCodeInvalidStrength, "unterminated strength in %q", s)
		}
		v, err := strconv.Atoi(strings.TrimSpace(rest[1:end]))
		if err != nil {
			return "", nil, "", errs.Wrap(errs.ErrCodeInvalidStrength, err, "strength in %q", s)
		}
		if err := errs.ValidateStrength(v, MaxStrength); err != nil {
			return "", nil, "", err
		}
		strength = Ref(v)
		rest = strings.TrimSpace(rest[end+1:])
	}
	return p, strength, rest, nil
}
