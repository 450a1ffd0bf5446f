package graph

import (
	"slices"
	"strings"

	apperr "github.com/powergraph/adminviz/pkg/errors"
)

// PathMode selects how the highlighted path is reconstructed.
type PathMode string

const (
	// PathByDistance keeps the rows whose distances extend the run 0,1,2,...
	// in input order. This depends on the input being in traversal order.
	PathByDistance PathMode = "distance"

	// PathByPredecessor walks predecessor links back from the target.
	PathByPredecessor PathMode = "predecessor"
)

// DefaultPathMode is the reconstruction used when none is given.
const DefaultPathMode = PathByDistance

// ParsePathMode validates a path mode string. Empty selects [DefaultPathMode].
func ParsePathMode(s string) (PathMode, error) {
	switch PathMode(strings.ToLower(s)) {
	case "":
		return DefaultPathMode, nil
	case PathByDistance:
		return PathByDistance, nil
	case PathByPredecessor:
		return PathByPredecessor, nil
	default:
		return "", apperr.New(apperr.ErrCodeInvalidPathMode, "invalid path mode: %q (must be 'distance' or 'predecessor')", s)
	}
}

// Path is the ordered sequence of node names forming the overlay.
type Path []string

// Hops returns consecutive pairs of the path. Paths shorter than two nodes
// have no hops.
func (p Path) Hops() []Edge {
	if len(p) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		out = append(out, Edge{From: p[i], To: p[i+1]})
	}
	return out
}

// Contains reports whether name is on the path.
func (p Path) Contains(name string) bool { return slices.Contains(p, name) }

// String joins the path with arrows.
func (p Path) String() string { return strings.Join(p, " → ") }

// distanceRun tracks the running 0,1,2,... distance sequence.
type distanceRun struct {
	prev int
	path Path
}

func newDistanceRun() *distanceRun { return &distanceRun{prev: -1} }

func (r *distanceRun) result() Path {
	if r == nil {
		return nil
	}
	return r.path
}

func (r *distanceRun) observe(n Node) {
	if n.Distance == r.prev+1 {
		r.path = append(r.path, n.Name)
		r.prev = n.Distance
	}
}

// predecessorChain picks a target and follows predecessor links back to the root.
type predecessorChain struct {
	target   string // explicit target, empty for the deepest row
	deepest  string
	maxDepth int
}

func newPredecessorChain(target string) *predecessorChain {
	return &predecessorChain{target: target, maxDepth: -1}
}

func (c *predecessorChain) observe(n Node) {
	if n.Distance > c.maxDepth {
		c.maxDepth = n.Distance
		c.deepest = n.Name
	}
}

func (c *predecessorChain) walk(g *Graph) (Path, error) {
	target := c.target
	if target == "" {
		target = c.deepest
	}
	if target == "" {
		return nil, nil
	}
	n, ok := g.Node(target)
	if !ok || n.Placeholder {
		return nil, apperr.New(apperr.ErrCodeUnresolvedNode, "target %q has no record", target)
	}

	seen := map[string]bool{target: true}
	path := Path{target}
	for n.Predecessor != "" {
		pred := n.Predecessor
		if seen[pred] {
			return nil, apperr.New(apperr.ErrCodeBrokenPath, "predecessor cycle at %q", pred)
		}
		next, ok := g.Node(pred)
		if !ok || next.Placeholder {
			return nil, apperr.New(apperr.ErrCodeBrokenPath, "predecessor %q of %q has no record", pred, n.Name)
		}
		seen[pred] = true
		path = append(path, pred)
		n = next
	}
	slices.Reverse(path)
	return path, nil
}
