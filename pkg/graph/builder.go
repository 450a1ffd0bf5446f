package graph

// BuildOptions configures a [Builder].
type BuildOptions struct {
	// Mode selects the path reconstruction. Empty means [DefaultPathMode].
	Mode PathMode
	// Target is the final node of the path in [PathByPredecessor] mode.
	// When empty, the first row carrying the greatest distance is used.
	Target string
	// Placeholders synthesizes host records for neighbor references that
	// never appear as their own row instead of failing.
	Placeholders bool
}

// Builder accumulates records into a Graph and reconstructs the path in the
// same forward pass. Records must be added in input order.
type Builder struct {
	opts  BuildOptions
	graph *Graph
	run   *distanceRun
	chain *predecessorChain
	rows  int
}

// NewBuilder creates a Builder.
func NewBuilder(opts BuildOptions) *Builder {
	if opts.Mode == "" {
		opts.Mode = DefaultPathMode
	}
	b := &Builder{opts: opts, graph: New()}
	switch opts.Mode {
	case PathByPredecessor:
		b.chain = newPredecessorChain(opts.Target)
	default:
		b.run = newDistanceRun()
	}
	return b
}

// Add consumes one record.
func (b *Builder) Add(n Node) {
	b.rows++
	b.graph.Put(n)
	if b.run != nil {
		b.run.observe(n)
	}
	if b.chain != nil {
		b.chain.observe(n)
	}
}

// Rows returns the number of records consumed so far.
func (b *Builder) Rows() int { return b.rows }

// Build finishes the pass and returns the graph and the overlay path.
// Unresolved neighbor references are left in place unless placeholders are
// enabled; [Graph.Validate] reports them. The predecessor chain is walked
// over the recorded rows only, so a placeholder never completes a path.
func (b *Builder) Build() (*Graph, Path, error) {
	path := b.run.result()
	if b.chain != nil {
		var err error
		if path, err = b.chain.walk(b.graph); err != nil {
			return nil, nil, err
		}
	}

	if b.opts.Placeholders {
		b.graph.AddPlaceholders()
	}
	return b.graph, path, nil
}
