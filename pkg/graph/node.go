package graph

// Shapes used for node rendering.
const (
	ShapeRoundRectangle = "roundrectangle"
	ShapeRectangle      = "rectangle"
)

// Category colors.
const (
	ColorUser = "#17e625"
	ColorHost = "#e67873"
)

// Category distinguishes user principals from hosts.
type Category int

const (
	// CategoryHost is a workstation or server.
	CategoryHost Category = iota
	// CategoryUser is a user principal.
	CategoryUser
)

// CategoryOf returns the category for the IsUser flag of a record.
func CategoryOf(isUser bool) Category {
	if isUser {
		return CategoryUser
	}
	return CategoryHost
}

// Shape returns the diagram shape for the category.
func (c Category) Shape() string {
	if c == CategoryUser {
		return ShapeRoundRectangle
	}
	return ShapeRectangle
}

// Color returns the fill color for the category.
// Structural edges pointing at a node are drawn in that node's color.
func (c Category) Color() string {
	if c == CategoryUser {
		return ColorUser
	}
	return ColorHost
}

// String returns "user" or "host".
func (c Category) String() string {
	if c == CategoryUser {
		return "user"
	}
	return "host"
}

// Node is a single record of the traversal table.
//
// Shape and color are not stored; they are derived from IsUser so that no
// other state can change them.
type Node struct {
	Name        string   // Unique identifier and display label
	IsUser      bool     // User principal (true) or host (false)
	Neighbors   []string // Referenced node names, in input order
	Distance    int      // BFS depth from the traversal root
	Visited     bool     // Visited flag as recorded by the traversal
	Predecessor string   // Node this one was reached from (empty for the root)

	// Placeholder marks a node synthesized for a neighbor reference that
	// never appeared as its own record.
	Placeholder bool
}

// Category returns the node's category.
func (n Node) Category() Category { return CategoryOf(n.IsUser) }

// Shape returns the node's diagram shape.
func (n Node) Shape() string { return n.Category().Shape() }

// Color returns the node's fill color.
func (n Node) Color() string { return n.Category().Color() }

// Edge is a structural relationship from a node to one of its neighbors.
type Edge struct {
	From string
	To   string
}
