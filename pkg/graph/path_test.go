package graph

import (
	"slices"
	"testing"

	apperr "github.com/powergraph/adminviz/pkg/errors"
)

func buildPath(t *testing.T, opts BuildOptions, nodes ...Node) Path {
	t.Helper()
	b := NewBuilder(opts)
	for _, n := range nodes {
		b.Add(n)
	}
	_, p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return p
}

func TestPathByDistance(t *testing.T) {
	tests := []struct {
		name      string
		distances []int
		want      Path
	}{
		{"Empty", nil, nil},
		{"Single", []int{0}, Path{"n0"}},
		{"Monotonic", []int{0, 1, 2}, Path{"n0", "n1", "n2"}},
		{"SkipsBreaks", []int{0, 5, 1, 2, 9, 3}, Path{"n0", "n2", "n3", "n5"}},
		{"NoRoot", []int{1, 2, 3}, nil},
		{"RepeatedDepth", []int{0, 1, 1, 2}, Path{"n0", "n1", "n3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nodes []Node
			for i, d := range tt.distances {
				nodes = append(nodes, Node{Name: "n" + string(rune('0'+i)), Distance: d})
			}
			got := buildPath(t, BuildOptions{}, nodes...)
			if !slices.Equal(got, tt.want) {
				t.Errorf("path = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathByDistanceUsesInputOrder(t *testing.T) {
	// "a" is overwritten later; the path still reflects the row order.
	p := buildPath(t, BuildOptions{Mode: PathByDistance},
		Node{Name: "a", Distance: 0},
		Node{Name: "b", Distance: 1},
		Node{Name: "a", Distance: 7},
		Node{Name: "c", Distance: 2},
	)
	if want := (Path{"a", "b", "c"}); !slices.Equal(p, want) {
		t.Errorf("path = %v, want %v", p, want)
	}
}

func TestPathByPredecessor(t *testing.T) {
	rows := []Node{
		{Name: "U1", IsUser: true, Distance: 2, Predecessor: "W1"},
		{Name: "S", Distance: 0, Neighbors: []string{"W1", "W2"}},
		{Name: "W2", Distance: 1, Predecessor: "S"},
		{Name: "W1", Distance: 1, Predecessor: "S", Neighbors: []string{"U1"}},
	}

	p := buildPath(t, BuildOptions{Mode: PathByPredecessor}, rows...)
	if want := (Path{"S", "W1", "U1"}); !slices.Equal(p, want) {
		t.Errorf("path = %v, want %v", p, want)
	}

	p = buildPath(t, BuildOptions{Mode: PathByPredecessor, Target: "W2"}, rows...)
	if want := (Path{"S", "W2"}); !slices.Equal(p, want) {
		t.Errorf("path to W2 = %v, want %v", p, want)
	}
}

func TestPathByPredecessorErrors(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		placeholders bool
		rows         []Node
		code         apperr.Code
	}{
		{
			name:   "UnknownTarget",
			target: "nobody",
			rows:   []Node{{Name: "S"}},
			code:   apperr.ErrCodeUnresolvedNode,
		},
		{
			name: "MissingPredecessor",
			rows: []Node{{Name: "S"}, {Name: "U", Distance: 1, Predecessor: "gone"}},
			code: apperr.ErrCodeBrokenPath,
		},
		{
			name:         "PredecessorOnlyReferencedAsNeighbor",
			placeholders: true,
			rows: []Node{
				{Name: "S", Neighbors: []string{"X"}},
				{Name: "U1", IsUser: true, Distance: 1, Predecessor: "X"},
			},
			code: apperr.ErrCodeBrokenPath,
		},
		{
			name:         "PlaceholderTarget",
			target:       "X",
			placeholders: true,
			rows:         []Node{{Name: "S", Neighbors: []string{"X"}}},
			code:         apperr.ErrCodeUnresolvedNode,
		},
		{
			name: "Cycle",
			rows: []Node{
				{Name: "A", Distance: 2, Predecessor: "B"},
				{Name: "B", Distance: 1, Predecessor: "A"},
			},
			code: apperr.ErrCodeBrokenPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(BuildOptions{Mode: PathByPredecessor, Target: tt.target, Placeholders: tt.placeholders})
			for _, n := range tt.rows {
				b.Add(n)
			}
			_, _, err := b.Build()
			if !apperr.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestPathByPredecessorWithPlaceholders(t *testing.T) {
	b := NewBuilder(BuildOptions{Mode: PathByPredecessor, Placeholders: true})
	b.Add(Node{Name: "S", Neighbors: []string{"W1", "GHOST"}})
	b.Add(Node{Name: "W1", Distance: 1, Predecessor: "S"})
	b.Add(Node{Name: "U1", IsUser: true, Distance: 2, Predecessor: "W1"})

	g, p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if want := (Path{"S", "W1", "U1"}); !slices.Equal(p, want) {
		t.Errorf("path = %v, want %v", p, want)
	}
	if n, ok := g.Node("GHOST"); !ok || !n.Placeholder {
		t.Errorf("GHOST placeholder missing: %+v", n)
	}
}

func TestPathByPredecessorEmptyGraph(t *testing.T) {
	p := buildPath(t, BuildOptions{Mode: PathByPredecessor})
	if len(p) != 0 {
		t.Errorf("path = %v, want empty", p)
	}
}

func TestPathHops(t *testing.T) {
	if hops := (Path{}).Hops(); hops != nil {
		t.Errorf("empty path hops = %v, want nil", hops)
	}
	if hops := (Path{"a"}).Hops(); hops != nil {
		t.Errorf("single node hops = %v, want nil", hops)
	}
	want := []Edge{{"a", "b"}, {"b", "c"}}
	if hops := (Path{"a", "b", "c"}).Hops(); !slices.Equal(hops, want) {
		t.Errorf("hops = %v, want %v", hops, want)
	}
}

func TestPathString(t *testing.T) {
	p := Path{"S", "W1", "U1"}
	if got := p.String(); got != "S → W1 → U1" {
		t.Errorf("String() = %q", got)
	}
	if !p.Contains("W1") || p.Contains("W2") {
		t.Error("Contains() mismatch")
	}
}

func TestParsePathMode(t *testing.T) {
	tests := []struct {
		in      string
		want    PathMode
		wantErr bool
	}{
		{"", PathByDistance, false},
		{"distance", PathByDistance, false},
		{"Predecessor", PathByPredecessor, false},
		{"bfs", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePathMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePathMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePathMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if tt.wantErr && !apperr.Is(err, apperr.ErrCodeInvalidPathMode) {
			t.Errorf("ParsePathMode(%q) error code = %v", tt.in, apperr.GetCode(err))
		}
	}
}
