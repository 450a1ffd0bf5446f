package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/powergraph/adminviz/pkg/graph"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// maxNeighborsShown caps the neighbor column; the detail pane lists all.
const maxNeighborsShown = 3

type nodeListKeys struct {
	Up, Down, Top, Bottom key.Binding
	Detail, PathOnly      key.Binding
	Quit                  key.Binding
}

func (k nodeListKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Detail, k.PathOnly, k.Quit}
}

func (k nodeListKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.Detail, k.PathOnly, k.Quit}}
}

var defaultNodeListKeys = nodeListKeys{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Detail:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "neighbors")),
	PathOnly: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "path only")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// =============================================================================
// NodeListModel - Interactive node browser
// =============================================================================

// NodeListModel is the bubbletea model for browsing a traversal graph.
type NodeListModel struct {
	Title    string
	Nodes    []graph.Node
	Cursor   int
	Height   int
	Offset   int
	PathOnly bool // show only nodes on the path
	Detail   bool // show the neighbor pane for the current node

	steps   map[string]int // node name → 1-based position on the path
	visible []int          // indices into Nodes after filtering
	keys    nodeListKeys
	help    help.Model
}

// NewNodeListModel creates a node browser for g with path highlighted.
func NewNodeListModel(title string, g *graph.Graph, path graph.Path) NodeListModel {
	m := NodeListModel{
		Title:  title,
		Nodes:  g.Nodes(),
		Height: 15,
		steps:  make(map[string]int, len(path)),
		keys:   defaultNodeListKeys,
		help:   help.New(),
	}
	for i, name := range path {
		if _, ok := m.steps[name]; !ok {
			m.steps[name] = i + 1
		}
	}
	m.filter()
	return m
}

func (m *NodeListModel) filter() {
	m.visible = nil
	for i, n := range m.Nodes {
		if m.PathOnly && m.steps[n.Name] == 0 {
			continue
		}
		m.visible = append(m.visible, i)
	}
	m.Cursor = 0
	m.Offset = 0
}

// Current returns the node under the cursor.
func (m NodeListModel) Current() (graph.Node, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.visible) {
		return graph.Node{}, false
	}
	return m.Nodes[m.visible[m.Cursor]], true
}

// Visible returns the number of rows after filtering.
func (m NodeListModel) Visible() int { return len(m.visible) }

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Top):
			m.move(-len(m.visible))
		case key.Matches(msg, m.keys.Bottom):
			m.move(len(m.visible))
		case key.Matches(msg, m.keys.Detail):
			m.Detail = !m.Detail
		case key.Matches(msg, m.keys.PathOnly):
			m.PathOnly = !m.PathOnly
			m.filter()
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m *NodeListModel) move(delta int) {
	m.Cursor = max(0, min(m.Cursor+delta, len(m.visible)-1))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(listDimStyle.Render("  no nodes"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.visible))
	b.WriteString(m.table(m.visible[m.Offset:end], m.Offset))
	b.WriteString("\n\n")

	filter := ""
	if m.PathOnly {
		filter = " path only"
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]%s", m.Cursor+1, len(m.visible), filter)))

	if n, ok := m.Current(); ok && m.Detail {
		b.WriteString("\n\n")
		b.WriteString(m.detail(n))
	}
	return b.String()
}

// table renders the rows for the node indices in idx. offset is the
// position of idx[0] in the visible list, used to mark the cursor row.
// A negative offset disables the cursor.
func (m NodeListModel) table(idx []int, offset int) string {
	rows := make([][]string, 0, len(idx))
	for i, ni := range idx {
		n := m.Nodes[ni]
		cursor := "  "
		if offset >= 0 && offset+i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			n.Name,
			n.Category().String(),
			strconv.Itoa(n.Distance),
			formatNeighbors(n.Neighbors),
			m.stepLabel(n.Name),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Kind", "Dist", "Neighbors", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if row < 0 || row >= len(idx) {
				return lipgloss.NewStyle()
			}
			n := m.Nodes[idx[row]]
			base := lipgloss.NewStyle()
			if offset >= 0 && offset+row == m.Cursor {
				base = base.Bold(true)
			}
			switch col {
			case 1, 2:
				if n.IsUser {
					return base.Foreground(colorGreen)
				}
				return base.Foreground(colorRed)
			case 5:
				return base.Foreground(colorBlue)
			case 3, 4:
				return base.Foreground(colorGray)
			}
			return base
		})
	return t.Render()
}

func (m NodeListModel) stepLabel(name string) string {
	if s := m.steps[name]; s > 0 {
		return "#" + strconv.Itoa(s)
	}
	return ""
}

func (m NodeListModel) detail(n graph.Node) string {
	var b strings.Builder
	style := styleHost
	if n.IsUser {
		style = styleUser
	}
	b.WriteString(style.Bold(true).Render(n.Name))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s · distance %d", n.Category(), n.Distance)))
	if n.Predecessor != "" {
		b.WriteString(listDimStyle.Render(" · from " + n.Predecessor))
	}
	if n.Placeholder {
		b.WriteString(StyleWarning.Render("  (placeholder)"))
	}
	b.WriteString("\n")

	if len(n.Neighbors) == 0 {
		b.WriteString(listDimStyle.Render("  no neighbors"))
		return b.String()
	}
	for _, nb := range n.Neighbors {
		line := "  " + iconArrow + " " + nb
		if m.steps[nb] > 0 && m.steps[n.Name] > 0 && m.steps[nb] == m.steps[n.Name]+1 {
			line = StylePath.Render(line + "  (path)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// =============================================================================
// Helpers
// =============================================================================

func formatNeighbors(names []string) string {
	switch {
	case len(names) == 0:
		return "—"
	case len(names) <= maxNeighborsShown:
		return strings.Join(names, ", ")
	default:
		return strings.Join(names[:maxNeighborsShown], ", ") +
			fmt.Sprintf(" +%d", len(names)-maxNeighborsShown)
	}
}

// renderNodeTable renders every node without the interactive chrome.
func renderNodeTable(g *graph.Graph, path graph.Path) string {
	m := NewNodeListModel("", g, path)
	return m.table(m.visible, -1)
}
