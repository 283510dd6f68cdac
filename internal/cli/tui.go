package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pagerank/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// SampleListModel - Interactive sample selection
// =============================================================================

// SampleListModel is the bubbletea model for picking a built-in sample.
type SampleListModel struct {
	Samples  []graph.SampleInfo
	Cursor   int
	Selected *graph.SampleInfo

	sizes [][2]int // node and edge count per sample
}

// NewSampleListModel creates a new sample list model.
func NewSampleListModel(samples []graph.SampleInfo) SampleListModel {
	sizes := make([][2]int, len(samples))
	for i, s := range samples {
		g := s.Build()
		sizes[i] = [2]int{g.NodeCount(), g.EdgeCount()}
	}
	return SampleListModel{Samples: samples, sizes: sizes}
}

func (m SampleListModel) Init() tea.Cmd {
	return nil
}

func (m SampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Samples)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Samples) == 0 {
				return m, tea.Quit
			}
			m.Selected = &m.Samples[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SampleListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Sample Graph"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ rank  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Samples))
	for i, s := range m.Samples {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, s.Name, strconv.Itoa(m.sizes[i][0]), strconv.Itoa(m.sizes[i][1]), s.Description}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Sample", "Nodes", "Edges", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			if col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// EdgeEditorModel - Interactive edge entry
// =============================================================================

// EdgeEditorModel collects "source destination" lines into a graph; a line
// prefixed with "-" removes that edge. A malformed line is rejected with a
// message and the prompt stays open, so the graph only ever holds edges
// that parsed. The editor works on a copy of the graph it was given.
type EdgeEditorModel struct {
	Graph     *graph.Graph
	Added     []graph.Edge // edges new to the graph
	Removed   []graph.Edge // edges dropped from the original graph
	Done      bool
	Cancelled bool

	input  string
	errMsg string
}

// NewEdgeEditorModel starts an editor on a copy of g. A nil g starts empty.
func NewEdgeEditorModel(g *graph.Graph) EdgeEditorModel {
	if g == nil {
		return EdgeEditorModel{Graph: graph.New()}
	}
	return EdgeEditorModel{Graph: g.Clone()}
}

func (m EdgeEditorModel) Init() tea.Cmd {
	return nil
}

func (m EdgeEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Cancelled = true
		return m, tea.Quit
	case tea.KeyCtrlD:
		m.Done = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

// submit handles one entered line.
func (m EdgeEditorModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	m.input = ""

	switch {
	case line == "":
		return m, nil
	case strings.EqualFold(line, "done"):
		m.Done = true
		return m, tea.Quit
	}

	remove := strings.HasPrefix(line, "-")
	if remove {
		line = strings.TrimSpace(line[1:])
	}
	e, err := graph.ParseEdgeLine(line)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""

	switch {
	case remove && !m.Graph.HasEdge(e.From, e.To):
		m.errMsg = fmt.Sprintf("no edge %s to remove", e)
	case remove:
		m.Graph.RemoveEdge(e.From, e.To)
		if i := slices.Index(m.Added, e); i >= 0 {
			m.Added = slices.Delete(m.Added, i, i+1)
		} else {
			m.Removed = append(m.Removed, e)
		}
	case m.Graph.HasEdge(e.From, e.To):
		// Duplicates collapse.
	default:
		if err := m.Graph.Link(e.From, e.To); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if i := slices.Index(m.Removed, e); i >= 0 {
			m.Removed = slices.Delete(m.Removed, i, i+1)
		} else {
			m.Added = append(m.Added, e)
		}
	}
	return m, nil
}

func (m EdgeEditorModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Edit Graph"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("enter edges as \"source destination\"  ·  \"-source destination\" removes  ·  done or ctrl+d to finish  ·  esc to cancel"))
	b.WriteString("\n\n")

	const shown = 8
	start := max(0, len(m.Added)-shown)
	for _, e := range m.Added[start:] {
		b.WriteString("  " + styleIconSuccess.Render(iconSuccess) + " " + styleValue.Render(e.String()) + "\n")
	}
	for _, e := range m.Removed {
		b.WriteString("  " + listErrorStyle.Render("-") + " " + listDimStyle.Render(e.String()) + "\n")
	}
	if len(m.Added) > 0 || len(m.Removed) > 0 {
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("  " + listErrorStyle.Render(iconError+" "+m.errMsg) + "\n")
	}

	fmt.Fprintf(&b, "%s %s%s\n", styleHighlight.Render(iconInfo), m.input, listDimStyle.Render("█"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d nodes · %d edges", m.Graph.NodeCount(), m.Graph.EdgeCount())))
	return b.String()
}
