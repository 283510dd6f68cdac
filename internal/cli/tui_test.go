package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/pagerank/pkg/graph"
)

// typeLine feeds a line of text followed by enter into the editor.
func typeLine(m EdgeEditorModel, line string) (EdgeEditorModel, tea.Cmd) {
	for _, r := range line {
		var next tea.Model
		if r == ' ' {
			next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		} else {
			next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
		m = next.(EdgeEditorModel)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(EdgeEditorModel), cmd
}

func TestEdgeEditorAddsEdges(t *testing.T) {
	m := NewEdgeEditorModel(nil)

	m, _ = typeLine(m, "A B")
	m, _ = typeLine(m, "  B   C  ")
	m, _ = typeLine(m, "A B") // duplicate collapses

	if m.Graph.NodeCount() != 3 || m.Graph.EdgeCount() != 2 {
		t.Errorf("graph = %d nodes, %d edges; want 3, 2", m.Graph.NodeCount(), m.Graph.EdgeCount())
	}
	if len(m.Added) != 2 {
		t.Errorf("added = %v, want the two distinct edges", m.Added)
	}
	if m.errMsg != "" {
		t.Errorf("unexpected error message %q", m.errMsg)
	}
}

func TestEdgeEditorRejectsMalformed(t *testing.T) {
	tests := []string{"A", "A B C", "lonely-token"}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			m := NewEdgeEditorModel(nil)
			m, cmd := typeLine(m, line)

			if cmd != nil {
				t.Error("malformed line should not end the editor")
			}
			if m.errMsg == "" {
				t.Error("expected an error message")
			}
			if m.Graph.NodeCount() != 0 || m.Graph.EdgeCount() != 0 {
				t.Error("malformed line must not change the graph")
			}
			if m.input != "" {
				t.Error("input should be cleared for the next attempt")
			}

			// The next good line clears the message.
			m, _ = typeLine(m, "X Y")
			if m.errMsg != "" || m.Graph.EdgeCount() != 1 {
				t.Errorf("recovery failed: err=%q edges=%d", m.errMsg, m.Graph.EdgeCount())
			}
		})
	}
}

func TestEdgeEditorFinish(t *testing.T) {
	m := NewEdgeEditorModel(nil)
	m, _ = typeLine(m, "A B")
	m, cmd := typeLine(m, "DONE")
	if !m.Done || cmd == nil {
		t.Error("'done' should finish the editor")
	}

	m = NewEdgeEditorModel(nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if !next.(EdgeEditorModel).Done || cmd == nil {
		t.Error("ctrl+d should finish the editor")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(EdgeEditorModel).Cancelled {
		t.Error("esc should cancel the editor")
	}
}

func TestEdgeEditorBackspaceAndBlank(t *testing.T) {
	m := NewEdgeEditorModel(nil)
	for _, r := range "A Bx" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(EdgeEditorModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(EdgeEditorModel)
	if m.input != "A B" {
		t.Fatalf("input = %q, want %q", m.input, "A B")
	}

	m, _ = typeLine(NewEdgeEditorModel(nil), "")
	if m.errMsg != "" || m.Done {
		t.Error("blank line should be ignored")
	}
}

func TestEdgeEditorExtendsGraph(t *testing.T) {
	g := graph.Default()
	m := NewEdgeEditorModel(g)
	m, _ = typeLine(m, "D E")

	if m.Graph.NodeCount() != 5 || m.Graph.EdgeCount() != 7 {
		t.Errorf("graph = %d nodes, %d edges; want 5, 7", m.Graph.NodeCount(), m.Graph.EdgeCount())
	}
	if !strings.Contains(m.View(), "D -> E") {
		t.Error("view should list the added edge")
	}
}

func TestEdgeEditorRemovesEdges(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantEdges   int
		wantAdded   int
		wantRemoved int
		wantErr     bool
	}{
		{"remove existing", []string{"-C A"}, 5, 0, 1, false},
		{"remove with space", []string{"- A B"}, 5, 0, 1, false},
		{"remove missing", []string{"-B A"}, 6, 0, 0, true},
		{"undo an added edge", []string{"D E", "-D E"}, 6, 0, 0, false},
		{"re-add a removed edge", []string{"-A B", "A B"}, 6, 0, 0, false},
		{"existing edge is not added", []string{"A B"}, 6, 0, 0, false},
		{"malformed removal", []string{"-A"}, 6, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewEdgeEditorModel(graph.Default())
			for _, line := range tt.lines {
				m, _ = typeLine(m, line)
			}
			if got := m.Graph.EdgeCount(); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
			if len(m.Added) != tt.wantAdded || len(m.Removed) != tt.wantRemoved {
				t.Errorf("added %v removed %v, want %d/%d", m.Added, m.Removed, tt.wantAdded, tt.wantRemoved)
			}
			if (m.errMsg != "") != tt.wantErr {
				t.Errorf("errMsg = %q, wantErr %v", m.errMsg, tt.wantErr)
			}
		})
	}
}

func TestEdgeEditorLeavesInputGraph(t *testing.T) {
	g := graph.Default()
	m := NewEdgeEditorModel(g)
	m, _ = typeLine(m, "-A B")
	m, _ = typeLine(m, "D E")

	if g.EdgeCount() != 6 || g.HasNode("E") || !g.HasEdge("A", "B") {
		t.Error("editing must not touch the graph it started from")
	}
	if !strings.Contains(m.View(), "A -> B") {
		t.Error("view should list the removed edge")
	}
}

func TestSampleListModel(t *testing.T) {
	m := NewSampleListModel(graph.Samples())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := next.(SampleListModel)
	if cmd == nil || got.Selected == nil {
		t.Fatal("enter should select and quit")
	}
	if got.Selected.Name != graph.SampleChain {
		t.Errorf("selected %q, want %q", got.Selected.Name, graph.SampleChain)
	}
	if !strings.Contains(got.View(), "complete") {
		t.Error("view should list every sample")
	}
}

func TestSampleListModelQuit(t *testing.T) {
	m := NewSampleListModel(graph.Samples())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || next.(SampleListModel).Selected != nil {
		t.Error("q should quit without a selection")
	}
}
