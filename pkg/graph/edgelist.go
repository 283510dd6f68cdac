package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

// ErrMalformedEdge is returned for an edge line that is not exactly
// "source destination".
var ErrMalformedEdge = errors.New("malformed edge: use \"source destination\"")

// ParseEdgeLine parses a single "source destination" line.
// Leading and trailing whitespace is ignored; any other field count is
// ErrMalformedEdge. Node IDs are validated with [perrors.ValidateNodeID].
func ParseEdgeLine(line string) (Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Edge{}, fmt.Errorf("%w: %q", ErrMalformedEdge, strings.TrimSpace(line))
	}
	for _, id := range fields {
		if err := perrors.ValidateNodeID(id); err != nil {
			return Edge{}, err
		}
	}
	return Edge{From: fields[0], To: fields[1]}, nil
}

// ReadEdgeList builds a graph from newline separated "source destination"
// lines. Blank lines and lines starting with '#' are skipped. A single
// token on a line declares an isolated node.
//
// The first malformed line aborts the read; the error names its line
// number. ReadEdgeList does not close r.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	g := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if fields := strings.Fields(line); len(fields) == 1 {
			if err := perrors.ValidateNodeID(fields[0]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := g.EnsureNode(fields[0]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}
		e, err := ParseEdgeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := g.Link(e.From, e.To); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	return g, nil
}

// WriteEdgeList writes one "source destination" line per edge, followed by
// a line per isolated node so the list round-trips through ReadEdgeList.
func WriteEdgeList(g *Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.From, e.To); err != nil {
			return err
		}
	}
	for _, id := range g.Nodes() {
		if g.OutDegree(id) == 0 && g.InDegree(id) == 0 {
			if _, err := fmt.Fprintln(bw, id); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
