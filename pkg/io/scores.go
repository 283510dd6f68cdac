package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/pagerank"
)

type scoreReport struct {
	Rounds    int              `json:"rounds"`
	Converged bool             `json:"converged"`
	Delta     float64          `json:"delta"`
	Total     float64          `json:"total"`
	Scores    []pagerank.Score `json:"scores"`
}

// WriteScoresJSON writes the ranked scores with the run statistics.
func WriteScoresJSON(res *pagerank.Result, w io.Writer) error {
	out := scoreReport{
		Rounds:    res.Rounds,
		Converged: res.Converged,
		Delta:     res.Delta,
		Total:     res.Sum(),
		Scores:    res.Ranked(),
	}
	if out.Scores == nil {
		out.Scores = []pagerank.Score{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteScoresCSV writes a rank,node,score,percentage table, best first.
func WriteScoresCSV(res *pagerank.Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "node", "score", "percentage"}); err != nil {
		return err
	}
	for i, s := range res.Ranked() {
		rec := []string{
			strconv.Itoa(i + 1),
			s.ID,
			strconv.FormatFloat(s.Value, 'f', -1, 64),
			strconv.FormatFloat(s.Value*100, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportScores writes res to path as JSON (.json) or CSV (.csv).
func ExportScores(res *pagerank.Result, path string) error {
	var write func(*pagerank.Result, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteScoresJSON
	case ".csv":
		write = WriteScoresCSV
	default:
		return perrors.New(perrors.ErrCodeInvalidFormat, "unsupported score file %q (expected .json or .csv)", filepath.Base(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return write(res, f)
}
