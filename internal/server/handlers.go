package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pagerank/pkg/buildinfo"
	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
	pkgio "github.com/matzehuels/pagerank/pkg/io"
	"github.com/matzehuels/pagerank/pkg/pagerank"
	"github.com/matzehuels/pagerank/pkg/pipeline"
)

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

type sampleResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Nodes       int    `json:"nodes"`
	Edges       int    `json:"edges"`
}

type rankResponse struct {
	RunID     string           `json:"run_id"`
	GraphHash string           `json:"graph_hash"`
	Nodes     int              `json:"nodes"`
	Edges     int              `json:"edges"`
	Rounds    int              `json:"rounds"`
	Converged bool             `json:"converged"`
	Delta     float64          `json:"delta"`
	Cached    bool             `json:"cached"`
	Scores    []pagerank.Score `json:"scores"`
}

// rankParams carries solver options as the client sent them. A nil field
// was not sent and takes the default; an explicit zero is validated as is.
type rankParams struct {
	Iterations *int     `json:"iterations,omitempty"`
	Damping    *float64 `json:"damping,omitempty"`
	Tolerance  *float64 `json:"tolerance,omitempty"`
	Workers    *int     `json:"workers,omitempty"`
	Top        *int     `json:"top,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	infos := graph.Samples()
	out := make([]sampleResponse, 0, len(infos))
	for _, info := range infos {
		g := info.Build()
		out = append(out, sampleResponse{
			Name:        info.Name,
			Description: info.Description,
			Nodes:       g.NodeCount(),
			Edges:       g.EdgeCount(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSampleRank(w http.ResponseWriter, r *http.Request) {
	params, err := paramsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	opts := pipeline.Options{Sample: chi.URLParam(r, "name")}
	s.rank(w, r, opts, params)
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	var params rankParams
	if err := json.Unmarshal(body, &params); err != nil {
		writeError(w, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}
	g, err := pkgio.ReadJSON(bytes.NewReader(body))
	if err != nil {
		writeError(w, err)
		return
	}

	s.rank(w, r, pipeline.Options{Graph: g}, params)
}

func (s *Server) rank(w http.ResponseWriter, r *http.Request, opts pipeline.Options, params rankParams) {
	if err := params.apply(&opts); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			s.logger.Error("rank failed", "source", opts.SourceLabel(), "error", err)
		}
		writeError(w, err)
		return
	}

	scores := result.Ranking.Ranked()
	if params.Top != nil {
		scores = result.Ranking.Top(*params.Top)
	}
	if scores == nil {
		scores = []pagerank.Score{}
	}

	writeJSON(w, http.StatusOK, rankResponse{
		RunID:     result.RunID,
		GraphHash: result.GraphHash,
		Nodes:     result.Stats.NodeCount,
		Edges:     result.Stats.EdgeCount,
		Rounds:    result.Ranking.Rounds,
		Converged: result.Ranking.Converged,
		Delta:     result.Ranking.Delta,
		Cached:    result.CacheInfo.RankHit,
		Scores:    scores,
	})
}

// apply validates the sent options against the solver defaults and copies
// them into opts. Validation happens here because the pipeline reads a
// zero as "unset".
func (p rankParams) apply(opts *pipeline.Options) error {
	solver := pagerank.DefaultOptions()
	if p.Iterations != nil {
		solver.Iterations = *p.Iterations
	}
	if p.Damping != nil {
		solver.Damping = *p.Damping
	}
	if p.Tolerance != nil {
		solver.Tolerance = *p.Tolerance
	}
	if p.Workers != nil {
		solver.Workers = *p.Workers
	}
	if err := solver.Validate(); err != nil {
		return err
	}
	if p.Top != nil && *p.Top <= 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "top must be positive, got %d", *p.Top)
	}

	opts.Iterations = solver.Iterations
	opts.Damping = solver.Damping
	opts.Tolerance = solver.Tolerance
	opts.Workers = solver.Workers
	return nil
}

func paramsFromQuery(q url.Values) (rankParams, error) {
	var p rankParams
	var err error
	if p.Iterations, err = queryInt(q, "iterations"); err != nil {
		return p, err
	}
	if p.Damping, err = queryFloat(q, "damping"); err != nil {
		return p, err
	}
	if p.Tolerance, err = queryFloat(q, "tolerance"); err != nil {
		return p, err
	}
	if p.Workers, err = queryInt(q, "workers"); err != nil {
		return p, err
	}
	if p.Top, err = queryInt(q, "top"); err != nil {
		return p, err
	}
	return p, nil
}

func queryInt(q url.Values, name string) (*int, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfiguration, err, "%s must be an integer", name)
	}
	return &v, nil
}

func queryFloat(q url.Values, name string) (*float64, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(q.Get(name), 64)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfiguration, err, "%s must be a number", name)
	}
	return &v, nil
}
