// Package facade exposes the two JSON request/response entry points that
// front the tree-inference pipeline: compute_tree and
// compute_distance_matrix. This is Component E — the only package in this
// module that parses untrusted input, dispatches to A/B/C/D, and never
// lets a panic or Go error type escape across the boundary: every outcome
// is a JSON envelope.
package facade

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/cgmlst/grapetree/arborescence"
	"github.com/cgmlst/grapetree/distance"
	"github.com/cgmlst/grapetree/edge"
	"github.com/cgmlst/grapetree/mstree"
	"github.com/cgmlst/grapetree/newick"
	"github.com/cgmlst/grapetree/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grapetree_requests_total",
		Help: "Total façade requests by operation and result",
	}, []string{"operation", "result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grapetree_request_duration_seconds",
		Help:    "Façade request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// ErrUnknownMethod is returned when method is neither "MSTree" nor
// "MSTreeV2". "NJ" is deliberately not a member of this set: it is
// accepted syntactically by Request but always rejected here.
var ErrUnknownMethod = errors.New("grapetree: unknown method")

// ErrUnknownMatrixType is returned for a matrix_type other than
// "symmetric" or "asymmetric".
var ErrUnknownMatrixType = errors.New("grapetree: unknown matrix_type")

// Request is the wire request shape shared by compute_tree and
// compute_distance_matrix.
type Request struct {
	Strains        []string `json:"strains"`
	Profiles       [][]int  `json:"profiles"`
	Method         string   `json:"method,omitempty"`
	MatrixType     string   `json:"matrix_type"`
	MissingHandler int      `json:"missing_handler"`
	Heuristic      string   `json:"heuristic,omitempty"`
}

// EdgeView is an edge enriched with the strain names of its endpoints, the
// shape the wire edge list publishes.
type EdgeView struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	FromName string  `json:"from_name"`
	ToName   string  `json:"to_name"`
	Distance float64 `json:"distance"`
}

// TreeResponse is the compute_tree success/failure envelope.
type TreeResponse struct {
	Success bool       `json:"success"`
	Newick  string     `json:"newick,omitempty"`
	Edges   []EdgeView `json:"edges,omitempty"`
	NNodes  int        `json:"n_nodes,omitempty"`
	NEdges  int        `json:"n_edges,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// MatrixResponse is the compute_distance_matrix success/failure envelope.
type MatrixResponse struct {
	Success     bool        `json:"success"`
	Matrix      [][]float64 `json:"matrix,omitempty"`
	StrainNames []string    `json:"strain_names,omitempty"`
	NStrains    int         `json:"n_strains,omitempty"`
	Error       string      `json:"error"`
}

// ComputeTree parses requestJSON, builds a tree with the requested
// method/matrix_type/missing_handler/heuristic, and returns the rendered
// response envelope. There is no Go error return: every failure is carried
// inside the envelope itself, with Success false and Error set.
func ComputeTree(logger *zap.Logger, requestJSON []byte) TreeResponse {
	start := time.Now()
	const op = "compute_tree"

	resp := computeTree(logger, requestJSON)

	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	result := "ok"
	if !resp.Success {
		result = "error"
	}
	requestTotal.WithLabelValues(op, result).Inc()

	return resp
}

func computeTree(logger *zap.Logger, requestJSON []byte) TreeResponse {
	var req Request
	if err := json.Unmarshal(requestJSON, &req); err != nil {
		logger.Warn("malformed request", zap.Error(err))
		return TreeResponse{Success: false, Error: "malformed input: " + err.Error()}
	}

	data := &profile.Data{StrainNames: req.Strains, Profiles: req.Profiles}
	if err := data.Validate(); err != nil {
		logger.Warn("invalid profile batch", zap.Error(err))
		return TreeResponse{Success: false, Error: "malformed input: " + err.Error()}
	}

	matrix, err := buildMatrix(data, req.MatrixType, req.MissingHandler)
	if err != nil {
		logger.Warn("invalid matrix parameters", zap.Error(err))
		return TreeResponse{Success: false, Error: "parameter out of range: " + err.Error()}
	}

	edges, err := buildTree(matrix, req.Method, req.Heuristic)
	if err != nil {
		logger.Warn("tree construction failed", zap.Error(err), zap.String("method", req.Method))
		return TreeResponse{Success: false, Error: errorKind(err) + err.Error()}
	}

	tree := newick.Format(edges, data.StrainNames)

	logger.Info("tree computed",
		zap.Int("n_nodes", data.NStrains()),
		zap.Int("n_edges", len(edges)),
		zap.String("method", req.Method))

	return TreeResponse{
		Success: true,
		Newick:  tree,
		Edges:   toEdgeViews(edges, data.StrainNames),
		NNodes:  data.NStrains(),
		NEdges:  len(edges),
	}
}

// ComputeDistanceMatrix parses requestJSON and returns the rendered
// pairwise distance matrix envelope.
func ComputeDistanceMatrix(logger *zap.Logger, requestJSON []byte) MatrixResponse {
	start := time.Now()
	const op = "compute_distance_matrix"

	resp := computeDistanceMatrix(logger, requestJSON)

	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	result := "ok"
	if !resp.Success {
		result = "error"
	}
	requestTotal.WithLabelValues(op, result).Inc()

	return resp
}

func computeDistanceMatrix(logger *zap.Logger, requestJSON []byte) MatrixResponse {
	var req Request
	if err := json.Unmarshal(requestJSON, &req); err != nil {
		logger.Warn("malformed request", zap.Error(err))
		return MatrixResponse{Success: false, Error: "malformed input: " + err.Error()}
	}

	data := &profile.Data{StrainNames: req.Strains, Profiles: req.Profiles}
	if err := data.Validate(); err != nil {
		logger.Warn("invalid profile batch", zap.Error(err))
		return MatrixResponse{Success: false, Error: "malformed input: " + err.Error()}
	}

	matrix, err := buildMatrix(data, req.MatrixType, req.MissingHandler)
	if err != nil {
		logger.Warn("invalid matrix parameters", zap.Error(err))
		return MatrixResponse{Success: false, Error: "parameter out of range: " + err.Error()}
	}

	logger.Info("distance matrix computed", zap.Int("n_strains", data.NStrains()))

	return MatrixResponse{
		Success:     true,
		Matrix:      matrix.Rows(),
		StrainNames: data.StrainNames,
		NStrains:    data.NStrains(),
	}
}

// buildMatrix dispatches Component A by matrix_type/missing_handler.
func buildMatrix(data *profile.Data, matrixType string, handler int) (distance.Matrix, error) {
	h := distance.MissingHandler(handler)
	if !distance.ValidHandler(h) {
		return distance.Matrix{}, distance.ErrUnknownHandler
	}

	switch matrixType {
	case "symmetric":
		return distance.Symmetric(data, h)
	case "asymmetric":
		return distance.Asymmetric(data), nil
	default:
		return distance.Matrix{}, ErrUnknownMatrixType
	}
}

// buildTree dispatches Component B or C by method. "NJ" is syntactically
// well-formed but always resolves to ErrUnknownMethod here.
func buildTree(matrix distance.Matrix, method, heuristicName string) ([]edge.Edge, error) {
	switch method {
	case "MSTree":
		heuristic, err := parseHeuristic(heuristicName)
		if err != nil {
			return nil, err
		}
		return mstree.Compute(matrix, heuristic)
	case "MSTreeV2":
		return arborescence.Compute(matrix)
	default:
		return nil, ErrUnknownMethod
	}
}

func parseHeuristic(name string) (mstree.Heuristic, error) {
	switch name {
	case "eBurst", "":
		return mstree.EBurst, nil
	case "harmonic":
		return mstree.Harmonic, nil
	default:
		return 0, mstree.ErrUnknownHeuristic
	}
}

// toEdgeViews enriches an edge list with endpoint strain names.
func toEdgeViews(edges []edge.Edge, names []string) []EdgeView {
	views := make([]EdgeView, len(edges))
	for i, e := range edges {
		views[i] = EdgeView{
			From:     e.From,
			To:       e.To,
			FromName: names[e.From],
			ToName:   names[e.To],
			Distance: e.Distance,
		}
	}
	return views
}

// errorKind prefixes a builder error with a greppable classification. Every
// sentinel error this package or its dependencies return is a parameter- or
// malformed-input-class error; anything else is treated as an internal
// computation failure that should not occur with the algorithms as
// specified.
func errorKind(err error) string {
	switch {
	case errors.Is(err, mstree.ErrEmptyMatrix), errors.Is(err, arborescence.ErrEmptyMatrix):
		return "malformed input: "
	case errors.Is(err, mstree.ErrUnknownHeuristic), errors.Is(err, ErrUnknownMethod):
		return "parameter out of range: "
	default:
		return "computation failure: "
	}
}
