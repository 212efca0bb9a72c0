// Package server exposes step-wise shortest-path runs over HTTP.
//
// A client creates a run from a builtin scenario, then steps it one expansion
// at a time and fetches frames, the found path, or a Graphviz rendering of the
// current state. Every run is a driver.Driver, so concurrent requests against
// the same run are serialized by the driver itself.
//
// Routes:
//
//	GET    /healthz
//	GET    /scenarios
//	POST   /runs                     {"scenario": "demo", "start": 0, "end": 5}
//	GET    /runs/{id}                current frame
//	DELETE /runs/{id}
//	POST   /runs/{id}/step           step report and frame
//	POST   /runs/{id}/finish         final result and frame
//	POST   /runs/{id}/reset
//	GET    /runs/{id}/path
//	GET    /runs/{id}/dot            ?format=svg renders with Graphviz
//	PUT    /runs/{id}/nodes/{node}   {"x": 10, "y": 20}
//
// Errors are returned as {"error": "..."}.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/driver"
	"github.com/katalvlaran/dijkstraviz/geometry"
	"github.com/katalvlaran/dijkstraviz/render/dot"
	"github.com/katalvlaran/dijkstraviz/scenario"
)

var (
	// ErrRunNotFound indicates an unknown run ID.
	ErrRunNotFound = errors.New("server: run not found")

	// ErrBadRequest indicates a malformed request body or parameter.
	ErrBadRequest = errors.New("server: bad request")
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFadeSteps sets driver.Options.FadeSteps for new runs.
func WithFadeSteps(n int) Option {
	return func(s *Server) { s.fadeSteps = n }
}

// WithMaxRuns caps the number of live runs; creating one more fails with 503.
// n <= 0 means no cap.
func WithMaxRuns(n int) Option {
	return func(s *Server) { s.maxRuns = n }
}

// Server is an http.Handler holding live runs in memory.
type Server struct {
	mu   sync.Mutex
	runs map[string]*driver.Driver

	logger    *log.Logger
	fadeSteps int
	maxRuns   int
	router    chi.Router
}

// New builds a Server with its routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		runs:   make(map[string]*driver.Driver),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("server")

	r := chi.NewRouter()
	r.Use(s.middleware)
	r.Get("/healthz", s.health)
	r.Get("/scenarios", s.scenarios)
	r.Route("/runs", func(r chi.Router) {
		r.Post("/", s.create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.frame)
			r.Delete("/", s.remove)
			r.Post("/step", s.step)
			r.Post("/finish", s.finish)
			r.Post("/reset", s.reset)
			r.Get("/path", s.path)
			r.Get("/dot", s.dot)
			r.Put("/nodes/{node}", s.move)
		})
	})
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Runs returns the number of live runs.
func (s *Server) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.runs)
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("request", "method", r.Method, "uri", r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

type scenarioInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Nodes       int    `json:"nodes"`
	Edges       int    `json:"edges"`
}

type createRequest struct {
	Scenario string `json:"scenario"`
	Start    *int   `json:"start,omitempty"`
	End      *int   `json:"end,omitempty"`
}

type runResponse struct {
	ID    string       `json:"id"`
	Frame driver.Frame `json:"frame"`
}

type stepResponse struct {
	Report reportView   `json:"report"`
	Frame  driver.Frame `json:"frame"`
}

type finishResponse struct {
	Result resultView   `json:"result"`
	Frame  driver.Frame `json:"frame"`
}

type pathResponse struct {
	Nodes []core.NodeID `json:"nodes"`
	Edges []core.EdgeID `json:"edges"`
	Cost  float64       `json:"cost"`
}

type moveRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type relaxedView struct {
	Edge      core.EdgeID `json:"edge"`
	From      core.NodeID `json:"from"`
	To        core.NodeID `json:"to"`
	Cost      float64     `json:"cost"`
	Candidate float64     `json:"candidate"`
	Improved  bool        `json:"improved"`
}

type reportView struct {
	Index     int           `json:"index"`
	Expanded  core.NodeID   `json:"expanded"`
	Relaxed   []relaxedView `json:"relaxed"`
	Next      core.NodeID   `json:"next"`
	HasNext   bool          `json:"hasNext"`
	Terminal  bool          `json:"terminal"`
	Found     bool          `json:"found"`
	Exhausted bool          `json:"exhausted,omitempty"`
}

// resultView carries Distance as a pointer: +Inf has no JSON form.
type resultView struct {
	State     string   `json:"state"`
	Found     bool     `json:"found"`
	Steps     int      `json:"steps"`
	Distance  *float64 `json:"distance"`
	Exhausted bool     `json:"exhausted,omitempty"`
}

func newReportView(rep dijkstra.StepReport) reportView {
	v := reportView{
		Index:     rep.Index,
		Expanded:  rep.Expanded,
		Relaxed:   make([]relaxedView, 0, len(rep.Relaxed)),
		Next:      rep.Next,
		HasNext:   rep.HasNext,
		Terminal:  rep.Terminal,
		Found:     rep.Found,
		Exhausted: rep.Exhausted,
	}
	for _, re := range rep.Relaxed {
		v.Relaxed = append(v.Relaxed, relaxedView(re))
	}
	return v
}

func newResultView(res dijkstra.FinalResult) resultView {
	v := resultView{
		State:     res.State.String(),
		Found:     res.Found,
		Steps:     res.Steps,
		Exhausted: res.Exhausted,
	}
	if !math.IsInf(res.Distance, 0) && !math.IsNaN(res.Distance) {
		d := res.Distance
		v.Distance = &d
	}
	return v
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.responseJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) scenarios(w http.ResponseWriter, r *http.Request) {
	out := make([]scenarioInfo, 0)
	for _, name := range scenario.Names() {
		sc, err := scenario.Builtin(name)
		if err != nil {
			s.responseJSON(w, r, http.StatusInternalServerError, err)
			return
		}
		out = append(out, scenarioInfo{
			Name:        sc.Name,
			Description: sc.Description,
			Start:       sc.Start,
			End:         sc.End,
			Nodes:       len(sc.Nodes),
			Edges:       len(sc.Edges),
		})
	}
	s.responseJSON(w, r, http.StatusOK, out)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	if req.Scenario == "" {
		req.Scenario = "demo"
	}

	// Only builtins: the server never opens paths named by a client.
	sc, err := scenario.Builtin(req.Scenario)
	if err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	g, l, err := sc.Build()
	if err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	start, end := sc.StartID(), sc.EndID()
	if req.Start != nil {
		start = core.NodeID(*req.Start)
	}
	if req.End != nil {
		end = core.NodeID(*req.End)
	}


	d, err := driver.New(g, l, start, end, driver.Options{
		FadeSteps: s.fadeSteps,
		Logger:    s.logger,
	})
	if err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}

	if !s.admit(d) {
		s.responseJSON(w, r, http.StatusServiceUnavailable, fmt.Errorf("server: %d runs already live", s.maxRuns))
		return
	}
	s.logger.Info("run created", "run", d.ID(), "scenario", sc.Name, "start", start, "end", end)

	s.responseJSON(w, r, http.StatusCreated, runResponse{ID: d.ID(), Frame: d.Snapshot()})
}

// admit stores d unless the run cap is reached. The check and the insert share
// one critical section.
func (s *Server) admit(d *driver.Driver) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxRuns > 0 && len(s.runs) >= s.maxRuns {
		return false
	}
	s.runs[d.ID()] = d

	return true
}

// lookup resolves {id}, writing a 404 when it is unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*driver.Driver, bool) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	d, ok := s.runs[id]
	s.mu.Unlock()
	if !ok {
		s.responseJSON(w, r, http.StatusNotFound, fmt.Errorf("%w: %s", ErrRunNotFound, id))
		return nil, false
	}
	return d, true
}

func (s *Server) frame(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.responseJSON(w, r, http.StatusOK, d.Snapshot())
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.runs, d.ID())
	s.mu.Unlock()
	s.responseJSON(w, r, http.StatusOK)
}

func (s *Server) step(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	rep, f, err := d.Step(r.Context())
	if err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	s.responseJSON(w, r, http.StatusOK, stepResponse{Report: newReportView(rep), Frame: f})
}

func (s *Server) finish(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	res, err := d.Finish(r.Context())
	if err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	s.responseJSON(w, r, http.StatusOK, finishResponse{Result: newResultView(res), Frame: d.Snapshot()})
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := d.Reset(); err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	s.responseJSON(w, r, http.StatusOK, d.Snapshot())
}

func (s *Server) path(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	edges, err := d.PathEdges()
	if err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	nodes, found := d.Path()
	if !found {
		s.responseJSON(w, r, http.StatusConflict, fmt.Errorf("%w: run has not found a path", dijkstra.ErrInvalidState))
		return
	}
	cost, err := dijkstra.PathCost(d.Graph(), edges)
	if err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	s.responseJSON(w, r, http.StatusOK, pathResponse{Nodes: nodes, Edges: edges, Cost: cost})
}

func (s *Server) dot(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	opts := dot.Options{Positions: true, Comments: true}
	src := dot.ToDOT(d.Snapshot(), opts)

	switch r.URL.Query().Get("format") {
	case "", "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(src))
	case "svg":
		svg, err := dot.RenderSVG(r.Context(), src, opts)
		if err != nil {
			s.responseJSON(w, r, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
	default:
		s.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("%w: unknown format %q", ErrBadRequest, r.URL.Query().Get("format")))
	}
}

func (s *Server) move(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	node, err := strconv.Atoi(chi.URLParam(r, "node"))
	if err != nil {
		s.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("%w: node %q", ErrBadRequest, chi.URLParam(r, "node")))
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	if req.X == nil || req.Y == nil {
		s.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("%w: x and y are required", ErrBadRequest))
		return
	}
	if err := d.Move(core.NodeID(node), geometry.Point{X: *req.X, Y: *req.Y}); err != nil {
		s.responseJSON(w, r, statusFor(err), err)
		return
	}
	s.responseJSON(w, r, http.StatusOK, d.Snapshot())
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, dijkstra.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, dijkstra.ErrInvalidReference),
		errors.Is(err, scenario.ErrInvalidScenario),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) responseJSON(w http.ResponseWriter, r *http.Request, code int, v ...any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var data []byte
	if len(v) == 0 || v[0] == nil {
		data, _ = json.Marshal(struct{}{})
	} else if err, ok := v[0].(error); ok {
		if code >= http.StatusInternalServerError {
			s.logger.Error("request failed", "method", r.Method, "uri", r.RequestURI, "err", err)
		} else {
			s.logger.Debug("request rejected", "method", r.Method, "uri", r.RequestURI, "err", err)
		}
		data, _ = json.Marshal(map[string]any{
			"error": err.Error(),
		})
	} else {
		var err error
		data, err = json.Marshal(v[0])
		if err != nil {
			s.logger.Error("encode response", "err", err)
			code = http.StatusInternalServerError
			data, _ = json.Marshal(map[string]any{"error": err.Error()})
		}
	}
	w.WriteHeader(code)
	_, _ = w.Write(data)
}
