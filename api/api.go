/*
Package api exposes the hull algorithms over HTTP. It is thin glue: it
parses a point list from the wire format, invokes one hull operation by
name, and serializes the hull and the recorded step trace. A compare
endpoint runs several algorithms on the same input for cross-validation.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/stat"

	"github.com/npillmayer/hull"
	"github.com/npillmayer/hull/graham"
	"github.com/npillmayer/hull/increm"
	"github.com/npillmayer/hull/jarvis"
	"github.com/npillmayer/hull/tchan"
	"github.com/npillmayer/hull/trace"
)

// tracer writes to trace with key 'hull.api'
func tracer() tracing.Trace {
	return tracing.Select("hull.api")
}

type algorithmFunc func([]arithm.Pair, *trace.Recorder) hull.Ring

var algorithms = map[string]algorithmFunc{
	"graham":      graham.Scan,
	"jarvis":      jarvis.March,
	"chan":        tchan.Hull,
	"incremental": increm.Hull,
}

// compareOrder fixes the default algorithm order of /compare responses.
var compareOrder = []string{"graham", "jarvis", "chan", "incremental"}

const maxRepeat = 100

// NewHandler returns the HTTP handler tree of the hull service.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	for name, fn := range algorithms {
		mux.HandleFunc("/"+name, algorithmHandler(name, fn))
	}
	mux.HandleFunc("/compare", compareHandler)
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/api-info", infoHandler)
	mux.HandleFunc("/", rootHandler)
	return mux
}

type request struct {
	Points     []json.RawMessage `json:"points"`
	Algorithms []string          `json:"algorithms"`
	Repeat     int               `json:"repeat"`
}

type stepJSON struct {
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Data        trace.Step `json:"data,omitempty"`
}

type statsJSON struct {
	HullSize        int     `json:"hull_size"`
	StepCount       int     `json:"step_count"`
	ExecutionTimeMS float64 `json:"execution_time_ms"`
	Algorithm       string  `json:"algorithm"`
}

type hullResponse struct {
	Success   bool       `json:"success"`
	Algorithm string     `json:"algorithm"`
	Hull      []trace.XY `json:"hull"`
	Steps     []stepJSON `json:"steps"`
	Stats     statsJSON  `json:"stats"`
}

type compareResult struct {
	Hull            []trace.XY `json:"hull"`
	HullSize        int        `json:"hull_size"`
	StepCount       int        `json:"step_count"`
	ExecutionTimeMS float64    `json:"execution_time_ms"`
	TimeStdDevMS    *float64   `json:"time_stddev_ms,omitempty"`
}

type compareResponse struct {
	Success    bool                     `json:"success"`
	Results    map[string]compareResult `json:"results"`
	InputSize  int                      `json:"input_size"`
	HullsAgree bool                     `json:"hulls_agree"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// parsePoints converts wire-format points into pairs. Each element is
// either an {x, y} object or an [x, y] coordinate list. Anything else,
// including an object missing one of its coordinates, is rejected with
// an error naming the offending element.
func parsePoints(raw []json.RawMessage) ([]arithm.Pair, error) {
	points := make([]arithm.Pair, 0, len(raw))
	for i, rm := range raw {
		var obj struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		}
		if err := json.Unmarshal(rm, &obj); err == nil {
			if obj.X == nil || obj.Y == nil {
				return nil, fmt.Errorf("point %d is missing an x or y coordinate: %s", i, rm)
			}
			if err := checkFinite(i, *obj.X, *obj.Y); err != nil {
				return nil, err
			}
			points = append(points, arithm.P(*obj.X, *obj.Y))
			continue
		}
		var arr []float64
		if err := json.Unmarshal(rm, &arr); err == nil && len(arr) >= 2 {
			if err := checkFinite(i, arr[0], arr[1]); err != nil {
				return nil, err
			}
			points = append(points, arithm.P(arr[0], arr[1]))
			continue
		}
		return nil, fmt.Errorf("invalid point format at index %d: %s", i, rm)
	}
	return points, nil
}

func checkFinite(i int, x, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("point %d has a non-finite coordinate", i)
	}
	return nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*request, []arithm.Pair, bool) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return nil, nil, false
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("malformed request: %v", err)})
		return nil, nil, false
	}
	points, err := parsePoints(req.Points)
	if err != nil {
		tracer().Infof("rejecting request: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, nil, false
	}
	return &req, points, true
}

func algorithmHandler(name string, fn algorithmFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, points, ok := decodeRequest(w, r)
		if !ok {
			return
		}
		if len(points) < 3 {
			writeJSON(w, http.StatusOK, errorResponse{Error: "need at least 3 points"})
			return
		}
		rec := trace.New()
		started := time.Now()
		h := fn(points, rec)
		elapsed := float64(time.Since(started)) / float64(time.Millisecond)
		tracer().Debugf("%s on %d points: %d hull vertices, %d steps", name, len(points), h.N(), rec.Len())

		writeJSON(w, http.StatusOK, hullResponse{
			Success:   true,
			Algorithm: name,
			Hull:      trace.Pts(h),
			Steps:     convertSteps(rec),
			Stats: statsJSON{
				HullSize:        h.N(),
				StepCount:       rec.Len(),
				ExecutionTimeMS: elapsed,
				Algorithm:       name,
			},
		})
	}
}

func compareHandler(w http.ResponseWriter, r *http.Request) {
	req, points, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	if len(points) < 3 {
		writeJSON(w, http.StatusOK, errorResponse{Error: "need at least 3 points"})
		return
	}
	names := req.Algorithms
	if len(names) == 0 {
		names = compareOrder
	}
	repeat := req.Repeat
	if repeat < 1 {
		repeat = 1
	} else if repeat > maxRepeat {
		repeat = maxRepeat
	}

	results := make(map[string]compareResult, len(names))
	var rings []hull.Ring
	for _, name := range names {
		fn, known := algorithms[name]
		if !known {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown algorithm %q", name)})
			return
		}
		times := make([]float64, repeat)
		var h hull.Ring
		var stepCount int
		for run := 0; run < repeat; run++ {
			rec := trace.New()
			started := time.Now()
			h = fn(points, rec)
			times[run] = float64(time.Since(started)) / float64(time.Millisecond)
			stepCount = rec.Len()
		}
		res := compareResult{
			Hull:            trace.Pts(h),
			HullSize:        h.N(),
			StepCount:       stepCount,
			ExecutionTimeMS: stat.Mean(times, nil),
		}
		if repeat > 1 {
			sd := stat.StdDev(times, nil)
			res.TimeStdDevMS = &sd
		}
		results[name] = res
		rings = append(rings, h)
	}

	agree := true
	for _, ring := range rings[1:] {
		if !rings[0].Matches(ring) {
			agree = false
			break
		}
	}
	writeJSON(w, http.StatusOK, compareResponse{
		Success:    true,
		Results:    results,
		InputSize:  len(points),
		HullsAgree: agree,
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}

func infoHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":       "Convex Hull Algorithms API",
		"version":    "1.0.0",
		"algorithms": compareOrder,
		"endpoints": map[string]string{
			"/graham":      "POST - Graham's scan (monotone chain)",
			"/jarvis":      "POST - Jarvis march (gift wrapping)",
			"/chan":        "POST - Chan's hybrid algorithm",
			"/incremental": "POST - incremental hull",
			"/compare":     "POST - compare algorithms on one input",
			"/health":      "GET - health check",
		},
	})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no such endpoint"})
		return
	}
	infoHandler(w, r)
}

func convertSteps(rec *trace.Recorder) []stepJSON {
	steps := make([]stepJSON, rec.Len())
	for i, s := range rec.Steps() {
		steps[i] = stepJSON{Type: s.Kind(), Description: s.Describe(), Data: s}
	}
	return steps
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		tracer().Errorf("encoding response: %v", err)
	}
}
