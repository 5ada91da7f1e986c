package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"radcurve/internal/config"
	"radcurve/internal/dose"
)

// Server exposes the dose model over a small JSON API so the calculator can
// be embedded in other teaching tools. Every request carries its own
// parameter set; the server holds no mutable state.
type Server struct{}

func New() *Server {
	return &Server{}
}

// Routes returns the chi router for the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.getHealthz)
	r.Get("/dose", s.getDose)
	r.Get("/curve", s.getCurve)
	return r
}

func (s *Server) getHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getDose evaluates the model at a single distance.
// GET /dose?distance=2&dose=50&ref=1&att=1&op=1
func (s *Server) getDose(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	distance, err := queryFloat(r, "distance", config.DefaultDistance)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, dose.Sample{
		Distance: distance,
		Dose:     dose.At(distance, params),
	})
}

// getCurve samples the curve over a distance range.
// GET /curve?min=0.5&max=5&points=200&dose=50&ref=1&att=1&op=1
func (s *Server) getCurve(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	min, err := queryFloat(r, "min", config.DefaultCurveMin)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	max, err := queryFloat(r, "max", config.DefaultCurveMax)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	points, err := queryInt(r, "points", config.DefaultPoints)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	samples, err := dose.SampleCurve(dose.Range{Min: min, Max: max, Points: points}, params)
	if err != nil {
		var rangeErr *dose.InvalidRangeError
		if errors.As(err, &rangeErr) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, samples)
}

func parseParams(r *http.Request) (dose.Parameters, error) {
	refDose, err := queryFloat(r, "dose", config.DefaultReferenceDose)
	if err != nil {
		return dose.Parameters{}, err
	}
	refDist, err := queryFloat(r, "ref", config.DefaultReferenceDist)
	if err != nil {
		return dose.Parameters{}, err
	}
	att, err := queryFloat(r, "att", config.DefaultAttenuation)
	if err != nil {
		return dose.Parameters{}, err
	}
	op, err := queryFloat(r, "op", config.DefaultOperational)
	if err != nil {
		return dose.Parameters{}, err
	}
	return dose.Parameters{
		ReferenceDose: refDose,
		ReferenceDist: refDist,
		Attenuation:   att,
		Operational:   op,
	}, nil
}

type queryError struct {
	param string
	value string
}

func (e *queryError) Error() string {
	return "invalid query parameter " + e.param + ": " + strconv.Quote(e.value)
}

func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &queryError{param: name, value: raw}
	}
	return v, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &queryError{param: name, value: raw}
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
