package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

// Response is the wire form of a simulation result.
type Response struct {
	ZAxis                []float64 `json:"z_axis"`
	TemperatureProfile   []float64 `json:"temperature_profile"`
	ConcentrationProfile []float64 `json:"concentration_profile"`
	FinalConversion      float64   `json:"final_conversion"`
	MaxTemperature       float64   `json:"max_temperature"`
}

func NewResponse(res *reactor.Result) Response {
	return Response{
		ZAxis:                res.Profile.Z,
		TemperatureProfile:   res.Profile.T,
		ConcentrationProfile: res.Profile.C,
		FinalConversion:      res.Summary.FinalConversion,
		MaxTemperature:       res.Summary.MaxTemperature,
	}
}

// simulateRequest mirrors reactor.Request with every field required; a
// missing or null field is nil here rather than a silent zero.
type simulateRequest struct {
	TIn      *float64 `json:"T_in"`
	Velocity *float64 `json:"Flow_Velocity"`
	TJacket  *float64 `json:"T_jacket"`
}

// decodeRequest returns a syntax error as is and a missing field as
// dynamo.ErrInvalidRequest.
func decodeRequest(r io.Reader) (reactor.Request, error) {
	var in simulateRequest
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return reactor.Request{}, err
	}

	var missing []string
	if in.TIn == nil {
		missing = append(missing, "T_in")
	}
	if in.Velocity == nil {
		missing = append(missing, "Flow_Velocity")
	}
	if in.TJacket == nil {
		missing = append(missing, "T_jacket")
	}
	if len(missing) > 0 {
		return reactor.Request{}, fmt.Errorf("%w: missing field %s", dynamo.ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return reactor.Request{TIn: *in.TIn, Velocity: *in.Velocity, TJacket: *in.TJacket}, nil
}

type errorDetail struct {
	Detail string `json:"detail"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": APIMessage,
		"version": APIVersion,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r.Body)
	if errors.Is(err, dynamo.ErrInvalidRequest) {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorDetail{Detail: err.Error()})
		return
	}
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorDetail{Detail: "invalid request body: " + err.Error()})
		return
	}

	res, err := s.simulate(req)
	if err != nil {
		s.writeJSON(w, statusFor(err), errorDetail{Detail: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, NewResponse(res))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dynamo.ErrInvalidRequest):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("encode response")
	}
}
