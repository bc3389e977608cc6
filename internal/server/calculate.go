package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"antennacalc/internal/calc"
	"antennacalc/internal/coax"
	"antennacalc/internal/metrics"
	"antennacalc/internal/models"
)

const maxBodyBytes = 1 << 20

// run executes a calculator through calc.Run, returning it as a Result
func run[I any, R models.Result](in I, fn func(I) (R, error)) (models.Result, error) {
	r, err := calc.Run(func() (R, error) { return fn(in) })
	if err != nil {
		return nil, err
	}
	return r, nil
}

// invalid turns a user mistake into a validation error
func invalid(err error) error {
	return &calc.ValidationError{Messages: []string{err.Error()}, Err: err}
}

func decodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return invalid(fmt.Errorf("invalid JSON input: %w", err))
	}
	return nil
}

// calculateJSON decodes the input of kind over its defaults and runs it
func (s *Server) calculateJSON(kind models.Kind, body io.Reader) (models.Result, error) {
	switch kind {
	case models.KindFlowerPot:
		in := models.DefaultFlowerPotInput()
		if err := decodeJSON(body, &in); err != nil {
			return nil, err
		}
		return run(in, calc.FlowerPot)
	case models.KindGroundPlane:
		in := models.DefaultGroundPlaneInput()
		if err := decodeJSON(body, &in); err != nil {
			return nil, err
		}
		return run(in, calc.GroundPlane)
	case models.KindJPole:
		in := models.DefaultJPoleInput()
		if err := decodeJSON(body, &in); err != nil {
			return nil, err
		}
		return run(in, calc.JPole)
	case models.KindYagi:
		in := models.DefaultYagiInput()
		if err := decodeJSON(body, &in); err != nil {
			return nil, err
		}
		return run(in, calc.Yagi)
	case models.KindKharchenko:
		in := models.DefaultKharchenkoInput()
		if err := decodeJSON(body, &in); err != nil {
			return nil, err
		}
		return run(in, calc.Kharchenko)
	case models.KindCoax:
		var in models.CoaxInput
		if err := decodeJSON(body, &in); err != nil {
			return nil, err
		}
		return s.calculateCoax(in)
	default:
		return nil, fmt.Errorf("unknown calculator %q", kind)
	}
}

func (s *Server) calculateCoax(in models.CoaxInput) (models.Result, error) {
	result, err := coax.Calculate(s.Catalog, in)
	if err != nil {
		if coax.IsUserError(err) {
			return nil, invalid(err)
		}
		return nil, &calc.CalculationError{Err: err}
	}
	return result, nil
}

// outcome classifies a calculation error for metrics
func outcome(err error) metrics.Outcome {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case calc.IsValidation(err):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

func (s *Server) observe(kind models.Kind, err error, start time.Time) {
	s.Metrics.ObserveCalculation(string(kind), outcome(err), start)
	if err != nil && !calc.IsValidation(err) {
		s.log.Error("Calculation failed", err, map[string]interface{}{
			"calculator": string(kind),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeCalcError answers 400 with the validation messages, 500 otherwise
func writeCalcError(w http.ResponseWriter, err error) {
	if calc.IsValidation(err) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "invalid input",
			"errors": calc.Messages(err),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error": err.Error(),
	})
}
