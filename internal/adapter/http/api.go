package http

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/couchcryptid/saferoute/internal/domain"
)

const maxRequestBytes = 64 << 10

const requestSchemaURL = "schema://assessment_request.json"

//go:embed schema/assessment_request.json
var requestSchemaJSON []byte

var requestSchema = mustCompileSchema(requestSchemaURL, requestSchemaJSON)

type assessRequest struct {
	Fields map[string]any `json:"fields"`
}

func mustCompileSchema(url string, def []byte) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal(def, &doc); err != nil {
		panic(fmt.Sprintf("parse %s: %v", url, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add %s: %v", url, err))
	}
	sch, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", url, err))
	}
	return sch
}

func (s *Server) handleFields(w http.ResponseWriter, _ *http.Request) {
	views, err := s.evaluator.Fields()
	if err != nil {
		status, body := classifyError(err)
		writeJSON(w, status, body)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": views})
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "request"})
		return
	}

	sel, err := toSelections(req.Fields)
	if err != nil {
		status, body := classifyError(err)
		writeJSON(w, status, body)
		return
	}

	eval, err := s.evaluator.Evaluate(r.Context(), sel)
	if err != nil {
		status, body := classifyError(err)
		writeJSON(w, status, body)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

// decodeRequest checks the body against the request schema before decoding
// it, so shape errors are reported uniformly.
func decodeRequest(body io.Reader) (assessRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return assessRequest{}, fmt.Errorf("read request: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return assessRequest{}, fmt.Errorf("decode request: %w", err)
	}
	if err := requestSchema.Validate(parsed); err != nil {
		return assessRequest{}, fmt.Errorf("invalid request: %w", err)
	}

	var req assessRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return assessRequest{}, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// toSelections flattens JSON field values to the string form a posted HTML
// form would carry. Whole numbers are rendered without a decimal point so
// numeric fields parse as integers.
func toSelections(fields map[string]any) (domain.Selections, error) {
	sel := make(domain.Selections, len(fields))
	for name, raw := range fields {
		switch v := raw.(type) {
		case string:
			sel[name] = v
		case float64:
			if v == math.Trunc(v) && !math.IsInf(v, 0) {
				sel[name] = strconv.FormatFloat(v, 'f', 0, 64)
			} else {
				sel[name] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		default:
			return nil, &domain.ValidationError{Field: name, Value: fmt.Sprint(raw), Reason: "must be a string or number"}
		}
	}
	return sel, nil
}
