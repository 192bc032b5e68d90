// Package model evaluates the serialized severity classifier.
//
// The artifact is a multinomial linear model over one-hot categorical
// columns and raw numeric columns, scored with softmax. Callers outside
// this package treat it as an opaque domain.Classifier.
package model

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/couchcryptid/saferoute/internal/domain"
)

const numClasses = 3

// Spec is the decoded form of a model artifact.
type Spec struct {
	// Classes names the output classes in vector order:
	// fatal, serious, slight.
	Classes     []string                        `yaml:"classes" json:"classes"`
	Intercepts  []float64                       `yaml:"intercepts" json:"intercepts"`
	Categorical map[string]map[string][]float64 `yaml:"categorical" json:"categorical"`
	Numeric     map[string][]float64            `yaml:"numeric" json:"numeric"`
	// Columns lists every column the model requires in its input row. When
	// empty, the columns referenced by Categorical and Numeric are required.
	Columns []string `yaml:"columns" json:"columns"`
}

// Linear is an immutable, validated linear softmax classifier. It holds no
// mutable state and is safe for concurrent use.
type Linear struct {
	classes     []string
	intercepts  [numClasses]float64
	categorical map[string]map[string][numClasses]float64
	numeric     map[string][numClasses]float64
	columns     []string

	// sorted keys of categorical and numeric, so logits sum in a fixed order
	catFields []string
	numFields []string
}

// New validates spec and builds a Linear classifier.
func New(spec Spec) (*Linear, error) {
	if len(spec.Classes) != numClasses {
		return nil, fmt.Errorf("model must have %d classes, got %d", numClasses, len(spec.Classes))
	}
	intercepts, err := toWeights("intercepts", spec.Intercepts)
	if err != nil {
		return nil, err
	}

	m := &Linear{
		classes:     append([]string(nil), spec.Classes...),
		intercepts:  intercepts,
		categorical: make(map[string]map[string][numClasses]float64, len(spec.Categorical)),
		numeric:     make(map[string][numClasses]float64, len(spec.Numeric)),
	}

	for field, levels := range spec.Categorical {
		m.categorical[field] = make(map[string][numClasses]float64, len(levels))
		for level, ws := range levels {
			w, err := toWeights(field+"="+level, ws)
			if err != nil {
				return nil, err
			}
			m.categorical[field][level] = w
		}
	}
	for field, ws := range spec.Numeric {
		if _, dup := m.categorical[field]; dup {
			return nil, fmt.Errorf("column %s is both categorical and numeric", field)
		}
		w, err := toWeights(field, ws)
		if err != nil {
			return nil, err
		}
		m.numeric[field] = w
	}

	for field := range m.categorical {
		m.catFields = append(m.catFields, field)
	}
	for field := range m.numeric {
		m.numFields = append(m.numFields, field)
	}
	sort.Strings(m.catFields)
	sort.Strings(m.numFields)

	m.columns = append([]string(nil), spec.Columns...)
	if len(m.columns) == 0 {
		m.columns = append(append(m.columns, m.catFields...), m.numFields...)
	}
	return m, nil
}

// Classes returns the class names in output order.
func (m *Linear) Classes() []string {
	return append([]string(nil), m.classes...)
}

// Columns returns the columns the model requires in its input row.
func (m *Linear) Columns() []string {
	return append([]string(nil), m.columns...)
}

// Levels returns the sorted categorical levels the model carries weights for,
// or nil if field is not a categorical column.
func (m *Linear) Levels(field string) []string {
	levels, ok := m.categorical[field]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(levels))
	for level := range levels {
		out = append(out, level)
	}
	sort.Strings(out)
	return out
}

// PredictProba scores one record and returns the class probabilities in
// Classes order. A record missing a required column, or holding a value of
// the wrong type, is rejected. Categorical levels the model never saw
// contribute nothing.
func (m *Linear) PredictProba(_ context.Context, record domain.FeatureRecord) ([]float64, error) {
	for _, col := range m.columns {
		if _, ok := record[col]; !ok {
			return nil, fmt.Errorf("input row is missing column %s", col)
		}
	}

	logits := m.intercepts
	for _, field := range m.catFields {
		v, ok := record.String(field)
		if !ok {
			return nil, fmt.Errorf("column %s: expected string, got %T", field, record[field])
		}
		if w, seen := m.categorical[field][v]; seen {
			addScaled(&logits, w, 1)
		}
	}
	for _, field := range m.numFields {
		v, ok := record.Int(field)
		if !ok {
			return nil, fmt.Errorf("column %s: expected integer, got %T", field, record[field])
		}
		addScaled(&logits, m.numeric[field], float64(v))
	}

	return softmax(logits)
}

func addScaled(dst *[numClasses]float64, w [numClasses]float64, scale float64) {
	for i := range dst {
		dst[i] += w[i] * scale
	}
}

// softmax uses the max-subtraction form to stay finite for large logits.
func softmax(logits [numClasses]float64) ([]float64, error) {
	peak := math.Inf(-1)
	for _, l := range logits {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, errors.New("model produced a non-finite logit")
		}
		peak = math.Max(peak, l)
	}

	out := make([]float64, numClasses)
	var sum float64
	for i, l := range logits {
		out[i] = math.Exp(l - peak)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out, nil
}

func toWeights(name string, ws []float64) ([numClasses]float64, error) {
	var w [numClasses]float64
	if len(ws) != numClasses {
		return w, fmt.Errorf("%s: expected %d weights, got %d", name, numClasses, len(ws))
	}
	for i, v := range ws {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return w, fmt.Errorf("%s: weight %d is not finite", name, i)
		}
		w[i] = v
	}
	return w, nil
}
