package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Tier is the discrete severity outcome. Its numeric value is the position of
// the class in the classifier's probability vector.
type Tier int

const (
	TierFatal Tier = iota
	TierSerious
	TierSlight
)

// Decision thresholds, checked in order: fatal first, then serious.
const (
	FatalThreshold   = 0.10
	SeriousThreshold = 0.20
)

// probabilitySumTolerance absorbs floating point drift in model output.
const probabilitySumTolerance = 1e-6

func (t Tier) String() string {
	switch t {
	case TierFatal:
		return "Fatal"
	case TierSerious:
		return "Serious"
	case TierSlight:
		return "Slight"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	switch t {
	case TierFatal, TierSerious, TierSlight:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
}

// UnmarshalText decodes a tier name as written by MarshalText.
func (t *Tier) UnmarshalText(b []byte) error {
	for _, candidate := range []Tier{TierFatal, TierSerious, TierSlight} {
		if string(b) == candidate.String() {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", b)
}

// Label is the headline shown for the tier.
func (t Tier) Label() string {
	switch t {
	case TierFatal:
		return "HIGH RISK: FATAL"
	case TierSerious:
		return "MODERATE RISK: SERIOUS"
	default:
		return "LOW RISK: SLIGHT"
	}
}

// Message is the explanatory sentence shown under the label.
func (t Tier) Message() string {
	switch t {
	case TierFatal:
		return "Conditions suggest high likelihood of fatal injuries."
	case TierSerious:
		return "Serious injuries are probable."
	default:
		return "Likely minor injuries only."
	}
}

// Probabilities is the classifier output, one entry per tier.
type Probabilities struct {
	Fatal   float64 `json:"fatal"`
	Serious float64 `json:"serious"`
	Slight  float64 `json:"slight"`
}

// Of returns the probability of tier t.
func (p Probabilities) Of(t Tier) float64 {
	switch t {
	case TierFatal:
		return p.Fatal
	case TierSerious:
		return p.Serious
	default:
		return p.Slight
	}
}

// Max returns the largest entry.
func (p Probabilities) Max() float64 {
	return math.Max(p.Fatal, math.Max(p.Serious, p.Slight))
}

// RiskAssessment is the outcome of one evaluation.
//
// Confidence is always the largest raw probability, which need not be the
// probability of Tier: a 15% fatal chance yields Tier=Fatal while Confidence
// reports the 80% slight chance. TierProbability carries the selected
// tier's own probability alongside it.
type RiskAssessment struct {
	Tier            Tier          `json:"tier"`
	Label           string        `json:"label"`
	Message         string        `json:"message"`
	Probabilities   Probabilities `json:"probabilities"`
	Confidence      float64       `json:"confidence"`
	TierProbability float64       `json:"tier_probability"`
}

// Classifier is the pre-trained model. PredictProba returns
// [P(Fatal), P(Serious), P(Slight)] for a single complete record.
type Classifier interface {
	PredictProba(ctx context.Context, record FeatureRecord) ([]float64, error)
}

// DecideTier applies the ordered thresholds. Comparisons are strict, so a
// probability exactly at a threshold does not trigger it.
func DecideTier(p Probabilities) Tier {
	switch {
	case p.Fatal > FatalThreshold:
		return TierFatal
	case p.Serious > SeriousThreshold:
		return TierSerious
	default:
		return TierSlight
	}
}

// Assess validates a raw probability vector and turns it into a RiskAssessment.
// A malformed vector is reported as *ClassificationError.
func Assess(probs []float64) (RiskAssessment, error) {
	if err := validateProbabilities(probs); err != nil {
		return RiskAssessment{}, &ClassificationError{Err: err}
	}

	p := Probabilities{Fatal: probs[0], Serious: probs[1], Slight: probs[2]}
	tier := DecideTier(p)
	return RiskAssessment{
		Tier:            tier,
		Label:           tier.Label(),
		Message:         tier.Message(),
		Probabilities:   p,
		Confidence:      p.Max(),
		TierProbability: p.Of(tier),
	}, nil
}

// Classify invokes the classifier exactly once on record and assesses the
// result. Classifier failures are wrapped in *ClassificationError; there is
// no retry and no fallback prediction.
func Classify(ctx context.Context, c Classifier, record FeatureRecord) (RiskAssessment, error) {
	if c == nil {
		return RiskAssessment{}, &ClassificationError{Err: errors.New("no classifier loaded")}
	}
	probs, err := c.PredictProba(ctx, record)
	if err != nil {
		return RiskAssessment{}, &ClassificationError{Err: err}
	}
	return Assess(probs)
}

func validateProbabilities(probs []float64) error {
	if len(probs) != 3 {
		return fmt.Errorf("expected 3 class probabilities, got %d", len(probs))
	}
	var sum float64
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("probability for %s is invalid: %v", Tier(i), p)
		}
		sum += p
	}
	if math.Abs(sum-1) > probabilitySumTolerance {
		return fmt.Errorf("class probabilities sum to %v, want 1", sum)
	}
	return nil
}
