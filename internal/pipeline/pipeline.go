package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/couchcryptid/saferoute/internal/observability"
)

// Evaluation is the result of one submitted form: the assembled record and
// the assessment derived from it. It is returned to the caller and not kept.
type Evaluation struct {
	ID         string                `json:"id"`
	AssessedAt time.Time             `json:"assessed_at"`
	Duration   time.Duration         `json:"-"`
	Record     domain.FeatureRecord  `json:"record"`
	Assessment domain.RiskAssessment `json:"assessment"`
}

// Pipeline runs the assemble-then-classify sequence for each submission.
// Its catalog, classifier, and policy are read-only after construction, so
// one Pipeline serves concurrent callers without locking.
type Pipeline struct {
	catalog    *domain.Catalog
	classifier domain.Classifier
	policy     *domain.ExposurePolicy
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates a Pipeline over loaded artifacts.
func New(catalog *domain.Catalog, classifier domain.Classifier, policy *domain.ExposurePolicy, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	p := &Pipeline{
		catalog:    catalog,
		classifier: classifier,
		policy:     policy,
		logger:     logger,
		metrics:    metrics,
	}
	if catalog != nil && classifier != nil {
		metrics.ArtifactsLoaded.Set(1)
	}
	return p
}

// CheckReadiness returns nil once both artifacts are present.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.catalog == nil {
		return errors.New("domain catalog not loaded")
	}
	if p.classifier == nil {
		return errors.New("classifier not loaded")
	}
	return nil
}

// Fields describes the exposed form fields with their permitted values.
func (p *Pipeline) Fields() ([]domain.FieldView, error) {
	return p.policy.Describe(p.catalog)
}

// Evaluate checks sel against the exposure policy, assembles a complete
// feature record, and classifies it once. It either returns a full
// Evaluation or an error; there is no partial result.
func (p *Pipeline) Evaluate(ctx context.Context, sel domain.Selections) (Evaluation, error) {
	start := clock.Now()
	id := uuid.NewString()

	eval, err := p.evaluate(ctx, sel)
	if err != nil {
		kind := errorKind(err)
		p.metrics.EvaluationErrors.WithLabelValues(kind).Inc()
		p.logger.Warn("evaluation failed", "evaluation_id", id, "kind", kind, "error", err)
		return Evaluation{}, err
	}

	eval.ID = id
	eval.AssessedAt = start.UTC()
	eval.Duration = clock.Since(start)

	p.metrics.Evaluations.WithLabelValues(eval.Assessment.Tier.String()).Inc()
	p.metrics.Confidence.Observe(eval.Assessment.Confidence)
	p.metrics.EvaluationDuration.Observe(eval.Duration.Seconds())
	p.logger.Info("evaluation complete",
		"evaluation_id", id,
		"tier", eval.Assessment.Tier.String(),
		"confidence", eval.Assessment.Confidence,
		"tier_probability", eval.Assessment.TierProbability,
		"duration", eval.Duration,
	)
	return eval, nil
}

func (p *Pipeline) evaluate(ctx context.Context, sel domain.Selections) (Evaluation, error) {
	if err := p.policy.Check(sel); err != nil {
		return Evaluation{}, err
	}

	record, err := domain.Assemble(sel, p.catalog)
	if err != nil {
		return Evaluation{}, err
	}
	p.logger.Debug("feature record assembled", "fields", len(record), "selected", len(sel))

	assessment, err := domain.Classify(ctx, p.classifier, record)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{Record: record, Assessment: assessment}, nil
}

// errorKind maps an evaluation error to its metric label.
func errorKind(err error) string {
	var (
		verr *domain.ValidationError
		serr *domain.SchemaError
		cerr *domain.ClassificationError
	)
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.As(err, &serr):
		return "schema"
	case errors.As(err, &cerr):
		return "classification"
	default:
		return "unknown"
	}
}
