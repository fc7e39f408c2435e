package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Shaolin23/adence-ai/internal/features"
	"github.com/Shaolin23/adence-ai/internal/insights"
	"github.com/Shaolin23/adence-ai/internal/metrics"
	"github.com/Shaolin23/adence-ai/internal/occupation"
	"github.com/Shaolin23/adence-ai/internal/scoring"
	"github.com/Shaolin23/adence-ai/internal/timeline"
	"github.com/Shaolin23/adence-ai/internal/types"
	"github.com/Shaolin23/adence-ai/internal/validation"
)

// maxMatchedOccupations bounds the occupations attached to a result.
const maxMatchedOccupations = 5

// Config wires the engine's collaborators. Augmentor may be nil, which
// disables the enhancement path while keeping base assessments available.
type Config struct {
	Scorer    *scoring.Scorer
	Augmentor *insights.Augmentor
	Logger    *zap.Logger
}

// Engine runs the assessment pipeline. Construct one per process and share
// it by reference; the base pipeline is pure and safe for concurrent use,
// and the augmentor owns its own synchronization.
type Engine struct {
	matcher   *occupation.Matcher
	scorer    *scoring.Scorer
	augmentor *insights.Augmentor
	logger    *zap.Logger

	assessments atomic.Int64
}

// New constructs an engine over a loaded occupation catalog.
func New(catalog *occupation.Catalog, cfg Config) *Engine {
	if cfg.Scorer == nil {
		cfg.Scorer = scoring.NewScorer()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		matcher:   occupation.NewMatcher(catalog),
		scorer:    cfg.Scorer,
		augmentor: cfg.Augmentor,
		logger:    cfg.Logger,
	}
}

// Assess runs the base scoring pipeline: validation, feature extraction,
// occupation matching, vulnerability scoring, and timeline/recommendation
// generation. Identical input always yields an identical vulnerability index.
func (e *Engine) Assess(ctx context.Context, input types.AssessmentInput) (*types.AssessmentResult, error) {
	result, _, err := e.assess(ctx, input)
	return result, err
}

// AssessEnhanced runs the base pipeline and then the insight augmentor.
// Calling it without a configured augmentor is a configuration error;
// external failures past that point degrade to synthesized insights instead
// of failing the assessment.
func (e *Engine) AssessEnhanced(ctx context.Context, input types.AssessmentInput) (*types.EnhancedAssessmentResult, error) {
	if e.augmentor == nil {
		return nil, &ErrConfiguration{Missing: "text-generation credential"}
	}

	base, featureRec, err := e.assess(ctx, input)
	if err != nil {
		return nil, err
	}

	ins := e.augmentor.Augment(ctx, input, base, featureRec)
	if len(ins.Citations) > 0 {
		base.Citations = ins.Citations
	}

	return &types.EnhancedAssessmentResult{
		AssessmentResult: *base,
		Insights:         ins,
	}, nil
}

// Metrics reports the engine's observability snapshot: total assessment
// count plus the augmentor's cache and queue state.
func (e *Engine) Metrics() insights.Metrics {
	var m insights.Metrics
	if e.augmentor != nil {
		m = e.augmentor.Snapshot()
	}
	m.RequestCount = e.assessments.Load()
	return m
}

func (e *Engine) assess(_ context.Context, input types.AssessmentInput) (*types.AssessmentResult, types.FeatureRecord, error) {
	start := time.Now()

	if err := validation.ValidateInput(input); err != nil {
		var fieldErr *validation.FieldError
		if errors.As(err, &fieldErr) {
			metrics.ValidationFailuresTotal.WithLabelValues(fieldErr.Field).Inc()
		}
		return nil, types.FeatureRecord{}, err
	}

	featureRec := features.Extract(input.Content)
	features.Refine(&featureRec, input.Location, input.ExperienceLevel)

	occupations := e.matcher.Match(input.Content, maxMatchedOccupations)

	index := e.scorer.Score(featureRec, len(occupations) > 0)
	index.Timeline = timeline.Build(index.RiskLevel)

	result := &types.AssessmentResult{
		ID:              uuid.NewString(),
		Vulnerability:   index,
		Occupations:     occupations,
		Recommendations: timeline.Recommendations(index.RiskLevel, featureRec, input.SubjectType),
		GeneratedAt:     time.Now().UTC(),
	}

	e.assessments.Add(1)
	metrics.AssessmentsTotal.WithLabelValues(string(input.SubjectType), string(index.RiskLevel)).Inc()
	metrics.AssessmentDuration.Observe(time.Since(start).Seconds())

	e.logger.Debug("assessment completed",
		zap.String("assessment_id", result.ID),
		zap.String("occupation_type", string(featureRec.OccupationType)),
		zap.String("risk_level", string(index.RiskLevel)),
		zap.Float64("overall", index.Overall),
		zap.Int("occupations_matched", len(occupations)),
	)

	return result, featureRec, nil
}
