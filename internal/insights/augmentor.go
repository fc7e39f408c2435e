package insights

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Shaolin23/adence-ai/internal/llm"
	"github.com/Shaolin23/adence-ai/internal/metrics"
	"github.com/Shaolin23/adence-ai/internal/types"
)

// ErrNoClient indicates the augmentor was constructed without a
// text-generation client. This is a configuration failure surfaced at the
// boundary, never a silent fallback.
var ErrNoClient = errors.New("insights: text-generation client is required")

// Gemini Flash pricing, in tenths of microdollars per token.
const (
	promptTokenCost = 3
	outputTokenCost = 25
	costScale       = 1e7
)

// Options configure the augmentor's cache and batching behavior.
type Options struct {
	CacheSize   int
	CacheTTL    time.Duration
	BatchSize   int
	BatchWindow time.Duration
	Tier        llm.ModelTier
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		CacheSize:   128,
		CacheTTL:    30 * time.Minute,
		BatchSize:   4,
		BatchWindow: 75 * time.Millisecond,
		Tier:        llm.TierStandard,
	}
}

// Metrics is an observability snapshot of the augmentor's state.
type Metrics struct {
	RequestCount int64   `json:"request_count"`
	CacheHitRate float64 `json:"cache_hit_rate"`
	TotalTokens  int64   `json:"total_tokens"`
	TotalCost    float64 `json:"total_cost"`
	CacheSize    int     `json:"cache_size"`
	QueueSize    int     `json:"queue_size"`
}

// Augmentor owns the insight cache and the batching queue. It is constructed
// once at startup and shared by reference across requests; both structures
// are safe for concurrent use.
type Augmentor struct {
	client  llm.Client
	cache   *insightCache
	batcher *batcher
	tier    llm.ModelTier
	logger  *zap.Logger

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	totalTokens  atomic.Int64
	totalCost    atomic.Int64
}

// New constructs an augmentor around a configured client.
func New(client llm.Client, opts Options, logger *zap.Logger) (*Augmentor, error) {
	if client == nil {
		return nil, ErrNoClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	defaults := DefaultOptions()
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaults.CacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaults.CacheTTL
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaults.BatchSize
	}
	if opts.BatchWindow <= 0 {
		opts.BatchWindow = defaults.BatchWindow
	}
	if opts.Tier == "" {
		opts.Tier = defaults.Tier
	}

	a := &Augmentor{
		client: client,
		cache:  newInsightCache(opts.CacheSize, opts.CacheTTL),
		tier:   opts.Tier,
		logger: logger,
	}
	a.batcher = newBatcher(opts.BatchSize, opts.BatchWindow, a.dispatchBatch)
	return a, nil
}

// Augment produces insights for an assessment. It always returns a usable
// AIInsights value: external failures and unparseable responses degrade to
// deterministic local synthesis, never to a missing-insights state.
func (a *Augmentor) Augment(ctx context.Context, input types.AssessmentInput, base *types.AssessmentResult, features types.FeatureRecord) types.AIInsights {
	a.requestCount.Add(1)
	metrics.InsightRequestsTotal.Inc()

	profile := extractProfile(input.Content, base)
	key := fingerprint(profile)

	if data, ok := a.cache.Get(key); ok {
		a.cacheHits.Add(1)
		metrics.InsightCacheHitsTotal.Inc()
		return data
	}
	a.cacheMisses.Add(1)
	metrics.InsightCacheMissesTotal.Inc()

	req := &request{
		ctx:      ctx,
		profile:  profile,
		features: features,
		base:     base,
		reply:    make(chan result, 1),
	}

	if !a.batcher.enqueue(req) {
		return synthesizeInsights(profile, base, features)
	}

	select {
	case res := <-req.reply:
		if res.insights.Source != types.InsightSourceSynthetic {
			a.cache.Put(key, res.insights)
		}
		return res.insights
	case <-ctx.Done():
		return synthesizeInsights(profile, base, features)
	}
}

// Close stops the batching loop. Requests enqueued after Close resolve with
// synthetic insights.
func (a *Augmentor) Close() {
	a.batcher.close()
}

// Snapshot returns current observability counters.
func (a *Augmentor) Snapshot() Metrics {
	hits := a.cacheHits.Load()
	misses := a.cacheMisses.Load()
	hitRate := 0.0
	if hits+misses > 0 {
		hitRate = float64(hits) / float64(hits+misses)
	}

	return Metrics{
		RequestCount: a.requestCount.Load(),
		CacheHitRate: hitRate,
		TotalTokens:  a.totalTokens.Load(),
		TotalCost:    float64(a.totalCost.Load()) / costScale,
		CacheSize:    a.cache.Len(),
		QueueSize:    a.batcher.queueDepth(),
	}
}

// dispatchBatch fans a drained batch out as parallel external calls and fans
// results back in over each request's reply channel. When the grouped
// dispatch reports failure, unresolved members are re-dispatched individually
// rather than failing the whole batch.
func (a *Augmentor) dispatchBatch(batch []*request) {
	metrics.InsightBatchSize.Observe(float64(len(batch)))

	delivered := make([]atomic.Bool, len(batch))
	var g errgroup.Group

	for i, req := range batch {
		i, req := i, req
		g.Go(func() error {
			ins, err := a.generateOne(req)
			if err != nil {
				return err
			}
			delivered[i].Store(true)
			req.reply <- result{insights: ins}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		return
	}
	a.logger.Warn("batched insight dispatch failed, re-dispatching members individually", zap.Error(err))

	for i, req := range batch {
		if delivered[i].Load() {
			continue
		}
		ins, err := a.generateOne(req)
		if err != nil {
			a.logger.Warn("individual insight dispatch failed, synthesizing fallback", zap.Error(err))
			ins = synthesizeInsights(req.profile, req.base, req.features)
		}
		req.reply <- result{insights: ins}
	}
}

// generateOne performs exactly one external call for a request. A transport
// failure is returned to the dispatcher; an unparseable response is absorbed
// here as synthesized fallback insights.
func (a *Augmentor) generateOne(req *request) (types.AIInsights, error) {
	system, user := buildPrompts(req.profile, req.base, req.features)

	resp, err := a.client.Generate(req.ctx, llm.Request{
		SystemPrompt: system,
		UserPrompt:   user,
		MaxTokens:    insightMaxTokens,
		Temperature:  insightTemperature,
	}, a.tier)
	if err != nil {
		return types.AIInsights{}, err
	}

	a.accountUsage(resp)

	ins, perr := parseInsights(resp.Text)
	if perr != nil {
		a.logger.Warn("insights response unparseable, synthesizing fallback", zap.Error(perr))
		return synthesizeInsights(req.profile, req.base, req.features), nil
	}
	return ins, nil
}

func (a *Augmentor) accountUsage(resp *llm.Response) {
	tokens := int64(resp.PromptTokens + resp.OutputTokens)
	a.totalTokens.Add(tokens)
	a.totalCost.Add(int64(resp.PromptTokens)*promptTokenCost + int64(resp.OutputTokens)*outputTokenCost)
	metrics.InsightTokensTotal.Add(float64(tokens))
}
