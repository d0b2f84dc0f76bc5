// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	jobqueue "github.com/adrata/monaco/internal/adapters/mq/queue"
	workerpool "github.com/adrata/monaco/internal/adapters/mq/worker"
	"github.com/adrata/monaco/internal/adapters/repository"
	"github.com/adrata/monaco/internal/domain/dedupe"
	"github.com/adrata/monaco/internal/domain/engine"
	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/roster"
	"github.com/adrata/monaco/internal/domain/threshold"
	"github.com/adrata/monaco/internal/domain/tier"
	"github.com/adrata/monaco/pkg/logger"
	"github.com/adrata/monaco/pkg/metrics"
)

// Default service configuration.
const (
	defaultQueueSize  = 10_000
	defaultDedupeSize = 50_000
	defaultStoreSize  = 10_000
)

// Service implements composition, submission, and lookup for the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	deduper    dedupe.Deduper
	jobQueue   jobqueue.Queue
	workerPool *workerpool.Pool
	resolver   tier.Resolver
	targets    tier.TargetProvider

	// Configuration
	workerCount   int
	queueSize     int
	dedupeSize    int
	storeSize     int
	defaultBounds model.GroupBounds
	priorities    threshold.Priorities

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the job queue buffer size.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the maximum number of request ids remembered.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithStoreSize sets the maximum number of retained results.
func WithStoreSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.storeSize = size
		}
	}
}

// WithDefaultBounds sets the group size bounds used when a request
// does not carry its own.
func WithDefaultBounds(bounds model.GroupBounds) Option {
	return func(s *Service) {
		s.defaultBounds = bounds
	}
}

// WithPriorities sets the default role priority weights.
func WithPriorities(p threshold.Priorities) Option {
	return func(s *Service) {
		if len(p) > 0 {
			s.priorities = threshold.Merge(p)
		}
	}
}

// WithResolver sets the company tier resolver.
func WithResolver(r tier.Resolver) Option {
	return func(s *Service) {
		if r != nil {
			s.resolver = r
		}
	}
}

// WithTargetProvider sets the per-role target provider.
func WithTargetProvider(tp tier.TargetProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.targets = tp
		}
	}
}

// WithLogger sets the logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:   runtime.NumCPU() * 2,
		queueSize:     defaultQueueSize,
		dedupeSize:    defaultDedupeSize,
		storeSize:     defaultStoreSize,
		defaultBounds: model.GroupBounds{Min: 5, Max: 12, Ideal: 8},
		priorities:    threshold.DefaultPriorities(),
		resolver:      tier.NewStaticResolver(),
		targets:       tier.NewStaticTargets(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting composition service...")

	s.store = repository.NewMemStore(ctx, repository.WithMaxResults(s.storeSize))
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.jobQueue = jobqueue.NewInMemoryQueue(jobqueue.WithCapacity(s.queueSize))

	s.workerPool = workerpool.NewPool(s.workerCount, s.jobQueue, s, s.store)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "composition service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping composition service...")

	if s.jobQueue != nil {
		_ = s.jobQueue.Close()
	}
	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "composition service stopped")
}

// Compose runs one full composition synchronously: build an engine for the
// deal, assign roles, select the optimal group, validate, and attach roster
// context. The request's bounds and priorities fall back to the service
// defaults when absent.
func (s *Service) Compose(ctx context.Context, req model.CompositionRequest) (model.CompositionResult, error) {
	start := time.Now()

	priorities := s.priorities
	if len(req.Priorities) > 0 {
		priorities = threshold.Merge(req.Priorities)
	}

	eng, err := engine.New(ctx, req.Deal, s.resolver,
		engine.WithPriorities(priorities),
		engine.WithTargetProvider(s.targets),
	)
	if err != nil {
		metrics.RecordCompositionError()
		return model.CompositionResult{}, fmt.Errorf("build engine: %w", err)
	}

	bounds := s.defaultBounds
	if req.Bounds != nil {
		bounds = *req.Bounds
	}

	assigned := eng.AssignRoles(ctx, req.Candidates)
	group := eng.SelectOptimalBuyerGroup(ctx, assigned, bounds)
	validation := eng.ValidateBuyerGroup(group)
	dist := eng.GetRoleDistribution(group)

	result := model.CompositionResult{
		CompanyName:  req.CompanyName,
		Tier:         string(eng.Tier()),
		Assigned:     assigned,
		Group:        group,
		Distribution: dist,
		Validation:   validation,
		Roster:       roster.Analyze(req.Candidates),
		CompletedAt:  time.Now().UTC(),
	}

	metrics.RecordComposition()
	metrics.RecordCompositionLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordGroupSize(len(group))
	for _, role := range model.AllRoles() {
		metrics.UpdateRoleDistribution(string(role), dist[role])
	}

	s.logger.Debug(ctx, "composition completed",
		logger.String("company", req.CompanyName),
		logger.String("tier", result.Tier),
		logger.Int("assigned", len(assigned)),
		logger.Int("selected", len(group)),
	)
	return result, nil
}

// SeenAndRecord atomically checks if a request id was seen and records it if
// not. Returns true if the request was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordRequestDuplicate()
	}
	return seen
}

// Unrecord removes a request id from the seen list, allowing a retry.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Size returns the number of remembered request ids.
func (s *Service) Size() int64 {
	return s.deduper.Size()
}

// Enqueue submits a composition job for asynchronous processing.
// Returns false on backpressure.
func (s *Service) Enqueue(ctx context.Context, job model.Job) bool {
	return s.jobQueue.Enqueue(ctx, job)
}

// Result returns the stored result for a job id.
func (s *Service) Result(ctx context.Context, jobID string) (model.CompositionResult, error) {
	return s.store.Get(ctx, jobID)
}

// Recent returns up to n recent composition results.
func (s *Service) Recent(ctx context.Context, n int) ([]model.CompositionResult, error) {
	return s.store.Recent(ctx, n)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}
	if s.started {
		stats["queueLength"] = s.jobQueue.Len(ctx)
		stats["storedResults"] = s.store.Count(ctx)
		stats["seenRequests"] = s.deduper.Size()
	}
	return stats
}
