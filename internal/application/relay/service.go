package relay

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kgsde/graphdb-relay/pkg/adapters/graphdb"
)

// probeQuery is the fixed SPARQL statement used to verify that a store
// answers queries at all.
const probeQuery = "SELECT (COUNT(*) as ?count) WHERE { ?s ?p ?o }"

// Metric outcome labels.
const (
	outcomeSuccess         = "success"
	outcomeUpstreamError   = "upstream_error"
	outcomeConnectionError = "connection_error"
)

// Store is the upstream triple-store surface the service relays to.
type Store interface {
	Query(ctx context.Context, sparql string, opts graphdb.QueryOptions) (json.RawMessage, error)
	ListRepositories(ctx context.Context, endpoint string) (json.RawMessage, error)
}

// MetricsCollector records relay operation outcomes.
type MetricsCollector interface {
	RecordQuery(outcome string, duration time.Duration)
	RecordConnectionTest(outcome string, duration time.Duration)
	RecordRepositoryListing(outcome string, duration time.Duration)
}

// Service relays SPARQL queries and connection probes to a GraphDB store.
// It holds no per-request state; every call carries everything needed to
// resolve its upstream target.
type Service struct {
	store   Store
	metrics MetricsCollector
	logger  *zap.Logger
}

// NewService creates a new relay service
func NewService(store Store, metrics MetricsCollector, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// ExecuteQuery relays one SPARQL query and returns the raw result document.
// The query text is forwarded unchanged.
func (s *Service) ExecuteQuery(ctx context.Context, sparql string, opts graphdb.QueryOptions) (json.RawMessage, error) {
	// A client disconnect must not cancel the in-flight upstream call;
	// only the store client's timeout bounds it.
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	results, err := s.store.Query(ctx, sparql, opts)
	elapsed := time.Since(start)

	if err != nil {
		outcome := errorOutcome(err)
		s.metrics.RecordQuery(outcome, elapsed)
		s.logger.Error("query relay failed",
			zap.String("outcome", outcome),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, err
	}

	s.metrics.RecordQuery(outcomeSuccess, elapsed)
	s.logger.Info("query relayed",
		zap.Duration("elapsed", elapsed),
		zap.Int("result_bytes", len(results)))

	return results, nil
}

// TestConnection verifies that a store answers SPARQL queries by running a
// fixed COUNT probe against it. Endpoint and Repository must be set in
// opts; process defaults never apply here.
func (s *Service) TestConnection(ctx context.Context, opts graphdb.QueryOptions) (json.RawMessage, error) {
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	result, err := s.store.Query(ctx, probeQuery, opts)
	elapsed := time.Since(start)

	if err != nil {
		outcome := errorOutcome(err)
		s.metrics.RecordConnectionTest(outcome, elapsed)
		s.logger.Warn("connection test failed",
			zap.String("endpoint", opts.Endpoint),
			zap.String("repository", opts.Repository),
			zap.String("outcome", outcome),
			zap.Error(err))
		return nil, err
	}

	s.metrics.RecordConnectionTest(outcomeSuccess, elapsed)
	s.logger.Info("connection test succeeded",
		zap.String("endpoint", opts.Endpoint),
		zap.String("repository", opts.Repository),
		zap.Duration("elapsed", elapsed))

	return result, nil
}

// ListRepositories relays a repository listing. An empty endpoint lets the
// store client fall back to its configured default.
func (s *Service) ListRepositories(ctx context.Context, endpoint string) (json.RawMessage, error) {
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	repositories, err := s.store.ListRepositories(ctx, endpoint)
	elapsed := time.Since(start)

	if err != nil {
		outcome := errorOutcome(err)
		s.metrics.RecordRepositoryListing(outcome, elapsed)
		s.logger.Error("repository listing failed",
			zap.String("endpoint", endpoint),
			zap.String("outcome", outcome),
			zap.Error(err))
		return nil, err
	}

	s.metrics.RecordRepositoryListing(outcomeSuccess, elapsed)
	s.logger.Info("repositories listed",
		zap.Duration("elapsed", elapsed))

	return repositories, nil
}

// errorOutcome maps a relay error onto its metric label. The store client
// produces exactly two kinds: RemoteQueryError for non-200 answers and
// ConnectionError for everything else.
func errorOutcome(err error) string {
	var remoteErr *graphdb.RemoteQueryError
	if errors.As(err, &remoteErr) {
		return outcomeUpstreamError
	}
	return outcomeConnectionError
}
