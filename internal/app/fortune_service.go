// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates domain rules and storage
// through ports and knows nothing about HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/fortune-service/internal/domain"
	"github.com/jsamuelsen/fortune-service/internal/platform/logging"
	"github.com/jsamuelsen/fortune-service/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/fortune-service/internal/app"

// FortuneService orchestrates the fortune use cases.
type FortuneService struct {
	repo    ports.FortuneRepository
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// FortuneServiceConfig contains configuration for the fortune service.
type FortuneServiceConfig struct {
	// Repository is required.
	Repository ports.FortuneRepository

	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger

	// Metrics defaults to a no-op set when nil.
	Metrics *Metrics
}

// NewFortuneService creates a new fortune service with the provided dependencies.
// Panics if Repository is nil.
func NewFortuneService(cfg FortuneServiceConfig) *FortuneService {
	if cfg.Repository == nil {
		panic("FortuneService: Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NopMetrics()
	}

	return &FortuneService{
		repo:    cfg.Repository,
		logger:  logger.With(slog.String("component", "app.FortuneService")),
		metrics: metrics,
		tracer:  otel.Tracer(instrumentationName),
	}
}

// GetRandomFortune returns one stored fortune chosen uniformly at random.
// Returns a domain.NotFoundError when the store is empty.
func (s *FortuneService) GetRandomFortune(ctx context.Context) (*domain.Fortune, error) {
	ctx, span := s.tracer.Start(ctx, "FortuneService.GetRandomFortune")
	defer span.End()

	logger := s.loggerFor(ctx)
	logger.Log(ctx, logging.LevelTrace, "fetching random fortune")

	f, err := s.repo.Random(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.observeRandom(resultEmpty)
			logger.WarnContext(ctx, "no fortunes stored")
			return nil, domain.NewNotFoundError("fortune", "")
		}

		s.metrics.observeRandom(resultError)
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "failed to fetch random fortune", slog.Any("error", err))

		return nil, fmt.Errorf("fetching random fortune: %w", err)
	}

	s.metrics.observeRandom(resultHit)
	span.SetAttributes(attribute.Int64("fortune.id", f.ID))
	logger.DebugContext(ctx, "fetched random fortune", slog.Int64("fortune_id", f.ID))

	return f, nil
}

// CreateFortune validates and stores a new fortune.
// Returns a *domain.ValidationError when text is blank; nothing is stored then.
func (s *FortuneService) CreateFortune(ctx context.Context, text string) (*domain.Fortune, error) {
	ctx, span := s.tracer.Start(ctx, "FortuneService.CreateFortune")
	defer span.End()

	logger := s.loggerFor(ctx)

	f, err := domain.NewFortune(text)
	if err != nil {
		s.metrics.validationFailures.Inc()
		logger.InfoContext(ctx, "rejected fortune",
			slog.Any("errors", domain.ValidationMessages(err)),
		)

		return nil, err
	}

	if err := s.repo.Create(ctx, f); err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "failed to store fortune", slog.Any("error", err))

		return nil, fmt.Errorf("storing fortune: %w", err)
	}

	s.metrics.created.Inc()
	span.SetAttributes(attribute.Int64("fortune.id", f.ID))
	logger.InfoContext(ctx, "created fortune", slog.String("fortune_id", strconv.FormatInt(f.ID, 10)))

	return f, nil
}

// Seed stores texts when the store holds no fortunes yet. It returns the
// number of fortunes inserted. Blank entries are skipped.
func (s *FortuneService) Seed(ctx context.Context, texts []string) (int, error) {
	if len(texts) == 0 {
		return 0, nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting fortunes: %w", err)
	}

	if n > 0 {
		s.logger.DebugContext(ctx, "store already seeded", slog.Int64("count", n))
		return 0, nil
	}

	inserted := 0

	for _, text := range texts {
		f, err := domain.NewFortune(text)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping blank seed fortune")
			continue
		}

		if err := s.repo.Create(ctx, f); err != nil {
			return inserted, fmt.Errorf("seeding fortune: %w", err)
		}

		inserted++
	}

	s.logger.InfoContext(ctx, "seeded fortunes", slog.Int("count", inserted))

	return inserted, nil
}

// loggerFor prefers the request-scoped logger so request ids are attached.
func (s *FortuneService) loggerFor(ctx context.Context) *slog.Logger {
	if logging.HasLogger(ctx) {
		return logging.FromContext(ctx).With(slog.String("component", "app.FortuneService"))
	}

	return s.logger
}
