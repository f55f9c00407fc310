package mediasource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

type BreakerSettings struct {
	// MaxRequests allowed while half-open
	MaxRequests uint32
	// Interval after which failure counts reset while closed
	Interval time.Duration
	// Timeout before an open breaker lets a probe through
	Timeout time.Duration
	// ConsecutiveFailures that open the breaker
	ConsecutiveFailures uint32
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             2 * time.Minute,
		ConsecutiveFailures: 5,
	}
}

func newBreaker(name string, settings BreakerSettings) *gobreaker.CircuitBreaker[any] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		// a run cancelled by its caller says nothing about the server
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Infow("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

// breakerSource guards every call to a source with a circuit breaker
type breakerSource struct {
	source Source
	cb     *gobreaker.CircuitBreaker[any]
}

func newBreakerSource(source Source, cb *gobreaker.CircuitBreaker[any]) *breakerSource {
	return &breakerSource{source: source, cb: cb}
}

func (b *breakerSource) Kind() Kind {
	return b.source.Kind()
}

func (b *breakerSource) ListLibraries(ctx context.Context) ([]Library, error) {
	return castResult[[]Library](b.execute(func() (any, error) {
		return b.source.ListLibraries(ctx)
	}))
}

func (b *breakerSource) CountItems(ctx context.Context, library Library) (int, error) {
	return castResult[int](b.execute(func() (any, error) {
		return b.source.CountItems(ctx, library)
	}))
}

func (b *breakerSource) FetchItems(ctx context.Context, library Library, offset, limit int) ([]Item, error) {
	return castResult[[]Item](b.execute(func() (any, error) {
		return b.source.FetchItems(ctx, library, offset, limit)
	}))
}

func (b *breakerSource) execute(fn func() (any, error)) (any, error) {
	name := b.cb.Name()

	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %s: %w", ErrCircuitOpen, name, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
	return result, nil
}

func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
