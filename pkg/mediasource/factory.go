package mediasource

import (
	"fmt"
	"strconv"

	"github.com/kasuboski/mediastat/pkg/cache"
	mhttp "github.com/kasuboski/mediastat/pkg/http"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
	gobreaker "github.com/sony/gobreaker/v2"
)

type Factory interface {
	NewSource(server model.MediaServer) (Source, error)
}

// SourceFactory builds sources for registered servers. Breakers are kept per server id
// so an unhealthy server stays open across collection runs.
type SourceFactory struct {
	httpClient mhttp.HTTPClient
	breakers   *cache.Cache[int32, *gobreaker.CircuitBreaker[any]]
	settings   BreakerSettings
}

type FactoryOption func(*SourceFactory)

// WithBreakerSettings overrides the default circuit breaker settings
func WithBreakerSettings(settings BreakerSettings) FactoryOption {
	return func(f *SourceFactory) {
		f.settings = settings
	}
}

func NewSourceFactory(httpClient mhttp.HTTPClient, opts ...FactoryOption) *SourceFactory {
	f := &SourceFactory{
		httpClient: httpClient,
		breakers:   cache.New[int32, *gobreaker.CircuitBreaker[any]](),
		settings:   DefaultBreakerSettings(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// NewSource returns a source for the given server wrapped in that server's circuit breaker
func (f *SourceFactory) NewSource(server model.MediaServer) (Source, error) {
	var (
		source Source
		err    error
	)

	switch Kind(server.Type) {
	case KindPlex:
		source, err = NewPlexSource(server.URL, server.Token, f.httpClient)
	case KindJellyfin, KindEmby:
		source, err = NewJellyfinSource(Kind(server.Type), server.URL, server.Token, f.httpClient)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, server.Type)
	}
	if err != nil {
		return nil, err
	}

	breaker := f.breakers.GetOrCreate(server.ID, func() *gobreaker.CircuitBreaker[any] {
		return newBreaker(breakerName(server), f.settings)
	})

	return newBreakerSource(source, breaker), nil
}

// Forget drops the breaker of a removed server
func (f *SourceFactory) Forget(serverID int32) {
	f.breakers.Delete(serverID)
}

func breakerName(server model.MediaServer) string {
	return server.Type + "-" + strconv.Itoa(int(server.ID))
}
