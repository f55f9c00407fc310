package librarystats

import (
	"context"
	"time"

	"github.com/kasuboski/mediastat/pkg/cache"
	"github.com/kasuboski/mediastat/pkg/storage"
)

type summaryCacheKey struct{}

// SummaryKey identifies a memoised summary. AllServers is set when no server filter was given.
// Date is the UTC day the history window ends on.
type SummaryKey struct {
	ServerID   int64
	AllServers bool
	Days       int
	Date       string
}

// SummaryCache memoises reader summaries until the next write to the statistics
type SummaryCache = cache.Cache[SummaryKey, *Summary]

func NewSummaryCache() *SummaryCache {
	return cache.New[SummaryKey, *Summary]()
}

// WithSummaryCache returns a copy of ctx carrying c
func WithSummaryCache(ctx context.Context, c *SummaryCache) context.Context {
	return context.WithValue(ctx, summaryCacheKey{}, c)
}

// SummaryCacheFromCtx returns the cache carried by ctx, if any
func SummaryCacheFromCtx(ctx context.Context) (*SummaryCache, bool) {
	c, ok := ctx.Value(summaryCacheKey{}).(*SummaryCache)
	return c, ok && c != nil
}

// InvalidateSummaries drops every summary memoised in the cache carried by ctx
func InvalidateSummaries(ctx context.Context) {
	if c, ok := SummaryCacheFromCtx(ctx); ok {
		c.Clear()
	}
}

func summaryKey(serverID *int64, days int, now time.Time) SummaryKey {
	key := SummaryKey{Days: days, Date: storage.SnapshotDate(now)}
	if serverID == nil {
		key.AllServers = true
	} else {
		key.ServerID = *serverID
	}
	return key
}
