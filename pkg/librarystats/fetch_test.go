package librarystats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kasuboski/mediastat/pkg/mediasource"
	"github.com/kasuboski/mediastat/pkg/mediasource/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func movieItems(n int, size int64) []mediasource.Item {
	items := make([]mediasource.Item, n)
	for i := range items {
		items[i] = mediasource.Item{Plex: &mediasource.PlexMetadata{
			Duration: 1000,
			Media:    []mediasource.PlexMedia{{Part: []mediasource.PlexPart{{Size: size}}}},
		}}
	}
	return items
}

func TestFetchLibrary_Exhaustive(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	library := mediasource.Library{ID: "1", Type: "movie"}
	limits := DefaultLimits()
	limits.PageSize = 2

	gomock.InOrder(
		source.EXPECT().FetchItems(gomock.Any(), library, 0, 2).Return(movieItems(2, 10), nil),
		source.EXPECT().FetchItems(gomock.Any(), library, 2, 2).Return(movieItems(2, 10), nil),
		source.EXPECT().FetchItems(gomock.Any(), library, 4, 1).Return(movieItems(1, 10), nil),
	)

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(context.Background(), source, library, NewPlan(5, limits), limits, PlexExtractor{}, acc)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched)
	assert.Equal(t, int64(50), acc.sizeBytes)
}

func TestFetchLibrary_EmptyPageEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	library := mediasource.Library{ID: "1", Type: "movie"}
	limits := DefaultLimits()

	source.EXPECT().FetchItems(gomock.Any(), library, 0, 10).Return(movieItems(4, 1), nil)
	source.EXPECT().FetchItems(gomock.Any(), library, 4, 6).Return(nil, nil)

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(context.Background(), source, library, NewPlan(10, limits), limits, PlexExtractor{}, acc)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched)
}

func TestFetchLibrary_Sampled(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	library := mediasource.Library{ID: "1", Type: "movie"}
	limits := DefaultLimits()
	limits.SamplingThreshold = 10
	limits.SampleSize = 4

	plan := NewPlan(17, limits)
	require.Equal(t, 4, plan.Stride)

	for _, offset := range []int{0, 4, 8, 12} {
		source.EXPECT().FetchItems(gomock.Any(), library, offset, 1).Return(movieItems(1, 1), nil)
	}

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(context.Background(), source, library, plan, limits, PlexExtractor{}, acc)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched)
}

func TestFetchLibrary_OversizedPageIsTrimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	library := mediasource.Library{ID: "1", Type: "movie"}
	limits := DefaultLimits()
	limits.SamplingThreshold = 10
	limits.SampleSize = 2

	source.EXPECT().FetchItems(gomock.Any(), library, gomock.Any(), 1).Return(movieItems(50, 1), nil).Times(2)

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(context.Background(), source, library, NewPlan(20, limits), limits, PlexExtractor{}, acc)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched)
	assert.Equal(t, int64(2), acc.items)
}

func TestFetchLibrary_ErrorKeepsPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	library := mediasource.Library{ID: "1", Type: "movie"}
	limits := DefaultLimits()
	limits.PageSize = 3
	fetchErr := errors.New("connection reset")

	gomock.InOrder(
		source.EXPECT().FetchItems(gomock.Any(), library, 0, 3).Return(movieItems(3, 7), nil),
		source.EXPECT().FetchItems(gomock.Any(), library, 3, 3).Return(nil, fetchErr),
	)

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(context.Background(), source, library, NewPlan(9, limits), limits, PlexExtractor{}, acc)
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 3, fetched)
	assert.Equal(t, int64(21), acc.sizeBytes)
}

func TestFetchLibrary_PageTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	library := mediasource.Library{ID: "1", Type: "movie"}
	limits := DefaultLimits()
	limits.PageTimeout = 10 * time.Millisecond

	source.EXPECT().FetchItems(gomock.Any(), library, 0, 5).DoAndReturn(
		func(ctx context.Context, _ mediasource.Library, _, _ int) ([]mediasource.Item, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(context.Background(), source, library, NewPlan(5, limits), limits, PlexExtractor{}, acc)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, fetched)
}

func TestFetchLibrary_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	library := mediasource.Library{ID: "1", Type: "movie"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(ctx, source, library, NewPlan(5, DefaultLimits()), DefaultLimits(), PlexExtractor{}, acc)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fetched)
}
