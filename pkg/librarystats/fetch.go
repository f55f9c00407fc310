package librarystats

import (
	"context"

	"github.com/kasuboski/mediastat/pkg/mediasource"
)

// fetchLibrary reads the items selected by plan and folds them into acc. It returns the number
// of items folded. A failed page ends the walk and the error is returned with the partial count.
func fetchLibrary(ctx context.Context, source mediasource.Source, library mediasource.Library, plan Plan, limits Limits, extractor Extractor, acc *accumulator) (int, error) {
	fetched := 0
	for fetched < plan.MaxItems {
		batch := plan.BatchSize(fetched, limits.PageSize)
		items, err := fetchPage(ctx, source, library, plan.Offset(fetched), batch, limits)
		if err != nil {
			return fetched, err
		}
		if len(items) == 0 {
			break
		}
		if len(items) > batch {
			items = items[:batch]
		}

		for _, item := range items {
			acc.add(extractor.Extract(item))
		}
		fetched += len(items)
	}

	return fetched, nil
}

func fetchPage(ctx context.Context, source mediasource.Source, library mediasource.Library, offset, limit int, limits Limits) ([]mediasource.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, limits.PageTimeout)
	defer cancel()

	return source.FetchItems(ctx, library, offset, limit)
}
