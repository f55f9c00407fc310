// Package librarystats collects per-library statistics from media servers, extrapolating
// sampled results for large libraries, and assembles the current totals and daily history.
package librarystats

import "time"

// Limits bound the cost of collecting a single library
type Limits struct {
	// SamplingThreshold is the largest library fetched exhaustively
	SamplingThreshold int
	// SampleSize is the number of items fetched from a sampled library
	SampleSize int
	// MaxItemsToProcess caps an exhaustive fetch
	MaxItemsToProcess int
	// PageSize is the largest page requested from a server
	PageSize int
	// PageTimeout bounds every page request
	PageTimeout time.Duration
}

func DefaultLimits() Limits {
	return Limits{
		SamplingThreshold: 3000,
		SampleSize:        1500,
		MaxItemsToProcess: 50000,
		PageSize:          2000,
		PageTimeout:       time.Minute,
	}
}

// withDefaults replaces unset limits with their defaults
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.SamplingThreshold <= 0 {
		l.SamplingThreshold = d.SamplingThreshold
	}
	if l.SampleSize <= 0 {
		l.SampleSize = d.SampleSize
	}
	if l.MaxItemsToProcess <= 0 {
		l.MaxItemsToProcess = d.MaxItemsToProcess
	}
	if l.PageSize <= 0 {
		l.PageSize = d.PageSize
	}
	if l.PageTimeout <= 0 {
		l.PageTimeout = d.PageTimeout
	}
	return l
}

// Plan describes which items of a library are fetched
type Plan struct {
	Total    int
	MaxItems int
	Stride   int
	Sampled  bool
}

// NewPlan decides between an exhaustive fetch and an evenly spaced sample
func NewPlan(total int, limits Limits) Plan {
	limits = limits.withDefaults()
	if total < 0 {
		total = 0
	}

	if total <= limits.SamplingThreshold {
		return Plan{
			Total:    total,
			MaxItems: min(total, limits.MaxItemsToProcess),
			Stride:   1,
		}
	}

	return Plan{
		Total:    total,
		MaxItems: min(total, limits.SampleSize),
		Stride:   max(total/limits.SampleSize, 1),
		Sampled:  true,
	}
}

// Offset is the position of the next item after fetched items were read
func (p Plan) Offset(fetched int) int {
	if p.Sampled {
		return fetched * p.Stride
	}
	return fetched
}

// BatchSize is the page size of the next request. A sample is read one item per request
// so that it stays spread over the whole library. That is SampleSize requests per library,
// paced by the per-host limiter of the http client: the default 1500 items at 10 requests
// per second take at least 150s.
func (p Plan) BatchSize(fetched, pageSize int) int {
	remaining := p.MaxItems - fetched
	if remaining <= 0 {
		return 0
	}
	if p.Sampled {
		return 1
	}
	return min(pageSize, remaining)
}

// Offsets lists the offset of every item the plan reads
func (p Plan) Offsets() []int {
	offsets := make([]int, 0, p.MaxItems)
	for fetched := 0; fetched < p.MaxItems; fetched++ {
		offsets = append(offsets, p.Offset(fetched))
	}
	return offsets
}
