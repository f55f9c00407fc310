package librarystats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  Plan
	}{
		{
			name:  "empty library",
			total: 0,
			want:  Plan{Total: 0, MaxItems: 0, Stride: 1},
		},
		{
			name:  "negative count is treated as empty",
			total: -5,
			want:  Plan{Total: 0, MaxItems: 0, Stride: 1},
		},
		{
			name:  "small library",
			total: 120,
			want:  Plan{Total: 120, MaxItems: 120, Stride: 1},
		},
		{
			name:  "at threshold is exhaustive",
			total: 3000,
			want:  Plan{Total: 3000, MaxItems: 3000, Stride: 1},
		},
		{
			name:  "above threshold is sampled",
			total: 3001,
			want:  Plan{Total: 3001, MaxItems: 1500, Stride: 2, Sampled: true},
		},
		{
			name:  "ten thousand",
			total: 10000,
			want:  Plan{Total: 10000, MaxItems: 1500, Stride: 6, Sampled: true},
		},
		{
			name:  "huge library",
			total: 1_000_000,
			want:  Plan{Total: 1_000_000, MaxItems: 1500, Stride: 666, Sampled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPlan(tt.total, DefaultLimits()))
		})
	}
}

func TestNewPlan_MaxItemsCap(t *testing.T) {
	limits := Limits{SamplingThreshold: 100_000, MaxItemsToProcess: 500}
	plan := NewPlan(2000, limits)
	assert.False(t, plan.Sampled)
	assert.Equal(t, 500, plan.MaxItems)
}

func TestLimits_withDefaults(t *testing.T) {
	assert.Equal(t, DefaultLimits(), Limits{}.withDefaults())

	custom := Limits{SamplingThreshold: 10, SampleSize: 5, MaxItemsToProcess: 20, PageSize: 3, PageTimeout: time.Second}
	assert.Equal(t, custom, custom.withDefaults())
}

func TestPlan_Offsets(t *testing.T) {
	for _, total := range []int{0, 1, 2999, 3000, 3001, 4499, 4500, 10000, 123_457} {
		plan := NewPlan(total, DefaultLimits())
		offsets := plan.Offsets()

		assert.Len(t, offsets, plan.MaxItems)
		for i, offset := range offsets {
			assert.LessOrEqual(t, offset, total-1, "total %d offset %d", total, i)
			if i > 0 {
				assert.Equal(t, plan.Stride, offset-offsets[i-1])
			}
		}
	}
}

func TestPlan_BatchSize(t *testing.T) {
	exhaustive := NewPlan(2500, DefaultLimits())
	assert.Equal(t, 2000, exhaustive.BatchSize(0, 2000))
	assert.Equal(t, 500, exhaustive.BatchSize(2000, 2000))
	assert.Equal(t, 0, exhaustive.BatchSize(2500, 2000))

	sampled := NewPlan(10000, DefaultLimits())
	assert.Equal(t, 1, sampled.BatchSize(0, 2000))
	assert.Equal(t, 1, sampled.BatchSize(1499, 2000))
	assert.Equal(t, 0, sampled.BatchSize(1500, 2000))
	assert.Equal(t, 6, sampled.Offset(1))
	assert.Equal(t, 1499*6, sampled.Offset(1499))
}
