package floatutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	assert.Equal(t, 1.0, Clip(3.7, -1, 1))
	assert.Equal(t, -1.0, Clip(-3.7, -1, 1))
	assert.Equal(t, 0.25, Clip(0.25, -1, 1))
}

func TestArgMax_BreaksTiesTowardLowestIndex(t *testing.T) {
	assert.Equal(t, 0, ArgMax([]float64{2, 2, 2}))
	assert.Equal(t, 1, ArgMax([]float64{0, 5, 5, 3}))
	assert.Equal(t, 3, ArgMax([]float64{-3, -2, -5, -1}))
}

func TestMaxAbsDiff(t *testing.T) {
	assert.Equal(t, 0.0, MaxAbsDiff([]float64{1, 2}, []float64{1, 2}))
	assert.Equal(t, 4.0, MaxAbsDiff([]float64{1, -2}, []float64{1, 2}))
	assert.Equal(t, 0.0, MaxAbsDiff(nil, nil))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -2.0, Min(3, -2, 0.5))
	assert.Equal(t, 3.0, Max(3, -2, 0.5))
}
