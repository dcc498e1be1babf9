package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageMajorHeadloss_FixedDivisor(t *testing.T) {
	three := []ModelValue{
		{Model: ModelSerghides, Value: 0.6},
		{Model: ModelFang, Value: 0.61},
		{Model: ModelBNT, Value: 0.48},
	}
	assert.InDelta(t, (0.6+0.61+0.48)/3, AverageMajorHeadloss(three, AverageFixedDivisor), 1e-12)

	// The divisor stays 3 even when a single model ran.
	one := []ModelValue{{Model: ModelSerghides, Value: 0.6}}
	assert.InDelta(t, 0.2, AverageMajorHeadloss(one, AverageFixedDivisor), 1e-12)

	assert.Equal(t, 0.0, AverageMajorHeadloss(nil, AverageFixedDivisor))
}

func TestAverageMajorHeadloss_Mean(t *testing.T) {
	one := []ModelValue{{Model: ModelSerghides, Value: 0.6}}
	assert.InDelta(t, 0.6, AverageMajorHeadloss(one, AverageOfModels), 1e-12)

	assert.True(t, math.IsNaN(AverageMajorHeadloss(nil, AverageOfModels)))
}

func TestParseAveragePolicy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AveragePolicy
		wantErr  bool
	}{
		{"fixed", "fixed", AverageFixedDivisor, false},
		{"mean", "mean", AverageOfModels, false},
		{"empty", "", AverageFixedDivisor, true},
		{"unknown", "median", AverageFixedDivisor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAveragePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAveragePolicy_String(t *testing.T) {
	assert.Equal(t, "fixed", AverageFixedDivisor.String())
	assert.Equal(t, "mean", AverageOfModels.String())
}
