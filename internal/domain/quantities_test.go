package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowVelocity(t *testing.T) {
	// 0.1 m³/s through a 300 mm pipe.
	v := FlowVelocity(0.1, 0.3)
	assert.InDelta(t, 1.4147106052612919, v, 1e-12)
}

func TestFlowVelocity_ZeroDiameter(t *testing.T) {
	// No defensive validation: division by zero follows IEEE-754.
	assert.True(t, math.IsInf(FlowVelocity(0.1, 0), 1))
}

func TestRelativeRoughness(t *testing.T) {
	assert.Equal(t, 0.0005, RelativeRoughness(0.00015, 0.3))
	assert.Equal(t, 0.0, RelativeRoughness(0, 0.3))
}

func TestReynoldsNumber(t *testing.T) {
	re := ReynoldsNumber(1000, 1.4147106052612919, 0.3, 0.001)
	assert.InDelta(t, 424413.1815783875, re, 1e-6)
}

func TestCheckReynoldsRange(t *testing.T) {
	t.Run("above floor", func(t *testing.T) {
		assert.NoError(t, CheckReynoldsRange(2500.01))
	})

	t.Run("at floor", func(t *testing.T) {
		err := CheckReynoldsRange(2500)
		require.Error(t, err)

		var rangeErr *ReynoldsRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 2500.0, rangeErr.Reynolds)
	})

	t.Run("laminar", func(t *testing.T) {
		err := CheckReynoldsRange(2400)
		require.Error(t, err)
		assert.Equal(t, "Reynolds number is inferior or equal to 2500, none of the presented models can calculate major headlosses", err.Error())
	})
}

func TestMajorHeadloss(t *testing.T) {
	got := MajorHeadloss(0.02, 100, 0.3, 1.5)
	assert.InDelta(t, 0.7647871597334464, got, 1e-12)
}

func TestMinorHeadloss(t *testing.T) {
	got := MinorHeadloss(1.7, 1.4147106052612919)
	assert.InDelta(t, 0.17347363086711115, got, 1e-12)
}

func TestMinorHeadloss_GrowsWithVelocitySquared(t *testing.T) {
	const k = 2.0
	low := MinorHeadloss(k, 1)
	high := MinorHeadloss(k, 3)

	assert.GreaterOrEqual(t, low, 0.0)
	// h = k·v²/(2g) is linear in v², so tripling v multiplies h by 9.
	assert.InDelta(t, 9*low, high, 1e-12)
}
