package utils_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/swapleg/utils"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestAddMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, d(2014, 2, 28), utils.AddMonth(d(2014, 1, 31), 1))
	assert.Equal(t, d(2016, 2, 29), utils.AddMonth(d(2016, 1, 31), 1))
	assert.Equal(t, d(2014, 3, 31), utils.AddMonth(d(2014, 1, 31), 2))
	assert.Equal(t, d(2014, 2, 5), utils.AddMonth(d(2014, 1, 5), 1))
	assert.Equal(t, d(2013, 11, 30), utils.AddMonth(d(2014, 3, 30), -4))
	assert.Equal(t, d(2015, 1, 5), utils.AddMonth(d(2014, 1, 5), 12))
}

func TestLastDayOfMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, d(2014, 2, 28), utils.LastDayOfMonth(d(2014, 2, 3)))
	assert.True(t, utils.IsLastDayOfMonth(d(2016, 2, 29)))
	assert.False(t, utils.IsLastDayOfMonth(d(2016, 2, 28)))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := utils.ParseDate("2014-01-05")
	require.NoError(t, err)
	assert.Equal(t, d(2014, 1, 5), got)

	_, err = utils.ParseDate("05/01/2014")
	assert.Error(t, err)
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		conv  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"ACT/360", d(2014, 1, 6), d(2014, 2, 5), 30.0 / 360.0},
		{"ACT/365F", d(2014, 1, 6), d(2014, 2, 5), 30.0 / 365.0},
		{"ACT/365F", d(2014, 3, 5), d(2014, 4, 7), 33.0 / 365.0},
		{"30E/360", d(2014, 1, 31), d(2014, 3, 31), 60.0 / 360.0},
		{"30/360", d(2014, 1, 31), d(2014, 3, 31), 60.0 / 360.0},
		{"30/360", d(2014, 1, 30), d(2014, 3, 31), 60.0 / 360.0},
		{"30/360", d(2014, 1, 29), d(2014, 3, 31), 62.0 / 360.0},
		{"30E/360", d(2014, 1, 29), d(2014, 3, 31), 61.0 / 360.0},
		{"ACT/ACT ISDA", d(2015, 12, 1), d(2016, 2, 1), 31.0/365.0 + 31.0/366.0},
	}
	for _, tc := range cases {
		got, err := utils.YearFraction(tc.start, tc.end, tc.conv)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-15, "%s %s-%s", tc.conv, tc.start.Format("2006-01-02"), tc.end.Format("2006-01-02"))
	}

	_, err := utils.YearFraction(d(2014, 1, 1), d(2015, 1, 1), "BUS/252")
	assert.ErrorIs(t, err, utils.ErrUnknownDayCount)
	assert.False(t, utils.IsKnownDayCount("BUS/252"))
	assert.True(t, utils.IsKnownDayCount("ACT/ACT ISDA"))

	_, err = utils.YearFraction(d(2014, 3, 5), d(2014, 4, 7), "ACT/365")
	assert.ErrorIs(t, err, utils.ErrUnknownDayCount)
	assert.False(t, utils.IsKnownDayCount("ACT/365"))
}

func TestYearFractionActActReversed(t *testing.T) {
	t.Parallel()

	fwd, err := utils.YearFraction(d(2015, 6, 1), d(2016, 6, 1), "ACT/ACT ISDA")
	require.NoError(t, err)
	back, err := utils.YearFraction(d(2016, 6, 1), d(2015, 6, 1), "ACT/ACT ISDA")
	require.NoError(t, err)
	assert.True(t, math.Abs(fwd+back) < 1e-15)
}
