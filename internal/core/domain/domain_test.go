package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHexAddress(t *testing.T) {
	assert.True(t, IsHexAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"))
	assert.True(t, IsHexAddress("  0x1234567890abcdef1234567890abcdef12345678  "))
	assert.False(t, IsHexAddress("0x1234")) // Too short
	assert.False(t, IsHexAddress("1234567890abcdef1234567890abcdef12345678"))
	assert.False(t, IsHexAddress("alice.celo"))
	assert.False(t, IsHexAddress(""))
}

func TestIsNameIdentifier(t *testing.T) {
	assert.True(t, IsNameIdentifier("treasury.celo"))
	assert.True(t, IsNameIdentifier("Vitalik.ETH"))
	assert.False(t, IsNameIdentifier("0x1234567890abcdef1234567890abcdef12345678"))
	assert.False(t, IsNameIdentifier("alice@example.com"))
	assert.False(t, IsNameIdentifier(""))
}

func TestParseCadence(t *testing.T) {
	tests := []struct {
		in   string
		want Cadence
	}{
		{"true", CadenceMonthly},
		{"TRUE", CadenceMonthly},
		{"Monthly", CadenceMonthly},
		{"month", CadenceMonthly},
		{"1", CadenceMonthly},
		{"false", CadenceWeekly},
		{"weekly", CadenceWeekly},
		{"0", CadenceWeekly},
		{"", CadenceWeekly},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCadence(tt.in), "input %q", tt.in)
	}
}

func TestToBaseUnits(t *testing.T) {
	v, err := ToBaseUnits("100", StableTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000", v.String())

	v, err = ToBaseUnits("0.5", StableTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, "500000000000000000", v.String())

	v, err = ToBaseUnits("120.25", StableTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, "120250000000000000000", v.String())

	_, err = ToBaseUnits("-5", StableTokenDecimals)
	assert.Error(t, err)

	_, err = ToBaseUnits("abc", StableTokenDecimals)
	assert.Error(t, err)

	_, err = ToBaseUnits("1.0000000000000000001", StableTokenDecimals)
	assert.Error(t, err, "19 fractional digits should not fit an 18-decimal token")
}

func TestFloatToBaseUnits(t *testing.T) {
	v, err := FloatToBaseUnits(100.5, StableTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, "100500000000000000000", v.String())

	v, err = FloatToBaseUnits(42, StableTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, "42000000000000000000", v.String())
}

func TestPeriodRoundTrip(t *testing.T) {
	p := Period{Year: 2025, Seq: 3}
	got, cadence, err := ParsePeriod(p.Format(CadenceMonthly))
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, CadenceMonthly, cadence)

	w := Period{Year: 2025, Seq: 14}
	got, cadence, err = ParsePeriod(w.Format(CadenceWeekly))
	require.NoError(t, err)
	assert.Equal(t, w, got)
	assert.Equal(t, CadenceWeekly, cadence)
}

func TestParsePeriod_Malformed(t *testing.T) {
	for _, s := range []string{"", "2025", "2025-13", "2025-W54", "2025-W0", "banana", "2025-03-04"} {
		_, _, err := ParsePeriod(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestPeriodsBetween_Monthly(t *testing.T) {
	from := time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	got := PeriodsBetween(CadenceMonthly, from, to)
	want := []Period{
		{Year: 2024, Seq: 11},
		{Year: 2024, Seq: 12},
		{Year: 2025, Seq: 1},
		{Year: 2025, Seq: 2},
	}
	assert.Equal(t, want, got)
}

func TestPeriodsBetween_Weekly_YearBoundary(t *testing.T) {
	from := time.Date(2024, time.December, 23, 0, 0, 0, 0, time.UTC) // ISO week 52
	to := time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)    // ISO week 2, 2025

	got := PeriodsBetween(CadenceWeekly, from, to)
	want := []Period{
		{Year: 2024, Seq: 52},
		{Year: 2025, Seq: 1},
		{Year: 2025, Seq: 2},
	}
	assert.Equal(t, want, got)
}

func TestPeriodsBetween_ToBeforeFrom(t *testing.T) {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, PeriodsBetween(CadenceMonthly, from, from.AddDate(0, -1, 0)))
}

func TestPeriodBefore(t *testing.T) {
	assert.True(t, Period{2024, 12}.Before(Period{2025, 1}))
	assert.True(t, Period{2025, 1}.Before(Period{2025, 2}))
	assert.False(t, Period{2025, 2}.Before(Period{2025, 2}))
	assert.False(t, Period{2025, 3}.Before(Period{2025, 2}))
}

func TestAddressEqual(t *testing.T) {
	a := Address("0xAbCd567890abcdef1234567890abcdef12345678")
	b := NormalizeAddress("0xABCD567890ABCDEF1234567890ABCDEF12345678")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Address("0x0000000000000000000000000000000000000000")))
}
