package numerr_test

import (
	"testing"

	"github.com/katalvlaran/compmath/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAbsError_Conversions covers the four ways an absolute error bound is
// stated.
func TestAbsError_Conversions(t *testing.T) {
	// by definition against an exact value
	assert.InDelta(t, 0.0015926535, numerr.AbsErrorByExact(3.14, 3.1415926535), 1e-10)

	// by a count of valid significant digits: three digits of 3.14159 are
	// certain up to five units of the fourth place
	abs, err := numerr.AbsErrorByDigits(3.14159, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.005, abs, 1e-12)

	// leading zeros are not significant
	abs, err = numerr.AbsErrorByDigits(0.00271828, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5e-5, abs, 1e-15)

	// from the counterpart relative bound
	assert.InDelta(t, 0.0506, numerr.AbsErrorFromRel(2.53, 0.02), 1e-12)
	assert.Zero(t, numerr.AbsErrorFromRel(0, 0.02))

	// the half-unit convention of a written number
	assert.InDelta(t, 0.005, numerr.DefaultAbsError(2.53), 1e-12)
	assert.InDelta(t, 0.5, numerr.DefaultAbsError(123), 1e-12)
}

// TestRelError_Conversions mirrors the absolute-error variants.
func TestRelError_Conversions(t *testing.T) {
	rel, err := numerr.RelErrorByExact(3.14, 3.1415926535)
	require.NoError(t, err)
	assert.InDelta(t, 0.000507, rel, 1e-6)

	rel, err = numerr.RelErrorFromAbs(2.53, 0.005)
	require.NoError(t, err)
	assert.InDelta(t, 0.005/2.53, rel, 1e-12)

	rel, err = numerr.RelErrorByDigits(3.14159, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.005/3.14159, rel, 1e-12)

	rel, err = numerr.DefaultRelError(2.53)
	require.NoError(t, err)
	assert.InDelta(t, 0.005/2.53, rel, 1e-12)
}

// TestRelError_ZeroGuards verifies the zero-value sentinels.
func TestRelError_ZeroGuards(t *testing.T) {
	_, err := numerr.RelErrorByExact(1.0, 0)
	assert.ErrorIs(t, err, numerr.ErrZeroValue)

	_, err = numerr.RelErrorFromAbs(0, 0.1)
	assert.ErrorIs(t, err, numerr.ErrZeroValue)

	_, err = numerr.DefaultRelError(0)
	assert.ErrorIs(t, err, numerr.ErrZeroValue)

	_, err = numerr.AbsErrorByDigits(1.23, 0)
	assert.ErrorIs(t, err, numerr.ErrBadDigits)
}

// TestDigitClassification verifies the place-value split of a written
// number into valid and doubtful digits for a given absolute error.
func TestDigitClassification(t *testing.T) {
	assert.Equal(t, []int{3, 1, 4, 1, 5, 9}, numerr.SignificantDigits(3.14159))
	assert.Equal(t, []int{2, 7, 1, 8, 3}, numerr.SignificantDigits(0.00271828)) // 7-decimal rendering

	// with Δ = 0.03 the hundredths digit of 2.53 is no longer certain
	assert.Equal(t, []int{2, 5}, numerr.ValidDigits(2.53, 0.03))
	assert.Equal(t, []int{3}, numerr.DoubtfulDigits(2.53, 0.03))

	// the conventional half-unit error keeps every written digit valid
	assert.Equal(t, []int{2, 5, 3}, numerr.ValidDigits(2.53, 0))
	assert.Empty(t, numerr.DoubtfulDigits(2.53, 0))
}

// TestRoundTo verifies digit-class rounding and its refusal to touch the
// integer part.
func TestRoundTo(t *testing.T) {
	got, err := numerr.RoundTo(3.14159, numerr.Significant, 3, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.14, got, 1e-12)

	// the cut would land left of the decimal point: unchanged
	got, err = numerr.RoundTo(123.456, numerr.Significant, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 123.456, got, 1e-12)

	// two valid digits of 2.53 under Δ = 0.03 span "2.5"
	got, err = numerr.RoundTo(2.53, numerr.Valid, 2, 0.03)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)

	// fewer digits of the class than requested: unchanged
	got, err = numerr.RoundTo(2.53, numerr.Doubtful, 2, 0.03)
	require.NoError(t, err)
	assert.InDelta(t, 2.53, got, 1e-12)

	_, err = numerr.RoundTo(2.53, numerr.Significant, 0, 0)
	assert.ErrorIs(t, err, numerr.ErrBadDigits)
}
