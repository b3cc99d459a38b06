package numconv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/next-trace/scg-httperror/numconv"
)

func ptr(s string) *string { return &s }

func TestToNumber_ValidNumbers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 123.0, numconv.ToNumber(ptr("123"), 0))
	assert.Equal(t, -45.67, numconv.ToNumber(ptr("-45.67"), 0))
	assert.Equal(t, 1e100, numconv.ToNumber(ptr("1e100"), 0))
	assert.Equal(t, 1e-100, numconv.ToNumber(ptr("1e-100"), 0))
	assert.Equal(t, 26.0, numconv.ToNumber(ptr("0x1A"), 0))
	assert.Equal(t, 5.0, numconv.ToNumber(ptr("0b101"), 0))
	assert.Equal(t, 12.0, numconv.ToNumber(ptr("  12 "), 0))
}

func TestToNumber_NilUsesDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, numconv.ToNumber(nil, 0))
	assert.Equal(t, 10.0, numconv.ToNumber(nil, 10))
}

func TestToNumber_InvalidUsesDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, numconv.ToNumber(ptr("abc"), 0))
	assert.Equal(t, 5.0, numconv.ToNumber(ptr("123abc"), 5))
	assert.Equal(t, 7.0, numconv.ToNumber(ptr("Infinity"), 7))
	assert.Equal(t, 7.0, numconv.ToNumber(ptr("-inf"), 7))
	assert.Equal(t, 7.0, numconv.ToNumber(ptr("NaN"), 7))
	assert.Equal(t, 7.0, numconv.ToNumber(ptr("1e400"), 7))
	assert.Equal(t, 7.0, numconv.ToNumber(ptr("1_000"), 7))
	assert.Equal(t, 7.0, numconv.ToNumber(ptr("-0x10"), 7))
}

func TestToNumber_DigitSeparatorsRejected(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1_000", "1_0.5", "1e1_0", "0x1_F", "0b1_0", "_1", "1_"} {
		assert.Equal(t, 7.0, numconv.ToNumber(ptr(in), 7), "input %q", in)
	}
}

func TestToNumber_ZeroAndNegativeZero(t *testing.T) {
	t.Parallel()

	zero := numconv.ToNumber(ptr("0"), 9)
	negZero := numconv.ToNumber(ptr("-0"), 9)

	assert.Equal(t, 0.0, zero)
	assert.False(t, math.Signbit(zero))
	assert.Equal(t, 0.0, negZero)
	assert.True(t, math.Signbit(negZero), "-0 must keep its sign bit")
}

func TestParse_BlankIsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, numconv.Parse("", 3))
	assert.Equal(t, 0.0, numconv.Parse("   ", 3))
}

func FuzzParse(f *testing.F) {
	f.Add("123")
	f.Add("-0")
	f.Add("1e100")
	f.Add("0x")
	f.Fuzz(func(t *testing.T, s string) {
		n := numconv.Parse(s, 42)
		if math.IsInf(n, 0) || math.IsNaN(n) {
			t.Fatalf("Parse(%q) returned non-finite %v", s, n)
		}
	})
}
