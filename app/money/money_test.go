package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10.004", "10"},
		{"10.005", "10.01"},
		{"10.999", "11"},
		{"-0.005", "-0.01"},
		{"5000", "5000"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		assert.Equal(t, tc.want, Round2(d).String(), "Round2(%s)", tc.in)
	}
}

func TestPercent(t *testing.T) {
	got := Percent(Rupees(5000), decimal.NewFromInt(2))
	assert.True(t, got.Equal(Rupees(100)), "2%% of 5000 should be 100, got %s", got)

	// 2.5% of 333.33 = 8.33325 -> 8.33
	got = Percent(decimal.RequireFromString("333.33"), decimal.RequireFromString("2.5"))
	assert.Equal(t, "8.33", got.String())

	assert.True(t, Percent(Zero, decimal.NewFromInt(10)).IsZero())
}

func TestFromString(t *testing.T) {
	d, err := FromString("1234.567")
	require.NoError(t, err)
	assert.Equal(t, "1234.57", d.String())

	_, err = FromString("not-money")
	require.Error(t, err)
}

func TestMaxZeroAndMinOf(t *testing.T) {
	assert.True(t, MaxZero(Rupees(-50)).IsZero())
	assert.True(t, MaxZero(Rupees(50)).Equal(Rupees(50)))
	assert.True(t, MinOf(Rupees(3), Rupees(7)).Equal(Rupees(3)))
	assert.True(t, MinOf(Rupees(7), Rupees(3)).Equal(Rupees(3)))
}
