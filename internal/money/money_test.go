package money_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cart-api/internal/money"
)

func TestParseCurrency(t *testing.T) {
	cur, err := money.ParseCurrency("eur")
	require.NoError(t, err)
	require.Equal(t, money.EUR, cur)

	_, err = money.ParseCurrency("XYZ")
	require.ErrorIs(t, err, money.ErrUnknownCurrency)
}

func TestCurrencyMinorUnitDigits(t *testing.T) {
	require.Equal(t, 2, money.EUR.MinorUnitDigits())
	require.Equal(t, 0, money.ISK.MinorUnitDigits())
	require.Equal(t, 3, money.BHD.MinorUnitDigits())
}

func TestMoneyAdd(t *testing.T) {
	sum, err := money.New(1000, money.EUR).Add(money.New(500, money.EUR))
	require.NoError(t, err)
	require.Equal(t, money.New(1500, money.EUR), sum)
}

func TestMoneyAddCurrencyMismatch(t *testing.T) {
	_, err := money.New(1000, money.EUR).Add(money.New(1000, money.USD))
	require.ErrorIs(t, err, money.ErrCurrencyMismatch)
	require.Contains(t, err.Error(), "EUR != USD")
}

func TestMoneySubtract(t *testing.T) {
	diff, err := money.New(1000, money.EUR).Subtract(money.New(300, money.EUR))
	require.NoError(t, err)
	require.Equal(t, int64(700), diff.Amount)
}

func TestMoneySubtractMayGoNegative(t *testing.T) {
	diff, err := money.New(100, money.EUR).Subtract(money.New(300, money.EUR))
	require.NoError(t, err)
	require.Equal(t, int64(-200), diff.Amount)
	require.True(t, diff.IsNegative())
	require.Equal(t, money.Zero(money.EUR), diff.MinZero())
}

func TestMoneySubtractCurrencyMismatch(t *testing.T) {
	_, err := money.New(1000, money.EUR).Subtract(money.New(500, money.USD))
	require.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestMoneyMultiply(t *testing.T) {
	require.Equal(t, int64(8997), money.New(2999, money.EUR).Multiply(3).Amount)
	require.Equal(t, int64(0), money.New(1000, money.EUR).Multiply(0).Amount)
	require.Equal(t, int64(1000), money.New(1000, money.EUR).Multiply(1).Amount)
}

func TestMoneyPercentageOf(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		rate   float64
		want   int64
	}{
		{"ten percent", 10000, 10, 1000},
		{"zero rate", 10000, 0, 0},
		{"full rate", 10000, 100, 10000},
		{"rounds half up", 10997, 10, 1100},
		{"rounds down below half", 10993, 10, 1099},
		{"fractional rate", 10000, 19.5, 1950},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.New(tt.amount, money.EUR).PercentageOf(money.MustPercentage(tt.rate))
			require.Equal(t, tt.want, got.Amount)
			require.Equal(t, money.EUR, got.Currency)
		})
	}
}

func TestMoneyComparisons(t *testing.T) {
	a := money.New(2000, money.EUR)
	b := money.New(1000, money.EUR)

	greater, err := a.IsGreater(b)
	require.NoError(t, err)
	require.True(t, greater)

	greater, err = a.IsGreater(a)
	require.NoError(t, err)
	require.False(t, greater)

	less, err := b.IsLess(a)
	require.NoError(t, err)
	require.True(t, less)

	equal, err := a.IsEqual(money.New(2000, money.EUR))
	require.NoError(t, err)
	require.True(t, equal)

	_, err = a.IsGreater(money.New(1000, money.USD))
	require.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestMoneyZero(t *testing.T) {
	zero := money.Zero(money.USD)
	require.True(t, zero.IsZero())
	require.Equal(t, money.USD, zero.Currency)
}

func TestMoneyMinZeroKeepsPositive(t *testing.T) {
	require.Equal(t, int64(500), money.New(500, money.EUR).MinZero().Amount)
	require.Equal(t, int64(0), money.Zero(money.EUR).MinZero().Amount)
}

func TestMoneyMajorUnitConversion(t *testing.T) {
	require.InDelta(t, 29.99, money.New(2999, money.EUR).ToMajorUnit(), 1e-9)
	require.Equal(t, money.New(2999, money.EUR), money.FromMajorUnit(29.99, money.EUR))
	require.Equal(t, money.New(100, money.ISK), money.FromMajorUnit(100, money.ISK))
	require.Equal(t, money.New(12345, money.BHD), money.FromMajorUnit(12.345, money.BHD))
	// Rounds to the nearest minor unit.
	require.Equal(t, money.New(3000, money.EUR), money.FromMajorUnit(29.996, money.EUR))
	require.Equal(t, money.New(2999, money.EUR), money.FromMajorUnit(29.994, money.EUR))
}

func TestMoneyMaxMin(t *testing.T) {
	max, err := money.Max(money.New(100, money.EUR), money.New(300, money.EUR), money.New(200, money.EUR))
	require.NoError(t, err)
	require.Equal(t, int64(300), max.Amount)

	min, err := money.Min(money.New(100, money.EUR), money.New(300, money.EUR), money.New(50, money.EUR))
	require.NoError(t, err)
	require.Equal(t, int64(50), min.Amount)

	_, err = money.Max(money.New(100, money.EUR), money.New(300, money.USD))
	require.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestMoneyOperationsDoNotMutate(t *testing.T) {
	original := money.New(1000, money.EUR)

	_, err := original.Add(money.New(500, money.EUR))
	require.NoError(t, err)
	_ = original.Multiply(3)
	_ = original.PercentageOf(money.MustPercentage(10))

	require.Equal(t, int64(1000), original.Amount)
}
