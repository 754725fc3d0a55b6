package types_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/coralswap/coral/x/amm/types"
)

// TestSwapFee verifies the input fee floors at FeeMultiplier/FeeScale
func TestSwapFee(t *testing.T) {
	tests := []struct {
		amountIn uint64
		want     uint64
	}{
		{0, 0},
		{100, 0},
		{333, 0},
		{3333, 9},
		{7777, 23},
		{10000, 30},
		{12345, 37},
	}

	for _, tt := range tests {
		fee, err := types.SwapFee(tt.amountIn)
		require.NoError(t, err)
		require.Equal(t, tt.want, fee, "fee(%d)", tt.amountIn)
	}
}

// TestGetAmountOut verifies curve outputs against hand-computed values
func TestGetAmountOut(t *testing.T) {
	tests := []struct {
		name                          string
		amountIn, reserveIn, reserveOut uint64
		want                          uint64
		errType                       error
	}{
		{name: "balanced small pool", amountIn: 100, reserveIn: 1000, reserveOut: 1000, want: 90},
		{name: "deep in shallow out", amountIn: 10000, reserveIn: 1000000, reserveOut: 10000, want: 98},
		{name: "balanced deep pool", amountIn: 10000, reserveIn: 1000000, reserveOut: 1000000, want: 9871},
		{name: "dust input rounds to zero", amountIn: 1, reserveIn: 1000, reserveOut: 1000, want: 0},
		{name: "zero input", amountIn: 0, reserveIn: 1000, reserveOut: 1000, want: 0},
		{name: "empty in reserve", amountIn: 100, reserveIn: 0, reserveOut: 1000, errType: types.ErrReservesEmpty},
		{name: "empty out reserve", amountIn: 100, reserveIn: 1000, reserveOut: 0, errType: types.ErrReservesEmpty},
		{name: "input scaling overflows", amountIn: math.MaxUint64/9970 + 1, reserveIn: 1000, reserveOut: 1000, errType: types.ErrOverflow},
		{name: "reserve scaling overflows", amountIn: 100, reserveIn: types.MaxPoolValue + 1, reserveOut: 1000, errType: types.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := types.GetAmountOut(tt.amountIn, tt.reserveIn, tt.reserveOut)
			if tt.errType != nil {
				require.ErrorIs(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

// FuzzGetAmountOut checks the curve never panics and never prices an output
// that would drain the out reserve
func FuzzGetAmountOut(f *testing.F) {
	// Seed corpus
	f.Add(uint64(100), uint64(1000), uint64(1000))
	f.Add(uint64(10000), uint64(1000000), uint64(10000))
	f.Add(uint64(0), uint64(1), uint64(1))
	f.Add(uint64(math.MaxUint64), uint64(math.MaxUint64), uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, amountIn, reserveIn, reserveOut uint64) {
		out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
		if reserveIn == 0 || reserveOut == 0 {
			if !errors.Is(err, types.ErrReservesEmpty) {
				t.Fatalf("empty reserves %d/%d: got %v", reserveIn, reserveOut, err)
			}
			return
		}
		if err != nil {
			// Out-of-range inputs overflow a scaling step
			return
		}
		if out >= reserveOut {
			t.Fatalf("output %d would drain reserve %d", out, reserveOut)
		}
	})
}

// TestCalcOptimalValues pins the deposit ratio adjustment, including the
// uninverted pricing of the limiting-paired branch
func TestCalcOptimalValues(t *testing.T) {
	tests := []struct {
		name                         string
		baseDesired, pairedDesired   uint64
		baseMin, pairedMin           uint64
		baseReserve, pairedReserve   uint64
		wantBase, wantPaired         uint64
		errType                      error
	}{
		{
			name:        "first deposit passes through",
			baseDesired: 123, pairedDesired: 456,
			baseMin: 1, pairedMin: 1,
			wantBase: 123, wantPaired: 456,
		},
		{
			name:        "paired side trimmed to ratio",
			baseDesired: 100, pairedDesired: 300,
			baseMin: 1, pairedMin: 1,
			baseReserve: 1000, pairedReserve: 2000,
			wantBase: 100, wantPaired: 200,
		},
		{
			name:        "exact ratio kept",
			baseDesired: 100, pairedDesired: 100,
			baseMin: 1, pairedMin: 1,
			baseReserve: 1000, pairedReserve: 1000,
			wantBase: 100, wantPaired: 100,
		},
		{
			name:        "trimmed paired below minimum",
			baseDesired: 100, pairedDesired: 300,
			baseMin: 1, pairedMin: 201,
			baseReserve: 1000, pairedReserve: 2000,
			errType: types.ErrInsufficientPaired,
		},
		{
			name:        "base side trimmed by paired limit",
			baseDesired: 300, pairedDesired: 100,
			baseMin: 1, pairedMin: 1,
			baseReserve: 2000, pairedReserve: 1000,
			wantBase: 50, wantPaired: 100,
		},
		{
			name:        "trimmed base below minimum",
			baseDesired: 300, pairedDesired: 100,
			baseMin: 51, pairedMin: 1,
			baseReserve: 2000, pairedReserve: 1000,
			errType: types.ErrInsufficientBase,
		},
		{
			name:        "trimmed base exceeds desired",
			baseDesired: 100, pairedDesired: 150,
			baseMin: 1, pairedMin: 1,
			baseReserve: 1000, pairedReserve: 2000,
			errType: types.ErrOverlimitBase,
		},
		{
			name:        "base reserve gone",
			baseDesired: 100, pairedDesired: 100,
			baseMin: 1, pairedMin: 1,
			baseReserve: 0, pairedReserve: 1000,
			errType: types.ErrDivideByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotBase, gotPaired, err := types.CalcOptimalValues(
				tt.baseDesired, tt.pairedDesired,
				tt.baseMin, tt.pairedMin,
				tt.baseReserve, tt.pairedReserve,
			)
			if tt.errType != nil {
				require.ErrorIs(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantBase, gotBase)
			require.Equal(t, tt.wantPaired, gotPaired)
		})
	}
}

// TestCalcOptimalValues_CommitsWithinDesired checks no branch ever commits
// more than the caller offered, and never commits nothing without erroring
func TestCalcOptimalValues_CommitsWithinDesired(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		baseReserve := rapid.Uint64Range(1, types.MaxPoolValue-1).Draw(t, "baseReserve")
		pairedReserve := rapid.Uint64Range(1, types.MaxPoolValue-1).Draw(t, "pairedReserve")
		baseDesired := rapid.Uint64Range(1, types.MaxPoolValue-1).Draw(t, "baseDesired")
		pairedDesired := rapid.Uint64Range(1, types.MaxPoolValue-1).Draw(t, "pairedDesired")

		optBase, optPaired, err := types.CalcOptimalValues(baseDesired, pairedDesired, 1, 1, baseReserve, pairedReserve)
		if err != nil {
			return
		}
		if optBase > baseDesired {
			t.Fatalf("committed base %d above desired %d", optBase, baseDesired)
		}
		if optPaired > pairedDesired {
			t.Fatalf("committed paired %d above desired %d", optPaired, pairedDesired)
		}
		if optBase == 0 || optPaired == 0 {
			t.Fatalf("committed %d/%d without error", optBase, optPaired)
		}
	})
}

// TestGetAmountOut_PriceImprovesWithDepth checks a deeper out reserve never
// pays less for the same input
func TestGetAmountOut_PriceImprovesWithDepth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amountIn := rapid.Uint64Range(1, 1_000_000_000).Draw(t, "amountIn")
		reserveIn := rapid.Uint64Range(1, types.MaxPoolValue-1).Draw(t, "reserveIn")
		reserveOut := rapid.Uint64Range(1, types.MaxPoolValue-2).Draw(t, "reserveOut")

		out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
		if err != nil {
			return
		}
		deeper, err := types.GetAmountOut(amountIn, reserveIn, reserveOut+1)
		if err != nil {
			return
		}
		if deeper < out {
			t.Fatalf("output dropped from %d to %d when out reserve grew", out, deeper)
		}
	})
}
