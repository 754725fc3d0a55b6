package types

// SwapResult reports the settled legs of a swap. Exactly two fields besides
// the fee are non-zero: BaseIn and PairedOut when selling the base asset,
// PairedIn and BaseOut when selling the paired asset. One shape serves both
// directions so downstream accounting can stay direction-agnostic.
type SwapResult struct {
	BaseIn    uint64 `json:"base_in"`
	BaseOut   uint64 `json:"base_out"`
	PairedIn  uint64 `json:"paired_in"`
	PairedOut uint64 `json:"paired_out"`
	Fee       uint64 `json:"fee"`
}

// SwapFee returns the protocol fee charged on a swap input,
// floor(amountIn * FeeMultiplier / FeeScale).
func SwapFee(amountIn uint64) (uint64, error) {
	return MulDiv(amountIn, FeeMultiplier, FeeScale)
}

// GetAmountOut prices a swap of amountIn against the given reserves on the
// fee-adjusted constant-product curve:
//
//	afterFee = amountIn * (FeeScale - FeeMultiplier)
//	scaledIn = reserveIn * FeeScale + afterFee
//	out      = floor(afterFee * reserveOut / scaledIn)
//
// Each 64-bit step is overflow-checked; reserves below MaxPoolValue always
// fit. The output is strictly less than reserveOut, so a swap can never
// drain a pool.
func GetAmountOut(amountIn, reserveIn, reserveOut uint64) (uint64, error) {
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrReservesEmpty.Wrapf("reserves %d/%d", reserveIn, reserveOut)
	}
	afterFee, err := SafeMul(amountIn, FeeScale-FeeMultiplier)
	if err != nil {
		return 0, err
	}
	scaledReserve, err := SafeMul(reserveIn, FeeScale)
	if err != nil {
		return 0, err
	}
	scaledIn, err := SafeAdd(scaledReserve, afterFee)
	if err != nil {
		return 0, err
	}
	return MulDiv(afterFee, reserveOut, scaledIn)
}

// CalcOptimalValues resolves the amounts a deposit actually commits so the
// pool ratio is preserved. On a first deposit (both reserves zero) the
// desired amounts pass through unchanged. Otherwise the base side is priced
// into paired units and whichever side is limiting fixes the other.
//
// The limiting-paired branch prices the base amount with the paired/base
// ratio left uninverted; changing it would change the committed amounts for
// every existing position.
func CalcOptimalValues(baseDesired, pairedDesired, baseMin, pairedMin, baseReserve, pairedReserve uint64) (uint64, uint64, error) {
	if baseReserve == 0 && pairedReserve == 0 {
		return baseDesired, pairedDesired, nil
	}
	pairedReturned, err := MulDiv(baseDesired, pairedReserve, baseReserve)
	if err != nil {
		return 0, 0, err
	}
	if pairedReturned <= pairedDesired {
		if pairedReturned < pairedMin {
			return 0, 0, ErrInsufficientPaired.Wrapf("optimal paired amount %d below minimum %d", pairedReturned, pairedMin)
		}
		return baseDesired, pairedReturned, nil
	}
	baseReturned, err := MulDiv(pairedDesired, pairedReserve, baseReserve)
	if err != nil {
		return 0, 0, err
	}
	if baseReturned > baseDesired {
		return 0, 0, ErrOverlimitBase.Wrapf("optimal base amount %d exceeds desired %d", baseReturned, baseDesired)
	}
	if baseReturned < baseMin {
		return 0, 0, ErrInsufficientBase.Wrapf("optimal base amount %d below minimum %d", baseReturned, baseMin)
	}
	return baseReturned, pairedDesired, nil
}
