package vault

import (
	"errors"

	"github.com/holiman/uint256"
)

// ErrMulDivOverflow guards the (unreachable in practice, since divisor is
// always a live u64 balance) case where a widened product still can't be
// narrowed back into a uint64 quotient.
var ErrMulDivOverflow = errors.New("vault: mul-div result overflows uint64")

// mulDivCeil computes ceil(a*b/denominator) using a widened uint256
// intermediate so a*b never overflows a uint64 — the "widened intermediates
// (128-bit)" math spec §9 calls out, generalized here to 256-bit via
// holiman/uint256 the way the teacher widens balance arithmetic before
// dividing (epoch_processor.go).
func mulDivCeil(a, b, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, nil
	}
	num := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	den := uint256.NewInt(denominator)
	q, r := new(uint256.Int), new(uint256.Int)
	q.DivMod(num, den, r)
	if !r.IsZero() {
		q.AddUint64(q, 1)
	}
	if !q.IsUint64() {
		return 0, ErrMulDivOverflow
	}
	return q.Uint64(), nil
}

// mulDivFloor computes floor(a*b/denominator), the counterpart to
// mulDivCeil used wherever rounding must favor the vault over the
// redeemer in the other direction (burn math, spec §4.6).
func mulDivFloor(a, b, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, nil
	}
	num := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	den := uint256.NewInt(denominator)
	q := new(uint256.Int).Div(num, den)
	if !q.IsUint64() {
		return 0, ErrMulDivOverflow
	}
	return q.Uint64(), nil
}
