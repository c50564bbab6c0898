package domain

import (
	"github.com/shopspring/decimal"
)

// The wallet speaks in tao, the ledger math in duffs (1 tao = 1e8 duffs).
// All flow arithmetic happens on int64 duffs; tao only appears at the
// wallet RPC boundary and in user-facing text.

const duffsPerTao = 8

// MaxSafeDuffs is the largest duff amount that survives a round-trip
// through the wallet's float representation (2^53 - 1).
const MaxSafeDuffs int64 = 1<<53 - 1

// ToDuffs converts a tao amount to duffs, rounding half away from zero.
// Amounts whose duff magnitude exceeds MaxSafeDuffs return ErrOutOfRange.
func ToDuffs(tao decimal.Decimal) (int64, error) {
	duffs := tao.Shift(duffsPerTao).Round(0)
	if duffs.Abs().GreaterThan(decimal.NewFromInt(MaxSafeDuffs)) {
		return 0, ErrOutOfRange
	}
	return duffs.IntPart(), nil
}

// ToTao converts duffs to a tao amount.
func ToTao(duffs int64) decimal.Decimal {
	return decimal.New(duffs, -duffsPerTao)
}

// FormatTao renders duffs as a tao string with exactly 8 fractional digits.
func FormatTao(duffs int64) string {
	return ToTao(duffs).StringFixed(duffsPerTao)
}
