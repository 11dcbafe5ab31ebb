package request

import (
	"strings"
	"time"

	"venue-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// minorUnitDigits is the number of decimal places of the booking currency.
const minorUnitDigits = 2

var (
	ErrInvalidDate   = errs.Validation("date must be formatted YYYY-MM-DD")
	ErrInvalidAmount = errs.Validation("amount has more decimal places than the currency allows")
)

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ToMinorUnits turns "12.50" into 1250. Sub-cent amounts are rejected rather
// than rounded.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(minorUnitDigits)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, ErrInvalidAmount
	}
	return shifted.IntPart(), nil
}
