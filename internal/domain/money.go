package domain

import "fmt"

// Cents is an amount of US money in its smallest unit.
type Cents int64

func Dollars(d int64) Cents { return Cents(d * 100) }

// String renders the amount as plain dollars with two decimals, e.g. "1574.05".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
