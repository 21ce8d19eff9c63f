/*
Package format renders engine amounts for display.

Hours render as "8h30min"; money renders with pt-BR style grouping
(thousands '.', decimals ',') and a currency symbol prefix. Guarani has no
minor unit, so PYG amounts round to whole numbers.
*/
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency identifies the display currency for money amounts.
type Currency string

const (
	BRL Currency = "BRL"
	PYG Currency = "PYG"
	USD Currency = "USD"
)

// Symbol returns the display prefix for the currency. Unknown codes fall
// back to the code itself.
func (c Currency) Symbol() string {
	switch c {
	case BRL:
		return "R$"
	case PYG:
		return "₲"
	case USD:
		return "$"
	default:
		return string(c)
	}
}

// decimals returns the number of minor-unit digits for the currency.
func (c Currency) decimals() int32 {
	if c == PYG {
		return 0
	}
	return 2
}

// Hours renders a fractional hour count as "8h30min". Sub-minute
// remainders round to the nearest minute.
func Hours(h decimal.Decimal) string {
	neg := h.IsNegative()
	minutes := h.Abs().Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	out := strconv.FormatInt(minutes/60, 10) + "h" + pad2(minutes%60) + "min"
	if neg {
		return "-" + out
	}
	return out
}

// Money renders an amount with the currency's symbol and pt-BR grouping,
// e.g. "R$ 1.234,56" or "₲ 15.000".
func Money(v decimal.Decimal, c Currency) string {
	fixed := v.StringFixed(c.decimals())

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	out := c.Symbol() + " " + group(intPart)
	if fracPart != "" {
		out += "," + fracPart
	}
	if neg {
		return "-" + out
	}
	return out
}

// group inserts '.' thousands separators into a digit string.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
