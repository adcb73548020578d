package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// String renders the capacities and one line per open container:
//
//	CerealStorage (containerCapacity=10.0, storageCapacity=20.0)
//	  Гречка: 3.0 кг
func (l *Ledger) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CerealStorage (containerCapacity=%s, storageCapacity=%s)\n",
		FormatAmount(l.containerCapacity), FormatAmount(l.storageCapacity))
	for _, c := range l.order {
		fmt.Fprintf(&sb, "  %s: %s кг\n", c.Local(), FormatAmount(l.amounts[c]))
	}
	return sb.String()
}

// FormatAmount prints d with at least one fractional digit: 3 -> "3.0",
// 2.5 -> "2.5".
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}
