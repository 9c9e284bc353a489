// Package price renders amounts held in pence.
package price

import "fmt"

// Currency is the label prefixed to every formatted amount.
const Currency = "GBP"

// Format renders pence as "GBP <pounds>.<pp>", e.g. 8050 -> "GBP 80.50".
func Format(pence int) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s %s%d.%02d", Currency, sign, pence/100, pence%100)
}
