package common

import (
	"fmt"
	"strings"
)

// FormatMoney formats a dollar amount with thousands separators,
// e.g. 1234567.5 -> "$1,234,567.50".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")
	grouped := groupThousands(whole)
	if neg {
		return "-$" + grouped + "." + frac
	}
	return "$" + grouped + "." + frac
}

// FormatInt formats an integer with thousands separators.
func FormatInt(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	grouped := groupThousands(fmt.Sprintf("%d", v))
	if neg {
		return "-" + grouped
	}
	return grouped
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
