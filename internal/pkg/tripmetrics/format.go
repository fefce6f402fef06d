package tripmetrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnknownPlaceholder is rendered anywhere a metric cannot be computed.
const UnknownPlaceholder = "—"

// FormatCurrency renders a dollar amount with zero decimal places and
// thousands separators, e.g. "$1,250". Nil renders the placeholder.
func FormatCurrency(v *float64) string {
	if v == nil {
		return UnknownPlaceholder
	}
	rounded := int64(math.Round(*v))
	if rounded < 0 {
		return "-$" + groupThousands(-rounded)
	}
	return "$" + groupThousands(rounded)
}

// FormatMiles renders a mile count with thousands separators, e.g. "50,000".
func FormatMiles(v *int) string {
	if v == nil {
		return UnknownPlaceholder
	}
	n := int64(*v)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	return groupThousands(n)
}

// FormatAvgMiles renders a fractional mile average rounded to a whole count.
func FormatAvgMiles(v *float64) string {
	if v == nil {
		return UnknownPlaceholder
	}
	rounded := int(math.Round(*v))
	return FormatMiles(&rounded)
}

// FormatDays renders a duration to one decimal place with a "days" suffix,
// e.g. "3.1 days".
func FormatDays(v *float64) string {
	if v == nil {
		return UnknownPlaceholder
	}
	return fmt.Sprintf("%.1f days", *v)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
