// Package rupiah formats and parses Indonesian currency amounts.
package rupiah

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders n with Indonesian digit grouping, e.g. 5000000 -> "5.000.000".
func Format(n int64) string {
	return message.NewPrinter(language.Indonesian).Sprintf("%d", n)
}

// FormatRp renders n as a rupiah amount, e.g. "Rp 5.000.000".
func FormatRp(n int64) string {
	if n < 0 {
		return "-Rp " + Format(-n)
	}
	return "Rp " + Format(n)
}

// Parse reads an amount the way an operator types it: "5000000",
// "5.000.000", "Rp 5.000.000" or "5.000.000,00". Anything that is blank or
// not a number yields 0.
func Parse(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.EqualFold(s[:2], "rp") {
		s = strings.TrimSpace(s[2:])
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	s = strings.NewReplacer(".", "", " ", "", "_", "").Replace(s)

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	if negative {
		return -n
	}
	return n
}

// Amount is an int64 that accepts JSON numbers, numeric strings, blanks and
// null, coercing anything unusable to 0.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(Parse(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(int64(f))
	return nil
}

func (a Amount) Int64() int64 {
	return int64(a)
}
