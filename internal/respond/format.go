package respond

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	requestDateLayout  = "2006-01-02"
	customerDateLayout = "January 02, 2006"
)

// customerDate converts an upstream "YYYY-MM-DD" date to the customer-facing
// "Month DD, YYYY" form. Month names are always English, regardless of locale.
func customerDate(value string) (string, error) {
	parsed, err := time.Parse(requestDateLayout, value)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", value, err)
	}
	return parsed.Format(customerDateLayout), nil
}

// groupThousands renders a count with comma separators ("12500" -> "12,500").
func groupThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	if neg {
		b.WriteByte('-')
	}

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
