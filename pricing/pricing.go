// Package pricing owns the normalization rule for prices stored as
// text: strip thousands separators, then parse the remainder as a
// base-10 decimal. Stored rows depend on this exact rule.
package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse normalizes a stored price string and returns its numeric value.
func Parse(price string) (float64, error) {
	normalized := strings.ReplaceAll(price, ",", "")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", price, err)
	}
	return value, nil
}
