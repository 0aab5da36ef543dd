package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTrendWindow is the fallback trend range used when none is provided.
const DefaultTrendWindow = "30d"

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	windowUnits   = map[string]time.Duration{
		"d":      24 * time.Hour,
		"day":    24 * time.Hour,
		"days":   24 * time.Hour,
		"w":      7 * 24 * time.Hour,
		"wk":     7 * 24 * time.Hour,
		"wks":    7 * 24 * time.Hour,
		"week":   7 * 24 * time.Hour,
		"weeks":  7 * 24 * time.Hour,
		"mo":     30 * 24 * time.Hour,
		"month":  30 * 24 * time.Hour,
		"months": 30 * 24 * time.Hour,
	}
)

// ParseTrendWindow parses a human-friendly range like "30d", "6w", or "2w3d"
// and returns the start/end dates it covers, ending today. Trend data is
// daily resolution, so only day-or-larger units are accepted.
func ParseTrendWindow(input string) (Date, Date, error) {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		trimmed = DefaultTrendWindow
	}

	remaining := trimmed
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return "", "", fmt.Errorf("invalid range segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return "", "", fmt.Errorf("invalid range value %q: %w", matches[1], err)
		}
		base, ok := windowUnits[matches[2]]
		if !ok {
			return "", "", fmt.Errorf("unsupported range unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total < 24*time.Hour {
		return "", "", fmt.Errorf("range must cover at least one day")
	}

	end := Today()
	days := int(total / (24 * time.Hour))
	// The window includes the end date itself.
	start := end.addDays(-(days - 1))
	return start, end, nil
}
