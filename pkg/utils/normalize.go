// utils/normalize.go
package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	costPattern = regexp.MustCompile(`\d+`)
	timePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(AM|PM)?`)
)

// ExtractCost pulls the first embedded integer out of a free-form cost
// string such as "₹200-400" or "₹300 per person". The second return is
// false when the string carries no number at all; that is the normal
// "value absent" case, not an error.
func ExtractCost(cost string) (float64, bool) {
	if cost == "" {
		return 0, false
	}
	match := costPattern.FindString(cost)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ExtractTime canonicalizes a free-form clock string like "09:00 AM" or
// "14:30" into 24-hour "HH:MM:SS". 12 PM stays 12, 12 AM becomes 00.
// Unparseable input reports absent, never an error.
func ExtractTime(clock string) (string, bool) {
	if clock == "" {
		return "", false
	}
	match := timePattern.FindStringSubmatch(clock)
	if match == nil {
		return "", false
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil || minute > 59 {
		return "", false
	}

	switch match[3] {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute), true
}
