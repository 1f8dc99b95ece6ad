package screen

import (
	"strconv"
	"strings"
)

// FormatTime converts a provider time such as "06:17 pm" to "18:17" when use24Hour is set.
// Empty input, or use24Hour unset, returns value unchanged. A suffix other than am/pm
// leaves the hour as is, so only padding is applied. Tokens that are not numbers are
// kept verbatim and left-padded with zeros.
func FormatTime(value string, use24Hour bool) string {
	if !use24Hour || value == "" {
		return value
	}

	parts := strings.Fields(value)
	if len(parts) == 0 {
		return value
	}

	clock := parts[0]
	suffix := ""
	if len(parts) > 1 {
		suffix = strings.ToLower(parts[1])
	}

	hourToken, minuteToken, _ := strings.Cut(clock, ":")

	hour, err := strconv.Atoi(hourToken)
	if err != nil {
		return padTwo(hourToken) + ":" + padTwo(minuteToken)
	}

	switch {
	case suffix == "pm" && hour < 12:
		hour += 12
	case suffix == "am" && hour == 12:
		hour = 0
	}

	return padTwo(strconv.Itoa(hour)) + ":" + padTwo(minuteToken)
}

func padTwo(s string) string {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		s = strconv.Itoa(n)
	}
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
