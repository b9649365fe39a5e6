package spawn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The enemy name is matched lazily, so trailing digits of a name are read as
// part of the stage index.
var tokenPattern = regexp.MustCompile(`^(.+?)(\d+)-(-?\d+(?:\.\d+)?)$`)

// ParseSchedule decodes marker text produced by Format. Tokens are split on
// commas and trimmed; empty text yields no events. Negative times and
// non-letter enemy names are accepted. An enemy name that ends in a digit
// does not round-trip. Wave and Position cannot be recovered from the text
// and are left zero.
func ParseSchedule(text string) ([]Event, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	items := strings.Split(text, ",")
	events := make([]Event, 0, len(items))
	for _, item := range items {
		token := strings.TrimSpace(item)
		m := tokenPattern.FindStringSubmatch(token)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		stage, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
		}
		t, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
		}
		events = append(events, Event{Enemy: m[1], Stage: stage, Time: t})
	}
	return events, nil
}
