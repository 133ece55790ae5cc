package travel

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockAdd adds minutes to an "HH:mm" time and wraps on the 24h clock.
// The date never rolls over: 23:30 plus 90 minutes yields "01:00" with no
// day increment. Malformed input is returned unchanged.
func ClockAdd(hhmm string, minutes int) string {
	h, m, ok := parseClock(hhmm)
	if !ok {
		return hhmm
	}
	total := (h*60 + m + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func parseClock(hhmm string) (h, m int, ok bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
