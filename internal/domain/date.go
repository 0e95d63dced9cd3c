package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	numDateRe = regexp.MustCompile(`^\d{6}(\d{2})?$`)
	clockRe   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// NormalizeDate parses a date written as YYYY-MM-DD, YYYYMMDD or YYMMDD
// and returns it as YYYY-MM-DD. Two-digit years before 78 are taken to be
// in the 2000s.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)

	var y, m, d string
	switch {
	case isoDateRe.MatchString(s):
		parts := isoDateRe.FindStringSubmatch(s)
		y, m, d = parts[1], parts[2], parts[3]
	case numDateRe.MatchString(s) && len(s) == 8:
		y, m, d = s[:4], s[4:6], s[6:]
	case numDateRe.MatchString(s):
		yy, _ := strconv.Atoi(s[:2])
		if yy < 78 {
			yy += 2000
		} else {
			yy += 1900
		}
		y, m, d = strconv.Itoa(yy), s[2:4], s[4:]
	default:
		return "", false
	}

	out := y + "-" + m + "-" + d
	if _, err := time.Parse(time.DateOnly, out); err != nil {
		return "", false
	}
	return out, true
}

// NormalizeTime parses a time of day written as HH:MM, H:MM, HHMM or HMM
// and returns it as HH:MM.
func NormalizeTime(s string) (string, bool) {
	s = strings.TrimSpace(s)

	var hh, mm string
	if parts := clockRe.FindStringSubmatch(s); parts != nil {
		hh, mm = parts[1], parts[2]
	} else {
		if len(s) < 3 || len(s) > 4 || strings.Trim(s, "0123456789") != "" {
			return "", false
		}
		if len(s) == 3 {
			s = "0" + s
		}
		hh, mm = s[:2], s[2:]
	}

	hour, errH := strconv.Atoi(hh)
	mins, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || hour < 0 || hour > 23 || mins < 0 || mins > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, mins), true
}
