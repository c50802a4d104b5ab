// Package timespec parses the time argument given on the command line.
// Two grammars are accepted: a wall-clock time ("HH:MM" or "HH:MM:SS")
// and a relative duration ("1h30m", "45s", "2h"). Either way the result
// is an absolute target instant, so callers never care which form the
// user typed.
package timespec

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidFormat is returned when the input matches neither grammar.
var ErrInvalidFormat = errors.New("invalid time format")

var (
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(:(\d{2}))?$`)
	durationRe = regexp.MustCompile(`^((\d+)h)?((\d+)m)?((\d+)s)?$`)
)

// Parse converts a time string into an absolute target instant relative
// to now.
//
// Clock form is interpreted as today's wall-clock time in now's
// location; if that moment is not in the future it rolls forward to the
// same time tomorrow. Duration form is added to now, with absent
// components counting as zero. The empty string matches the duration
// grammar with every component absent and yields now itself (a timer
// that expires immediately).
func Parse(s string, now time.Time) (time.Time, error) {
	if m := clockRe.FindStringSubmatch(s); m != nil {
		return parseClock(m, now)
	}
	if m := durationRe.FindStringSubmatch(s); m != nil {
		return parseDuration(m, now)
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

func parseClock(m []string, now time.Time) (time.Time, error) {
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return time.Time{}, fmt.Errorf("%w: hour out of range in %q", ErrInvalidFormat, m[0])
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: minute out of range in %q", ErrInvalidFormat, m[0])
	}
	second := 0
	if m[4] != "" {
		second, err = strconv.Atoi(m[4])
		if err != nil || second > 59 {
			return time.Time{}, fmt.Errorf("%w: second out of range in %q", ErrInvalidFormat, m[0])
		}
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, second, 0, now.Location())
	if !target.After(now) {
		// Already passed today; same wall-clock time tomorrow.
		target = target.AddDate(0, 0, 1)
	}
	return target, nil
}

func parseDuration(m []string, now time.Time) (time.Time, error) {
	var total time.Duration
	for _, part := range []struct {
		text string
		unit time.Duration
	}{
		{m[2], time.Hour},
		{m[4], time.Minute},
		{m[6], time.Second},
	} {
		if part.text == "" {
			continue
		}
		n, err := strconv.Atoi(part.text)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, m[0])
		}
		total += time.Duration(n) * part.unit
	}
	return now.Add(total), nil
}
