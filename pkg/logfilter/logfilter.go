// Package logfilter selects log lines by the timestamp they carry.
package logfilter

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Line formats emitted by Go's standard logger.
const goLogLayout = "2006/01/02 15:04:05"

// DropLinesBefore keeps the lines of log stamped at or after since.
//
// A line without a recognizable timestamp belongs to the closest timestamped line above it,
// so stack traces and multi-line messages follow their header. Untimestamped lines at the
// top of the log are dropped, as are blank lines.
func DropLinesBefore(since time.Time, log string) []string {
	kept := make([]string, 0)
	keep := false

	for _, line := range strings.Split(log, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if ts, ok := Timestamp(line); ok {
			keep = !ts.Before(since)
		}
		if keep {
			kept = append(kept, line)
		}
	}

	return kept
}

// Timestamp extracts the time a log line was written.
//
// Recognized are lager JSON lines (`"timestamp"` as unix seconds or RFC3339),
// lines starting with an RFC3339 timestamp, optionally in brackets,
// and lines starting with Go's standard logger prefix.
func Timestamp(line string) (time.Time, bool) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "{") {
		return lagerTimestamp(trimmed)
	}

	token := trimmed
	if i := strings.IndexAny(token, " \t"); i >= 0 {
		token = token[:i]
	}
	token = strings.Trim(token, "[]")
	if ts, err := time.Parse(time.RFC3339Nano, token); err == nil {
		return ts, true
	}

	if len(trimmed) >= len(goLogLayout) {
		if ts, err := time.ParseInLocation(goLogLayout, trimmed[:len(goLogLayout)], time.Local); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}

func lagerTimestamp(line string) (time.Time, bool) {
	entry := struct {
		Timestamp json.RawMessage `json:"timestamp"`
	}{}
	err := json.Unmarshal([]byte(line), &entry)
	if err != nil || len(entry.Timestamp) == 0 {
		return time.Time{}, false
	}

	raw := string(entry.Timestamp)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts, true
	}

	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, false
	}
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(frac*1e9)), true
}
