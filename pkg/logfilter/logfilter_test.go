package logfilter_test

import (
	"testing"
	"time"

	"github.com/nais/boshprobe/pkg/logfilter"
	"github.com/stretchr/testify/assert"
)

func TestDropLinesBeforeLager(t *testing.T) {
	since := time.Unix(1500000100, 0)
	log := `{"timestamp":"1500000000.000000000","source":"redis-broker","message":"redis-broker.starting","log_level":1,"data":{}}
{"timestamp":"1500000099.999999000","source":"redis-broker","message":"redis-broker.listening","log_level":1,"data":{}}
{"timestamp":"1500000100.000000000","source":"redis-broker","message":"Starting Redis Broker shutdown","log_level":1,"data":{}}
{"timestamp":"1500000101.500000000","source":"redis-broker","message":"redis-broker.stopped","log_level":1,"data":{}}
`
	lines := logfilter.DropLinesBefore(since, log)

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Starting Redis Broker shutdown")
	assert.Contains(t, lines[1], "redis-broker.stopped")
}

func TestDropLinesBeforeRFC3339(t *testing.T) {
	since := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	log := "2026-10-16T11:59:59Z starting\n" +
		"panic: old\n" +
		"\tgoroutine 1\n" +
		"[2026-10-16T12:00:00.5Z] Starting Redis Broker shutdown\n" +
		"\tcontinuation of the shutdown message\n" +
		"\n" +
		"2026-10-16T14:00:00+02:00 back in time, two hours ahead of UTC\n"

	lines := logfilter.DropLinesBefore(since, log)

	assert.Equal(t, []string{
		"[2026-10-16T12:00:00.5Z] Starting Redis Broker shutdown",
		"\tcontinuation of the shutdown message",
		"2026-10-16T14:00:00+02:00 back in time, two hours ahead of UTC",
	}, lines)
}

func TestDropLinesBeforeLeadingUntimestamped(t *testing.T) {
	lines := logfilter.DropLinesBefore(time.Unix(0, 0), "no timestamp here\nnor here\n")
	assert.Empty(t, lines)
}

func TestTimestamp(t *testing.T) {
	for _, tt := range []struct {
		name     string
		line     string
		expected time.Time
		ok       bool
	}{
		{
			name:     "lager unix seconds",
			line:     `{"timestamp":"1500000000.250000000","message":"x"}`,
			expected: time.Unix(1500000000, 250000000),
			ok:       true,
		},
		{
			name:     "lager numeric",
			line:     `{"timestamp":1500000000,"message":"x"}`,
			expected: time.Unix(1500000000, 0),
			ok:       true,
		},
		{
			name:     "lager RFC3339",
			line:     `{"timestamp":"2026-10-16T12:00:00.123456789Z","level":"info"}`,
			expected: time.Date(2026, time.October, 16, 12, 0, 0, 123456789, time.UTC),
			ok:       true,
		},
		{
			name:     "go standard logger",
			line:     "2026/10/16 12:00:00 listening on :8080",
			expected: time.Date(2026, time.October, 16, 12, 0, 0, 0, time.Local),
			ok:       true,
		},
		{
			name: "JSON without timestamp",
			line: `{"message":"x"}`,
		},
		{
			name: "plain text",
			line: "Starting Redis Broker shutdown",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := logfilter.Timestamp(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(ts), "expected %s, got %s", tt.expected, ts)
			}
		})
	}
}
