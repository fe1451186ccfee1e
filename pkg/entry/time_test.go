package entry_test

import (
	"testing"
	"time"

	"github.com/matt-steen/deadline-todo/pkg/entry"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tests := map[string]string{
		"":         "",
		"1":        "1",
		"15":       "15",
		"153":      "15:3",
		"1530":     "15:30",
		"15:30":    "15:30",
		"15-30":    "15:30",
		"153012":   "15:30",
		"ab12cd00": "12:00",
		"2560":     "25:60",
	}

	for raw, want := range tests {
		assert.Equal(want, entry.NormalizeTime(raw), "raw %q", raw)
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	hour, minute, err := entry.ParseTime(entry.NormalizeTime("1530"))
	assert.Nil(err)
	assert.Equal(15, hour)
	assert.Equal(30, minute)

	hour, minute, err = entry.ParseTime("15:3")
	assert.Nil(err)
	assert.Equal(15, hour)
	assert.Equal(3, minute)

	hour, minute, err = entry.ParseTime("00:00")
	assert.Nil(err)
	assert.Equal(0, hour)
	assert.Equal(0, minute)

	hour, minute, err = entry.ParseTime("23:59")
	assert.Nil(err)
	assert.Equal(23, hour)
	assert.Equal(59, minute)

	for _, bad := range []string{"", "15", "24:00", "23:60", "25:60", "1:2:3", "ab:cd", ":30"} {
		_, _, err := entry.ParseTime(bad)
		assert.ErrorIs(err, entry.ErrBadTime, "value %q", bad)
	}

	_, _, err = entry.ParseTime(entry.NormalizeTime("2560"))
	assert.ErrorIs(err, entry.ErrBadTime)
}

func TestDeadline(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	loc := time.FixedZone("MSK", 3*60*60)

	deadline := entry.Deadline(15, time.October, 2026, 15, 30, loc)
	assert.True(time.Date(2026, time.October, 15, 15, 30, 0, 0, loc).Equal(deadline))

	// day overflow rolls into the next month
	deadline = entry.Deadline(31, time.February, 2027, 9, 0, loc)
	assert.Equal(time.March, deadline.Month())
	assert.Equal(3, deadline.Day())
}

func TestYears(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	now := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal([]int{2026, 2027, 2028, 2029, 2030}, entry.Years(now))
}
