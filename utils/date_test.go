package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-05", d.String())

	_, err = ParseDate("05-02-2026")
	require.Error(t, err)
	_, err = ParseDate("2026-13-01")
	require.Error(t, err)
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2026, time.February, 5)
	b := NewDate(2026, time.February, 6)

	assert.True(t, a.BeforeDay(b))
	assert.False(t, b.BeforeDay(a))
	assert.False(t, a.SameDay(b))
	assert.True(t, a.SameDay(DateOf(time.Date(2026, 2, 5, 23, 59, 0, 0, time.UTC))))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.February, 5)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-02-05"`, string(raw))

	var back CustomDate
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.SameDay(back))

	var zero CustomDate
	raw, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(raw))
}

func TestDateScan(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.Scan("2026-02-05T00:00:00Z"))
	assert.Equal(t, "2026-02-05", d.String())

	require.NoError(t, d.Scan(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateScanShortString(t *testing.T) {
	var d CustomDate
	require.Error(t, d.Scan("2026"))
	require.Error(t, d.Scan(""))
	require.NoError(t, d.Scan("2026-02-05"))
	assert.Equal(t, "2026-02-05", d.String())
}
