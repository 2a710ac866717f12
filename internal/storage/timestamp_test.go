package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTimestamp(t *testing.T) {
	instant := time.Date(2026, 8, 30, 12, 34, 56, 789_000_000, time.UTC)
	assert.Equal(t, "2026-08-30T12-34-56-789Z", EncodeTimestamp(instant))
}

func TestEncodeTimestamp_NonUTCInput(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	instant := time.Date(2026, 8, 30, 14, 34, 56, 789_000_000, loc)
	assert.Equal(t, "2026-08-30T12-34-56-789Z", EncodeTimestamp(instant))
}

func TestDecodeTimestamp_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2026, 8, 30, 12, 34, 56, 789_000_000, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
	}
	for _, instant := range instants {
		decoded, err := DecodeTimestamp(EncodeTimestamp(instant))
		require.NoError(t, err)
		assert.True(t, decoded.Equal(instant), "want %v, got %v", instant, decoded)
	}
}

func TestDecodeTimestamp_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"not-a-timestamp",
		"2026-08-30T12:34:56.789Z", // unencoded ISO-8601
		"2026-08-30T12-34-56Z",     // missing milliseconds
		"2026-08-30",
	}
	for _, s := range invalid {
		_, err := DecodeTimestamp(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestBackupFilename(t *testing.T) {
	instant := time.Date(2026, 8, 30, 12, 34, 56, 789_000_000, time.UTC)
	name := BackupFilename(instant)

	assert.Equal(t, "places-2026-08-30T12-34-56-789Z.json", name)
	assert.True(t, IsBackupFilename(name))

	decoded, err := backupTimestamp(name)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(instant))
}

func TestIsBackupFilename(t *testing.T) {
	assert.True(t, IsBackupFilename("places-2026-08-30T12-34-56-789Z.json"))
	assert.True(t, IsBackupFilename("places-anything.json"))

	assert.False(t, IsBackupFilename("notes-2026-08-30T12-34-56-789Z.json"))
	assert.False(t, IsBackupFilename("places-2026.txt"))
	assert.False(t, IsBackupFilename("places.json"))
	assert.False(t, IsBackupFilename("places-../../etc/passwd.json"))
	assert.False(t, IsBackupFilename("backup/places-2026.json"))
}
