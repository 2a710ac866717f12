package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Backup filenames embed their creation instant: an ISO-8601 UTC timestamp
// with ':' and '.' replaced by '-' so the name is safe on every filesystem.
// EncodeTimestamp and DecodeTimestamp are exact inverses at millisecond
// precision.

const (
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"

	backupPrefix = "places-"
	backupSuffix = ".json"
)

var encodedTimestampRe = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2})-(\d{2})-(\d{2})-(\d{3})Z$`)

var timestampReplacer = strings.NewReplacer(":", "-", ".", "-")

// EncodeTimestamp formats t as a filesystem-safe ISO-8601 instant,
// e.g. 2026-08-30T12-34-56-789Z.
func EncodeTimestamp(t time.Time) string {
	return timestampReplacer.Replace(t.UTC().Format(timestampLayout))
}

// DecodeTimestamp inverts EncodeTimestamp.
func DecodeTimestamp(s string) (time.Time, error) {
	m := encodedTimestampRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("not an encoded timestamp: %q", s)
	}
	iso := fmt.Sprintf("%s:%s:%s.%sZ", m[1], m[2], m[3], m[4])
	return time.Parse(timestampLayout, iso)
}

// BackupFilename names a snapshot taken at t.
func BackupFilename(t time.Time) string {
	return backupPrefix + EncodeTimestamp(t) + backupSuffix
}

// IsBackupFilename reports whether name looks like one of our snapshots.
// Anything else in the backup directory is ignored, and client-supplied
// names that fail this check never reach the filesystem (this also rules
// out path traversal).
func IsBackupFilename(name string) bool {
	return strings.HasPrefix(name, backupPrefix) &&
		strings.HasSuffix(name, backupSuffix) &&
		name == filepath.Base(name)
}

// backupTimestamp extracts the creation instant embedded in a snapshot name.
func backupTimestamp(name string) (time.Time, error) {
	encoded := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupSuffix)
	return DecodeTimestamp(encoded)
}
