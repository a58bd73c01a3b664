package datasync_test

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/mmdatafocus/jewelvault_backend/datasync"
)

func TestUserPrefixIsolatesTenants(t *testing.T) {
	got := datasync.UserPrefix("9876543210")
	if got != "database_backups/9876543210/" {
		t.Fatalf("UserPrefix = %q", got)
	}
	if strings.HasPrefix(datasync.UserPrefix("98765432109"), got) {
		t.Fatal("one user's prefix must not contain another's")
	}
}

func TestBackupObjectName(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 30, 45, 0, time.UTC)
	got := datasync.BackupObjectName("9876543210", ts)
	want := "jewelvault_backup_9876543210_20250301_103045.xlsx"
	if got != want {
		t.Fatalf("BackupObjectName = %q, want %q", got, want)
	}
}

// Listing sorts by file name descending; the embedded timestamp layout must
// keep lexicographic order equal to chronological order for that to mean
// newest-first.
func TestBackupObjectNamesSortChronologically(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC),
		time.Date(2025, 9, 30, 8, 15, 0, 0, time.UTC),
		time.Date(2025, 10, 2, 8, 15, 0, 0, time.UTC),
	}
	names := make([]string, len(times))
	for i, ts := range times {
		names[i] = datasync.BackupObjectName("9876543210", ts)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("object names do not sort chronologically: %v", names)
	}
}
