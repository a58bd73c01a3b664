package datasync_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/mmdatafocus/jewelvault_backend/datasync"
)

// After any successful upload exactly one blob exists under the user's
// namespace: the write path deletes every prior blob first. CleanupOldest
// stays a separate maintenance pass.
func TestUploadKeepsSingleBackupPerUser(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()
	const bucket = "jewelvault-test-backups"
	const mobile = "9876543210"

	gcsName, gcsPort := startFakeGCSContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(gcsName) })

	t.Setenv("STORAGE_EMULATOR_HOST", "127.0.0.1:"+gcsPort)
	t.Setenv("GCS_BUCKET", bucket)

	raw, err := storage.NewClient(ctx)
	if err != nil {
		t.Fatalf("storage client: %v", err)
	}
	defer raw.Close()
	if err := raw.Bucket(bucket).Create(ctx, "test-project", nil); err != nil {
		t.Fatalf("create bucket: %v", err)
	}

	bs, err := datasync.NewBackupStorage(ctx)
	if err != nil {
		t.Fatalf("NewBackupStorage: %v", err)
	}
	defer bs.Close()

	first := writeTempWorkbookFile(t, "first")
	if _, err := bs.Upload(ctx, first, mobile); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	assertBlobCount(t, ctx, bs, mobile, 1)

	second := writeTempWorkbookFile(t, "second")
	url, err := bs.Upload(ctx, second, mobile)
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	infos := assertBlobCount(t, ctx, bs, mobile, 1)
	if !strings.HasSuffix(url, infos[0].FileName) {
		t.Errorf("upload url %q does not end with the remaining blob %q", url, infos[0].FileName)
	}

	// Another user's namespace is untouched by the retention pass.
	if _, err := bs.Upload(ctx, first, "8765432109"); err != nil {
		t.Fatalf("other user upload: %v", err)
	}
	assertBlobCount(t, ctx, bs, mobile, 1)
	assertBlobCount(t, ctx, bs, "8765432109", 1)

	// Seed stale blobs directly, then prune with the maintenance pass.
	for _, age := range []time.Duration{48 * time.Hour, 24 * time.Hour} {
		key := datasync.UserPrefix(mobile) + datasync.BackupObjectName(mobile, time.Now().Add(-age))
		w := raw.Bucket(bucket).Object(key).NewWriter(ctx)
		if _, err := w.Write([]byte("stale")); err != nil {
			t.Fatalf("write stale blob: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close stale blob: %v", err)
		}
	}
	assertBlobCount(t, ctx, bs, mobile, 3)

	deleted, err := bs.CleanupOldest(ctx, mobile, 1)
	if err != nil {
		t.Fatalf("CleanupOldest: %v", err)
	}
	if deleted != 2 {
		t.Errorf("CleanupOldest deleted %d blobs, want 2", deleted)
	}
	infos = assertBlobCount(t, ctx, bs, mobile, 1)
	if !strings.HasSuffix(url, infos[0].FileName) {
		t.Errorf("cleanup kept %q, want the newest blob from %q", infos[0].FileName, url)
	}
}

func assertBlobCount(t *testing.T, ctx context.Context, bs *datasync.BackupStorage, mobile string, want int) []datasync.BackupInfo {
	t.Helper()
	infos, err := bs.List(ctx, mobile)
	if err != nil {
		t.Fatalf("List(%s): %v", mobile, err)
	}
	if len(infos) != want {
		t.Fatalf("user %s has %d blobs, want %d: %+v", mobile, len(infos), want, infos)
	}
	return infos
}

func writeTempWorkbookFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backup.xlsx")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp workbook: %v", err)
	}
	return path
}

func startFakeGCSContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("jewelvault-test-gcs-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:4443",
		"fsouza/fake-gcs-server",
		"-scheme", "http",
	)
	if err != nil {
		t.Fatalf("start fake-gcs container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "4443/tcp")
	if err != nil {
		t.Fatalf("fake-gcs docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get("http://127.0.0.1:" + port + "/storage/v1/b")
		if err == nil {
			resp.Body.Close()
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("fake-gcs did not become ready")
	return "", ""
}
