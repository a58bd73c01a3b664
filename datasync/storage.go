package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	backupPrefix = "database_backups/"

	// BlobTimestampLayout is embedded in blob names. Lexicographic order of the
	// names must equal chronological order; this layout guarantees it.
	BlobTimestampLayout = "20060102_150405"

	workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// BackupStorage is a thin client over Google Cloud Storage, namespaced per
// user mobile number. All failures come back as *TransportError.
type BackupStorage struct {
	client *storage.Client
	bucket string
}

// NewBackupStorage builds a storage client from the environment: GCS_BUCKET is
// required, GCS_CREDENTIALS_JSON overrides application default credentials.
func NewBackupStorage(ctx context.Context) (*BackupStorage, error) {
	bucket := strings.TrimSpace(os.Getenv("GCS_BUCKET"))
	if bucket == "" {
		return nil, NewSetupError("GCS_BUCKET is required", nil)
	}

	var client *storage.Client
	var err error
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, NewTransportError("create storage client", err)
	}

	return &BackupStorage{client: client, bucket: bucket}, nil
}

func (s *BackupStorage) Close() error {
	return s.client.Close()
}

// UserPrefix returns the object namespace of one user's backups.
func UserPrefix(userMobile string) string {
	return backupPrefix + userMobile + "/"
}

// BackupObjectName builds the blob file name for a backup taken at t.
func BackupObjectName(userMobile string, t time.Time) string {
	return fmt.Sprintf("jewelvault_backup_%s_%s.xlsx", userMobile, t.Format(BlobTimestampLayout))
}

func (s *BackupStorage) objectURL(objectKey string) string {
	return "https://storage.googleapis.com/" + s.bucket + "/" + objectKey
}

// Upload stores the workbook at localPath under the user's namespace and
// returns its access URL. Every existing blob of that user is deleted first:
// the write path keeps exactly one backup per tenant.
func (s *BackupStorage) Upload(ctx context.Context, localPath string, userMobile string) (string, error) {
	existing, err := s.List(ctx, userMobile)
	if err != nil {
		return "", err
	}
	for _, blob := range existing {
		if err := s.Delete(ctx, userMobile, blob.FileName); err != nil {
			return "", err
		}
	}

	src, err := os.Open(localPath)
	if err != nil {
		return "", NewTransportError("open backup file", err)
	}
	defer src.Close()

	objectKey := UserPrefix(userMobile) + BackupObjectName(userMobile, time.Now())
	wc := s.client.Bucket(s.bucket).Object(objectKey).NewWriter(ctx)
	wc.ContentType = workbookContentType

	if _, err := io.Copy(wc, src); err != nil {
		wc.Close()
		return "", NewTransportError("write backup object", err)
	}
	if err := wc.Close(); err != nil {
		return "", NewTransportError("finalize backup object", err)
	}

	return s.objectURL(objectKey), nil
}

// List returns the user's backups, newest first. Blob names embed a sortable
// timestamp, so descending name order is descending upload time.
func (s *BackupStorage) List(ctx context.Context, userMobile string) ([]BackupInfo, error) {
	prefix := UserPrefix(userMobile)
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	var infos []BackupInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, NewTransportError("list backup objects", err)
		}
		infos = append(infos, BackupInfo{
			FileName:    strings.TrimPrefix(attrs.Name, prefix),
			UploadDate:  attrs.Created,
			FileSize:    attrs.Size,
			DownloadURL: s.objectURL(attrs.Name),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].FileName > infos[j].FileName
	})
	return infos, nil
}

// ListLatest returns the newest backup of the user, or nil when none exists.
func (s *BackupStorage) ListLatest(ctx context.Context, userMobile string) (*BackupInfo, error) {
	infos, err := s.List(ctx, userMobile)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, nil
	}
	return &infos[0], nil
}

// Download copies one backup blob to destPath.
func (s *BackupStorage) Download(ctx context.Context, userMobile string, fileName string, destPath string) error {
	objectKey := UserPrefix(userMobile) + fileName
	rc, err := s.client.Bucket(s.bucket).Object(objectKey).NewReader(ctx)
	if err != nil {
		return NewTransportError(fmt.Sprintf("open backup object %s", fileName), err)
	}
	defer rc.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return NewTransportError("create local file", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, rc); err != nil {
		return NewTransportError(fmt.Sprintf("download backup object %s", fileName), err)
	}
	return nil
}

// Delete removes one backup blob. A missing blob is not an error.
func (s *BackupStorage) Delete(ctx context.Context, userMobile string, fileName string) error {
	objectKey := UserPrefix(userMobile) + fileName
	err := s.client.Bucket(s.bucket).Object(objectKey).Delete(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return NewTransportError(fmt.Sprintf("delete backup object %s", fileName), err)
	}
	return nil
}

// CleanupOldest deletes every backup beyond the keep newest and returns the
// number deleted. The upload path does not call this; it is a maintenance
// operation only.
func (s *BackupStorage) CleanupOldest(ctx context.Context, userMobile string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	infos, err := s.List(ctx, userMobile)
	if err != nil {
		return 0, err
	}
	if len(infos) <= keep {
		return 0, nil
	}

	var deleted int
	for _, blob := range infos[keep:] {
		if err := s.Delete(ctx, userMobile, blob.FileName); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
