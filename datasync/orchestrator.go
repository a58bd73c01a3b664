package datasync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bsm/redislock"
	"github.com/mmdatafocus/jewelvault_backend/config"
	"github.com/mmdatafocus/jewelvault_backend/utils"
	"gorm.io/gorm"
)

const restoreLockTTL = 10 * time.Minute

// Orchestrator sequences the backup pipeline (export -> upload) and the
// restore pipeline (fetch -> validate -> import -> cleanup). It is the only
// channel for progress reporting; percent is non-decreasing within one
// operation.
type Orchestrator struct {
	db      *gorm.DB
	storage *BackupStorage
}

func NewOrchestrator(db *gorm.DB, storage *BackupStorage) *Orchestrator {
	return &Orchestrator{db: db, storage: storage}
}

// progressReporter clamps percent so a caller's stream never goes backwards.
type progressReporter struct {
	fn   ProgressFunc
	last int
}

func (p *progressReporter) report(message string, percent int) {
	if percent < p.last {
		percent = p.last
	}
	if percent > 100 {
		percent = 100
	}
	p.last = percent
	if p.fn != nil {
		p.fn(message, percent)
	}
}

// resolveScope reads the active tenant identity from the context. A missing
// or invalid identity is a SetupError; nothing runs without it.
func resolveScope(ctx context.Context) (TenantScope, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return TenantScope{}, NewSetupError("no active user", nil)
	}
	storeId, ok := utils.GetStoreIdFromContext(ctx)
	if !ok || storeId == "" {
		return TenantScope{}, NewSetupError("no active store", nil)
	}
	mobile, ok := utils.GetUserMobileFromContext(ctx)
	if !ok || mobile == "" {
		return TenantScope{}, NewSetupError("no active user mobile", nil)
	}
	if err := utils.ValidatePhoneNumber(mobile, utils.CountryCode); err != nil {
		return TenantScope{}, NewSetupError("active user mobile is not a valid phone number", err)
	}
	return TenantScope{UserId: userId, StoreId: storeId, UserMobile: mobile}, nil
}

// PerformBackup exports the datastore to a temp workbook and uploads it to
// the user's cloud namespace. Returns the storage URL of the new blob.
// Progress: export 0-60, upload 60-100.
func (o *Orchestrator) PerformBackup(ctx context.Context, progress ProgressFunc) (string, error) {
	p := &progressReporter{fn: progress}

	scope, err := resolveScope(ctx)
	if err != nil {
		return "", err
	}

	p.report("Preparing backup", 0)

	tmp, err := os.CreateTemp("", "jewelvault_backup_*.xlsx")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	if !config.KeepLocalExports() {
		defer os.Remove(tmpPath)
	}

	err = ExportWorkbook(ctx, o.db, tmpPath, func(sheetName string, i, n int) {
		p.report("Exporting "+sheetName, i*60/n)
	})
	if err != nil {
		return "", err
	}
	p.report("Export complete", 60)

	p.report("Uploading backup", 60)
	url, err := o.storage.Upload(ctx, tmpPath, scope.UserMobile)
	if err != nil {
		return "", err
	}

	p.report("Backup complete", 100)
	return url, nil
}

// PerformRestore restores the latest cloud backup of userMobile.
func (o *Orchestrator) PerformRestore(ctx context.Context, userMobile string, mode RestoreMode, progress ProgressFunc) (*ImportSummary, error) {
	return o.PerformRestoreWithSource(ctx, userMobile, RestoreSourceCloud, "", mode, progress)
}

// PerformRestoreWithSource restores either the latest cloud backup or a local
// workbook picked by the caller. Progress: fetch/validate 0-20, import 20-90,
// cleanup 90-100. The restore holds a per-store lock while it runs; a second
// concurrent restore against the same store fails with a SetupError.
func (o *Orchestrator) PerformRestoreWithSource(ctx context.Context, userMobile string, source RestoreSource, localPath string, mode RestoreMode, progress ProgressFunc) (*ImportSummary, error) {
	p := &progressReporter{fn: progress}

	scope, err := resolveScope(ctx)
	if err != nil {
		return nil, err
	}

	if locker := config.GetRedisLock(); locker != nil {
		lock, err := locker.Obtain(ctx, "datasync:restore:"+scope.StoreId, restoreLockTTL, nil)
		if err != nil {
			if errors.Is(err, redislock.ErrNotObtained) {
				return nil, NewSetupError("another restore is already running for this store", nil)
			}
			return nil, NewTransportError("acquire restore lock", err)
		}
		defer lock.Release(context.WithoutCancel(ctx))
	}

	var path string
	var cleanup func()

	switch source {
	case RestoreSourceCloud:
		p.report("Fetching latest backup", 0)
		latest, err := o.storage.ListLatest(ctx, userMobile)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return nil, NewValidationError(fmt.Sprintf("no cloud backup found for %s", userMobile), nil)
		}

		tmp, err := os.CreateTemp("", "jewelvault_restore_*.xlsx")
		if err != nil {
			return nil, fmt.Errorf("create temp file: %w", err)
		}
		path = tmp.Name()
		tmp.Close()
		cleanup = func() { os.Remove(path) }

		if err := o.storage.Download(ctx, userMobile, latest.FileName, path); err != nil {
			cleanup()
			return nil, err
		}
		p.report("Backup downloaded", 10)

	case RestoreSourceLocal:
		if localPath == "" {
			return nil, NewSetupError("local restore requires a file path", nil)
		}
		path = localPath
		cleanup = func() {}

	default:
		return nil, NewSetupError(fmt.Sprintf("unknown restore source %q", source), nil)
	}
	defer cleanup()

	p.report("Validating backup file", 15)
	result := ValidateWorkbook(path)
	if !result.IsValid {
		return nil, NewValidationError(result.Message, nil)
	}
	p.report("Backup file is valid", 20)

	summary, err := ImportWorkbook(ctx, o.db, path, scope, mode, func(sheetName string, i, n int) {
		p.report("Restoring "+sheetName, 20+i*70/n)
	})
	if err != nil {
		return nil, err
	}
	p.report("Import complete", 90)

	p.report("Cleaning up", 95)
	p.report("Restore complete", 100)
	return summary, nil
}

// ValidateFile checks a candidate workbook's structure without importing data.
func (o *Orchestrator) ValidateFile(path string) FileValidationResult {
	return ValidateWorkbook(path)
}

// ListBackups lists the user's stored backups, newest first.
func (o *Orchestrator) ListBackups(ctx context.Context, userMobile string) ([]BackupInfo, error) {
	return o.storage.List(ctx, userMobile)
}

// CleanupOldBackups deletes every backup of the user beyond the keep newest.
func (o *Orchestrator) CleanupOldBackups(ctx context.Context, userMobile string, keep int) (int, error) {
	return o.storage.CleanupOldest(ctx, userMobile, keep)
}
