// run-backup performs one cloud backup for the active tenant. A recurring
// scheduler (cron / Cloud Scheduler) is expected to invoke this binary.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//	GCS_BUCKET=... go run ./cmd/run-backup -user-id <id> -store-id <id> -mobile <mobile>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mmdatafocus/jewelvault_backend/config"
	"github.com/mmdatafocus/jewelvault_backend/datasync"
	"github.com/mmdatafocus/jewelvault_backend/utils"
)

func main() {
	userId := flag.String("user-id", os.Getenv("ACTIVE_USER_ID"), "active user id")
	storeId := flag.String("store-id", os.Getenv("ACTIVE_STORE_ID"), "active store id")
	mobile := flag.String("mobile", os.Getenv("ACTIVE_USER_MOBILE"), "active user mobile number")
	flag.Parse()

	if *userId == "" || *storeId == "" || *mobile == "" {
		fmt.Fprintln(os.Stderr, "user-id, store-id and mobile are required (flags or ACTIVE_* env vars)")
		os.Exit(2)
	}

	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized. Set DB_* env vars.")
		os.Exit(1)
	}

	ctx := context.Background()
	ctx = utils.SetUserIdInContext(ctx, *userId)
	ctx = utils.SetStoreIdInContext(ctx, *storeId)
	ctx = utils.SetUserMobileInContext(ctx, *mobile)
	ctx = utils.SetCorrelationIdInContext(ctx, uuid.NewString())

	storage, err := datasync.NewBackupStorage(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init storage: %v\n", err)
		os.Exit(1)
	}
	defer storage.Close()

	orch := datasync.NewOrchestrator(config.GetDB(), storage)
	url, err := orch.PerformBackup(ctx, func(message string, percent int) {
		fmt.Printf("[%3d%%] %s\n", percent, message)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "backup failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("backup stored at %s\n", url)
}
