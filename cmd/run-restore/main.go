// run-restore restores a backup workbook into the live datastore under the
// active tenant. Source is the latest cloud blob (default) or a local file.
//
// Usage:
//
//	go run ./cmd/run-restore -user-id <id> -store-id <id> -mobile <mobile> \
//	    -mode merge|replace [-source cloud|local] [-file backup.xlsx]
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
	modeArg := flag.String("mode", "merge", "restore mode: merge or replace")
	sourceArg := flag.String("source", "cloud", "restore source: cloud or local")
	file := flag.String("file", "", "local workbook path (required with -source local)")
	flag.Parse()

	if *userId == "" || *storeId == "" || *mobile == "" {
		fmt.Fprintln(os.Stderr, "user-id, store-id and mobile are required (flags or ACTIVE_* env vars)")
		os.Exit(2)
	}

	mode, err := datasync.ParseRestoreMode(*modeArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	source, err := datasync.ParseRestoreSource(*sourceArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized. Set DB_* env vars.")
		os.Exit(1)
	}
	if os.Getenv("REDIS_ADDRESS") != "" {
		config.ConnectRedisWithRetry()
	}

	ctx := context.Background()
	ctx = utils.SetUserIdInContext(ctx, *userId)
	ctx = utils.SetStoreIdInContext(ctx, *storeId)
	ctx = utils.SetUserMobileInContext(ctx, *mobile)
	ctx = utils.SetCorrelationIdInContext(ctx, uuid.NewString())

	// A local restore never touches cloud storage.
	var storage *datasync.BackupStorage
	if source == datasync.RestoreSourceCloud {
		storage, err = datasync.NewBackupStorage(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "init storage: %v\n", err)
			os.Exit(1)
		}
		defer storage.Close()
	}

	orch := datasync.NewOrchestrator(config.GetDB(), storage)
	summary, err := orch.PerformRestoreWithSource(ctx, *mobile, source, *file, mode, func(message string, percent int) {
		fmt.Printf("[%3d%%] %s\n", percent, message)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "restore failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("restore finished:")
	fmt.Print(summary.String())
}
