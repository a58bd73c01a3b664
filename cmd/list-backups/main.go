// list-backups prints the cloud backups of one user, newest first, and can
// optionally prune everything beyond the keep-N newest.
//
// Usage:
//
//	GCS_BUCKET=... go run ./cmd/list-backups -mobile <mobile> [-keep 3]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mmdatafocus/jewelvault_backend/datasync"
)

func main() {
	mobile := flag.String("mobile", os.Getenv("ACTIVE_USER_MOBILE"), "user mobile number")
	keep := flag.Int("keep", -1, "if >= 0, delete all backups beyond the keep newest")
	flag.Parse()

	if *mobile == "" {
		fmt.Fprintln(os.Stderr, "mobile is required (flag or ACTIVE_USER_MOBILE env var)")
		os.Exit(2)
	}

	ctx := context.Background()
	storage, err := datasync.NewBackupStorage(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init storage: %v\n", err)
		os.Exit(1)
	}
	defer storage.Close()

	infos, err := storage.List(ctx, *mobile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list backups: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("no backups found")
	}
	for _, info := range infos {
		fmt.Printf("%s\t%d bytes\t%s\n", info.FileName, info.FileSize, info.UploadDate.Format("2006-01-02 15:04:05"))
	}

	if *keep >= 0 {
		deleted, err := storage.CleanupOldest(ctx, *mobile, *keep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("deleted %d old backup(s)\n", deleted)
	}
}
