package config

import (
	"os"
	"strings"
)

// KeepLocalExports keeps the exported workbook on disk after a backup upload
// instead of removing the temp file. Useful when debugging a bad upload.
//
// Set via env:
// - KEEP_LOCAL_EXPORTS=true
func KeepLocalExports() bool {
	return envFlag("KEEP_LOCAL_EXPORTS")
}

func envFlag(name string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
