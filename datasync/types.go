package datasync

import (
	"fmt"
	"strings"
	"time"
)

// RestoreMode decides what happens when an incoming row matches an existing
// record by natural key.
type RestoreMode string

const (
	// RestoreModeMerge inserts missing rows and leaves matching rows untouched.
	RestoreModeMerge = RestoreMode("MERGE")
	// RestoreModeReplace overwrites unconditionally, except the active admin
	// user and the active store which are never replaced.
	RestoreModeReplace = RestoreMode("REPLACE")
)

func ParseRestoreMode(s string) (RestoreMode, error) {
	switch RestoreMode(strings.ToUpper(strings.TrimSpace(s))) {
	case RestoreModeMerge:
		return RestoreModeMerge, nil
	case RestoreModeReplace:
		return RestoreModeReplace, nil
	}
	return "", fmt.Errorf("unknown restore mode %q (want MERGE or REPLACE)", s)
}

// RestoreSource selects where the workbook comes from.
type RestoreSource string

const (
	RestoreSourceCloud = RestoreSource("CLOUD")
	RestoreSourceLocal = RestoreSource("LOCAL")
)

func ParseRestoreSource(s string) (RestoreSource, error) {
	switch RestoreSource(strings.ToUpper(strings.TrimSpace(s))) {
	case RestoreSourceCloud:
		return RestoreSourceCloud, nil
	case RestoreSourceLocal:
		return RestoreSourceLocal, nil
	}
	return "", fmt.Errorf("unknown restore source %q (want CLOUD or LOCAL)", s)
}

// TenantScope is the active identity every restored row is rewritten to.
type TenantScope struct {
	UserId     string
	StoreId    string
	UserMobile string
}

// ProgressFunc receives human-readable progress. Percent is non-decreasing
// within one operation.
type ProgressFunc func(message string, percent int)

// EntityOutcome counts what happened to one entity type's rows during a restore.
// Defaulted counts rows where at least one unparseable cell fell back to a
// default value; those rows still count as Added or Skipped.
type EntityOutcome struct {
	Added     int `json:"added"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
	Defaulted int `json:"defaulted"`
}

// ImportSummary aggregates per-entity-type outcomes of one restore run.
type ImportSummary struct {
	Outcomes map[string]*EntityOutcome `json:"outcomes"`
}

func NewImportSummary() *ImportSummary {
	return &ImportSummary{Outcomes: map[string]*EntityOutcome{}}
}

func (s *ImportSummary) Outcome(entityName string) *EntityOutcome {
	o, ok := s.Outcomes[entityName]
	if !ok {
		o = &EntityOutcome{}
		s.Outcomes[entityName] = o
	}
	return o
}

func (s *ImportSummary) TotalAdded() int {
	var n int
	for _, o := range s.Outcomes {
		n += o.Added
	}
	return n
}

func (s *ImportSummary) TotalSkipped() int {
	var n int
	for _, o := range s.Outcomes {
		n += o.Skipped
	}
	return n
}

func (s *ImportSummary) TotalFailed() int {
	var n int
	for _, o := range s.Outcomes {
		n += o.Failed
	}
	return n
}

func (s *ImportSummary) String() string {
	var b strings.Builder
	for _, et := range Catalog() {
		o, ok := s.Outcomes[et.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: added=%d skipped=%d failed=%d", et.Name, o.Added, o.Skipped, o.Failed)
		if o.Defaulted > 0 {
			fmt.Fprintf(&b, " defaulted=%d", o.Defaulted)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BackupInfo describes one stored backup blob.
type BackupInfo struct {
	FileName    string    `json:"file_name"`
	UploadDate  time.Time `json:"upload_date"`
	FileSize    int64     `json:"file_size"`
	DownloadURL string    `json:"download_url"`
}

// FileValidationResult is the verdict of the structure validator.
type FileValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
	Path    string `json:"path"`
}
