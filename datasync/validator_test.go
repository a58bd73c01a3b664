package datasync_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmdatafocus/jewelvault_backend/datasync"
	"github.com/xuri/excelize/v2"
)

// writeCatalogWorkbook writes a workbook holding one sheet per catalog entity
// with the expected header row, after applying mutate to the open file.
func writeCatalogWorkbook(t *testing.T, mutate func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	for _, et := range datasync.Catalog() {
		if _, err := f.NewSheet(et.Name); err != nil {
			t.Fatalf("new sheet %s: %v", et.Name, err)
		}
		header := make([]interface{}, 0, len(et.Fields))
		for _, name := range et.FieldNames() {
			header = append(header, name)
		}
		if err := f.SetSheetRow(et.Name, "A1", &header); err != nil {
			t.Fatalf("set header %s: %v", et.Name, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("delete default sheet: %v", err)
	}
	if mutate != nil {
		mutate(f)
	}
	path := filepath.Join(t.TempDir(), "backup.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestValidateWorkbookAcceptsCompleteFile(t *testing.T) {
	path := writeCatalogWorkbook(t, nil)
	result := datasync.ValidateWorkbook(path)
	if !result.IsValid {
		t.Fatalf("valid workbook rejected: %s", result.Message)
	}
	if result.Path != path {
		t.Errorf("result path = %q, want %q", result.Path, path)
	}
}

func TestValidateWorkbookIgnoresCaseAndExtras(t *testing.T) {
	path := writeCatalogWorkbook(t, func(f *excelize.File) {
		// extra sheets and extra trailing columns are tolerated
		if _, err := f.NewSheet("ScratchPad"); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		if err := f.SetCellValue(datasync.SheetFirms, "Z1", "notes"); err != nil {
			t.Fatalf("set cell: %v", err)
		}
		if err := f.SetSheetName(datasync.SheetUsers, "USERS"); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	})
	result := datasync.ValidateWorkbook(path)
	if !result.IsValid {
		t.Fatalf("workbook with benign differences rejected: %s", result.Message)
	}
}

func TestValidateWorkbookReportsMissingSheet(t *testing.T) {
	path := writeCatalogWorkbook(t, func(f *excelize.File) {
		if err := f.DeleteSheet(datasync.SheetCustomers); err != nil {
			t.Fatalf("delete sheet: %v", err)
		}
	})
	result := datasync.ValidateWorkbook(path)
	if result.IsValid {
		t.Fatal("workbook with a missing sheet accepted")
	}
	if !strings.Contains(result.Message, `missing sheet "Customers"`) {
		t.Errorf("message does not name the missing sheet: %s", result.Message)
	}
}

func TestValidateWorkbookReportsColumnProblems(t *testing.T) {
	path := writeCatalogWorkbook(t, func(f *excelize.File) {
		// swap the first two Items columns
		if err := f.SetCellValue(datasync.SheetItems, "A1", "user_id"); err != nil {
			t.Fatalf("set cell: %v", err)
		}
		if err := f.SetCellValue(datasync.SheetItems, "B1", "id"); err != nil {
			t.Fatalf("set cell: %v", err)
		}
	})
	result := datasync.ValidateWorkbook(path)
	if result.IsValid {
		t.Fatal("workbook with reordered columns accepted")
	}
	if !strings.Contains(result.Message, `sheet "Items"`) {
		t.Errorf("message does not name the sheet: %s", result.Message)
	}
	if !strings.Contains(result.Message, `column 1 is "user_id", want "id"`) {
		t.Errorf("message does not describe the mismatch: %s", result.Message)
	}
}

func TestValidateWorkbookCollectsAllProblems(t *testing.T) {
	path := writeCatalogWorkbook(t, func(f *excelize.File) {
		if err := f.DeleteSheet(datasync.SheetFirms); err != nil {
			t.Fatalf("delete sheet: %v", err)
		}
		if err := f.DeleteSheet(datasync.SheetOrders); err != nil {
			t.Fatalf("delete sheet: %v", err)
		}
	})
	result := datasync.ValidateWorkbook(path)
	if result.IsValid {
		t.Fatal("broken workbook accepted")
	}
	for _, want := range []string{`missing sheet "Firms"`, `missing sheet "Orders"`} {
		if !strings.Contains(result.Message, want) {
			t.Errorf("message lost a problem, want %s in: %s", want, result.Message)
		}
	}
}

func TestValidateWorkbookRejectsUnreadableFile(t *testing.T) {
	result := datasync.ValidateWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	if result.IsValid {
		t.Fatal("nonexistent file accepted")
	}
	if !strings.Contains(result.Message, "cannot open file") {
		t.Errorf("unexpected message: %s", result.Message)
	}
}
