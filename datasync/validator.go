package datasync

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ValidateWorkbook checks that every catalog sheet is present with the right
// header columns. It collects every problem instead of stopping at the first,
// so one message can name everything that is wrong. Data rows are not read;
// run this before any import.
func ValidateWorkbook(path string) FileValidationResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return FileValidationResult{
			IsValid: false,
			Message: fmt.Sprintf("cannot open file: %v", err),
			Path:    path,
		}
	}
	defer f.Close()

	present := map[string]string{} // lower name -> actual sheet name
	for _, name := range f.GetSheetList() {
		present[strings.ToLower(name)] = name
	}

	var problems []string
	for _, et := range Catalog() {
		sheetName, ok := present[strings.ToLower(et.Name)]
		if !ok {
			problems = append(problems, fmt.Sprintf("missing sheet %q", et.Name))
			continue
		}

		header, err := readHeaderRow(f, sheetName)
		if err != nil {
			problems = append(problems, fmt.Sprintf("sheet %q: cannot read header row: %v", et.Name, err))
			continue
		}

		for i, field := range et.Fields {
			if i >= len(header) || strings.TrimSpace(header[i]) == "" {
				problems = append(problems, fmt.Sprintf("sheet %q: missing column %q at position %d", et.Name, field.Name, i+1))
				continue
			}
			if !strings.EqualFold(strings.TrimSpace(header[i]), field.Name) {
				problems = append(problems, fmt.Sprintf("sheet %q: column %d is %q, want %q", et.Name, i+1, strings.TrimSpace(header[i]), field.Name))
			}
		}
	}

	if len(problems) > 0 {
		return FileValidationResult{
			IsValid: false,
			Message: strings.Join(problems, "; "),
			Path:    path,
		}
	}
	return FileValidationResult{IsValid: true, Message: "file structure is valid", Path: path}
}

// readHeaderRow reads only row 0 of a sheet without loading the data rows.
func readHeaderRow(f *excelize.File, sheetName string) ([]string, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("sheet is empty")
	}
	return rows.Columns()
}
