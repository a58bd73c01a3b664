package datasync

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// rowValues wraps one data row keyed by header column name and applies the
// cell coercion rules. A failed parse never fails the row: the value falls
// back to a default (0, false, "now") and the row is marked defaulted so the
// import summary can report how many rows carried substituted values.
type rowValues struct {
	fields    map[string]string
	defaulted bool
}

func newRowValues(header []string, row []string) *rowValues {
	fields := make(map[string]string, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if i < len(row) {
			fields[name] = row[i]
		} else {
			// excelize drops trailing empty cells
			fields[name] = ""
		}
	}
	return &rowValues{fields: fields}
}

func (r *rowValues) Text(field string) string {
	return strings.TrimSpace(r.fields[field])
}

// Int truncates fractional numerics ("12.7" becomes 12). A non-empty cell
// that parses as neither integer nor float defaults to 0.
func (r *rowValues) Int(field string) int {
	raw := r.Text(field)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	r.defaulted = true
	return 0
}

func (r *rowValues) Decimal(field string) decimal.Decimal {
	raw := r.Text(field)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		r.defaulted = true
		return decimal.Zero
	}
	return d
}

// Bool accepts boolean cells and the literals "true"/"false"/"1"/"0".
func (r *rowValues) Bool(field string) *bool {
	v := false
	switch strings.ToLower(r.Text(field)) {
	case "true", "1":
		v = true
	case "false", "0", "":
	default:
		r.defaulted = true
	}
	return &v
}

// Time parses the fixed workbook layout. An unparseable or empty cell
// defaults to the current time, matching the historical restore behavior;
// the row is marked defaulted so the substitution is visible in the summary.
func (r *rowValues) Time(field string) time.Time {
	t, err := time.ParseInLocation(TimestampLayout, r.Text(field), time.Local)
	if err != nil {
		r.defaulted = true
		return time.Now()
	}
	return t
}
