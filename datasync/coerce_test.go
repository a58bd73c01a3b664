package datasync

import (
	"testing"
	"time"
)

func TestRowValuesText(t *testing.T) {
	rv := newRowValues([]string{"id", " Name ", "email"}, []string{" u-1 ", "Asha", ""})
	if got := rv.Text("id"); got != "u-1" {
		t.Errorf("Text(id) = %q, want %q", got, "u-1")
	}
	// header names are normalized, cell values only trimmed
	if got := rv.Text("name"); got != "Asha" {
		t.Errorf("Text(name) = %q, want %q", got, "Asha")
	}
	if got := rv.Text("email"); got != "" {
		t.Errorf("Text(email) = %q, want empty", got)
	}
	if rv.defaulted {
		t.Error("Text must never mark the row defaulted")
	}
}

func TestRowValuesPadsShortRows(t *testing.T) {
	// excelize drops trailing empty cells when reading rows
	rv := newRowValues([]string{"a", "b", "c"}, []string{"x"})
	if got := rv.Text("c"); got != "" {
		t.Errorf("Text(c) = %q, want empty", got)
	}
	if rv.Int("b") != 0 || rv.defaulted {
		t.Error("missing trailing cell must coerce to zero without defaulting")
	}
}

func TestRowValuesInt(t *testing.T) {
	cases := []struct {
		cell      string
		want      int
		defaulted bool
	}{
		{"42", 42, false},
		{"-7", -7, false},
		{"12.7", 12, false},
		{"", 0, false},
		{"abc", 0, true},
	}
	for _, c := range cases {
		rv := newRowValues([]string{"n"}, []string{c.cell})
		if got := rv.Int("n"); got != c.want {
			t.Errorf("Int(%q) = %d, want %d", c.cell, got, c.want)
		}
		if rv.defaulted != c.defaulted {
			t.Errorf("Int(%q) defaulted = %v, want %v", c.cell, rv.defaulted, c.defaulted)
		}
	}
}

func TestRowValuesDecimal(t *testing.T) {
	rv := newRowValues([]string{"wt"}, []string{"12.345"})
	if got := rv.Decimal("wt"); got.String() != "12.345" {
		t.Errorf("Decimal = %s, want 12.345", got)
	}
	if rv.defaulted {
		t.Error("valid decimal must not default")
	}

	rv = newRowValues([]string{"wt"}, []string{"heavy"})
	if got := rv.Decimal("wt"); !got.IsZero() {
		t.Errorf("Decimal(garbage) = %s, want 0", got)
	}
	if !rv.defaulted {
		t.Error("garbage decimal must mark the row defaulted")
	}

	rv = newRowValues([]string{"wt"}, []string{""})
	if got := rv.Decimal("wt"); !got.IsZero() || rv.defaulted {
		t.Error("empty decimal must be zero without defaulting")
	}
}

func TestRowValuesBool(t *testing.T) {
	cases := []struct {
		cell      string
		want      bool
		defaulted bool
	}{
		{"true", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"false", false, false},
		{"0", false, false},
		{"", false, false},
		{"yes", false, true},
	}
	for _, c := range cases {
		rv := newRowValues([]string{"active"}, []string{c.cell})
		got := rv.Bool("active")
		if got == nil || *got != c.want {
			t.Errorf("Bool(%q) = %v, want %v", c.cell, got, c.want)
		}
		if rv.defaulted != c.defaulted {
			t.Errorf("Bool(%q) defaulted = %v, want %v", c.cell, rv.defaulted, c.defaulted)
		}
	}
}

func TestRowValuesTime(t *testing.T) {
	rv := newRowValues([]string{"created_at"}, []string{"2025-03-01 10:30:45"})
	got := rv.Time("created_at")
	want := time.Date(2025, 3, 1, 10, 30, 45, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Time = %v, want %v", got, want)
	}
	if rv.defaulted {
		t.Error("valid timestamp must not default")
	}

	before := time.Now()
	rv = newRowValues([]string{"created_at"}, []string{"last tuesday"})
	got = rv.Time("created_at")
	if got.Before(before) {
		t.Errorf("Time(garbage) = %v, want a current time", got)
	}
	if !rv.defaulted {
		t.Error("garbage timestamp must mark the row defaulted")
	}
}
