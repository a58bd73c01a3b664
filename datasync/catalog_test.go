package datasync_test

import (
	"strings"
	"testing"

	"github.com/mmdatafocus/jewelvault_backend/datasync"
)

func TestCatalogOrderMatchesImportDependencies(t *testing.T) {
	want := []string{
		datasync.SheetUsers,
		datasync.SheetUserAdditionalInfo,
		datasync.SheetStores,
		datasync.SheetCategories,
		datasync.SheetSubCategories,
		datasync.SheetItems,
		datasync.SheetCustomers,
		datasync.SheetKhataBookPlans,
		datasync.SheetKhataBooks,
		datasync.SheetCustomerTransactions,
		datasync.SheetOrders,
		datasync.SheetOrderItems,
		datasync.SheetExchangeItems,
		datasync.SheetFirms,
		datasync.SheetPurchaseOrders,
		datasync.SheetPurchaseOrderItems,
		datasync.SheetMetalExchanges,
	}
	got := datasync.Catalog()
	if len(got) != len(want) {
		t.Fatalf("catalog has %d entities, want %d", len(got), len(want))
	}
	for i, et := range got {
		if et.Name != want[i] {
			t.Errorf("catalog[%d] = %q, want %q", i, et.Name, want[i])
		}
	}
}

func TestCatalogEntitiesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, et := range datasync.Catalog() {
		key := strings.ToLower(et.Name)
		if seen[key] {
			t.Errorf("duplicate sheet name %q", et.Name)
		}
		seen[key] = true

		if len(et.Fields) == 0 {
			t.Errorf("entity %q has no columns", et.Name)
		}
		cols := map[string]bool{}
		for _, f := range et.Fields {
			if f.Name != strings.ToLower(f.Name) {
				t.Errorf("entity %q column %q is not snake_case lower", et.Name, f.Name)
			}
			if cols[f.Name] {
				t.Errorf("entity %q has duplicate column %q", et.Name, f.Name)
			}
			cols[f.Name] = true
		}
		if len(et.NaturalKey) == 0 {
			t.Errorf("entity %q has no natural key", et.Name)
		}
		for _, nk := range et.NaturalKey {
			if !cols[nk] {
				t.Errorf("entity %q natural key %q is not one of its columns", et.Name, nk)
			}
		}
	}
}

func TestEntityByNameIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Items", "items", "ITEMS", "iTeMs"} {
		et, ok := datasync.EntityByName(name)
		if !ok {
			t.Fatalf("EntityByName(%q) not found", name)
		}
		if et.Name != datasync.SheetItems {
			t.Fatalf("EntityByName(%q) = %q, want %q", name, et.Name, datasync.SheetItems)
		}
	}
	if _, ok := datasync.EntityByName("NoSuchSheet"); ok {
		t.Fatal("EntityByName accepted an unknown sheet name")
	}
}

func TestFieldTypeLookup(t *testing.T) {
	et, ok := datasync.EntityByName(datasync.SheetItems)
	if !ok {
		t.Fatal("Items entity missing")
	}
	cases := []struct {
		column string
		want   datasync.FieldType
	}{
		{"display_name", datasync.FieldText},
		{"quantity", datasync.FieldInteger},
		{"gs_wt", datasync.FieldReal},
		{"add_date", datasync.FieldTimestamp},
	}
	for _, c := range cases {
		got, ok := et.FieldType(c.column)
		if !ok {
			t.Errorf("FieldType(%q) not found", c.column)
			continue
		}
		if got != c.want {
			t.Errorf("FieldType(%q) = %q, want %q", c.column, got, c.want)
		}
	}
	if got, ok := et.FieldType("GS_WT"); !ok || got != datasync.FieldReal {
		t.Errorf("FieldType is not case-insensitive: got %q, %v", got, ok)
	}
}

func TestTenantColumnsPresentOnScopedEntities(t *testing.T) {
	scoped := []string{
		datasync.SheetStores,
		datasync.SheetCategories,
		datasync.SheetSubCategories,
		datasync.SheetItems,
		datasync.SheetCustomers,
		datasync.SheetKhataBooks,
		datasync.SheetCustomerTransactions,
		datasync.SheetOrders,
	}
	for _, name := range scoped {
		et, ok := datasync.EntityByName(name)
		if !ok {
			t.Fatalf("entity %q missing", name)
		}
		if _, ok := et.FieldType("user_id"); !ok {
			t.Errorf("scoped entity %q has no user_id column", name)
		}
	}
}
