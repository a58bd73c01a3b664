package datasync

import "strings"

// FieldType is the semantic cell type of one exported column.
type FieldType string

const (
	FieldText      = FieldType("text")
	FieldInteger   = FieldType("integer")
	FieldReal      = FieldType("real")
	FieldBoolean   = FieldType("boolean")
	FieldTimestamp = FieldType("timestamp")
)

type Field struct {
	Name string
	Type FieldType
}

// EntityType describes one sheet of the workbook: its name, the ordered column
// list and the natural-key columns used to match existing records on restore.
// The catalog has no schema introspection; any column added to a model in the
// models package needs a matching entry here, in the exporter and in the
// importer's coercion block.
type EntityType struct {
	Name       string
	Fields     []Field
	NaturalKey []string
}

func (et EntityType) FieldNames() []string {
	names := make([]string, len(et.Fields))
	for i, f := range et.Fields {
		names[i] = f.Name
	}
	return names
}

func (et EntityType) FieldType(name string) (FieldType, bool) {
	for _, f := range et.Fields {
		if strings.EqualFold(f.Name, name) {
			return f.Type, true
		}
	}
	return "", false
}

// Sheet names, in catalog order. The order is load-bearing: it is the export
// order and the import dependency order (parents before children).
const (
	SheetUsers                = "Users"
	SheetUserAdditionalInfo   = "UserAdditionalInfo"
	SheetStores               = "Stores"
	SheetCategories           = "Categories"
	SheetSubCategories        = "SubCategories"
	SheetItems                = "Items"
	SheetCustomers            = "Customers"
	SheetKhataBookPlans       = "KhataBookPlans"
	SheetKhataBooks           = "KhataBooks"
	SheetCustomerTransactions = "CustomerTransactions"
	SheetOrders               = "Orders"
	SheetOrderItems           = "OrderItems"
	SheetExchangeItems        = "ExchangeItems"
	SheetFirms                = "Firms"
	SheetPurchaseOrders       = "PurchaseOrders"
	SheetPurchaseOrderItems   = "PurchaseOrderItems"
	SheetMetalExchanges       = "MetalExchanges"
)

var catalog = []EntityType{
	{
		Name: SheetUsers,
		Fields: []Field{
			{"id", FieldText},
			{"name", FieldText},
			{"email", FieldText},
			{"mobile_no", FieldText},
			{"pin", FieldText},
			{"role", FieldText},
			{"is_active", FieldBoolean},
			{"created_at", FieldTimestamp},
		},
		NaturalKey: []string{"mobile_no"},
	},
	{
		Name: SheetUserAdditionalInfo,
		Fields: []Field{
			{"id", FieldText},
			{"user_id", FieldText},
			{"aadhaar_no", FieldText},
			{"address", FieldText},
			{"city", FieldText},
			{"state", FieldText},
			{"pin_code", FieldText},
			{"gstin_no", FieldText},
			{"is_verified", FieldBoolean},
			{"created_at", FieldTimestamp},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetStores,
		Fields: []Field{
			{"id", FieldText},
			{"user_id", FieldText},
			{"proprietor_name", FieldText},
			{"name", FieldText},
			{"email", FieldText},
			{"phone", FieldText},
			{"address", FieldText},
			{"registration_no", FieldText},
			{"gstin_no", FieldText},
			{"pan_no", FieldText},
			{"upi_id", FieldText},
			{"invoice_no", FieldInteger},
			{"created_at", FieldTimestamp},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetCategories,
		Fields: []Field{
			{"id", FieldText},
			{"user_id", FieldText},
			{"store_id", FieldText},
			{"name", FieldText},
			{"quantity", FieldInteger},
			{"gs_wt", FieldReal},
			{"fn_wt", FieldReal},
			{"created_at", FieldTimestamp},
		},
		NaturalKey: []string{"user_id", "store_id", "name"},
	},
	{
		Name: SheetSubCategories,
		Fields: []Field{
			{"id", FieldText},
			{"category_id", FieldText},
			{"user_id", FieldText},
			{"store_id", FieldText},
			{"name", FieldText},
			{"quantity", FieldInteger},
			{"gs_wt", FieldReal},
			{"fn_wt", FieldReal},
			{"created_at", FieldTimestamp},
		},
		NaturalKey: []string{"category_id", "user_id", "store_id", "name"},
	},
	{
		Name: SheetItems,
		Fields: []Field{
			{"id", FieldText},
			{"user_id", FieldText},
			{"store_id", FieldText},
			{"display_name", FieldText},
			{"category_id", FieldText},
			{"cat_name", FieldText},
			{"sub_category_id", FieldText},
			{"sub_cat_name", FieldText},
			{"entry_type", FieldText},
			{"quantity", FieldInteger},
			{"gs_wt", FieldReal},
			{"nt_wt", FieldReal},
			{"fn_wt", FieldReal},
			{"purity", FieldText},
			{"crg_type", FieldText},
			{"crg", FieldReal},
			{"oth_crg_des", FieldText},
			{"oth_crg", FieldReal},
			{"cgst", FieldReal},
			{"sgst", FieldReal},
			{"igst", FieldReal},
			{"huid", FieldText},
			{"unit", FieldText},
			{"add_date", FieldTimestamp},
			{"modified_date", FieldTimestamp},
			{"seller_firm_id", FieldText},
			{"purchase_order_id", FieldText},
			{"purchase_item_id", FieldText},
		},
		NaturalKey: []string{"user_id", "store_id", "display_name"},
	},
	{
		Name: SheetCustomers,
		Fields: []Field{
			{"mobile_no", FieldText},
			{"user_id", FieldText},
			{"store_id", FieldText},
			{"name", FieldText},
			{"address", FieldText},
			{"gstin_pan", FieldText},
			{"total_item_bought", FieldInteger},
			{"total_amount", FieldReal},
			{"notes", FieldText},
			{"add_date", FieldTimestamp},
			{"last_modified_date", FieldTimestamp},
		},
		NaturalKey: []string{"user_id", "store_id", "mobile_no"},
	},
	{
		Name: SheetKhataBookPlans,
		Fields: []Field{
			{"id", FieldText},
			{"name", FieldText},
			{"pay_months", FieldInteger},
			{"benefit_months", FieldInteger},
			{"benefit_percentage", FieldReal},
			{"min_amount", FieldReal},
			{"description", FieldText},
			{"is_active", FieldBoolean},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetKhataBooks,
		Fields: []Field{
			{"id", FieldText},
			{"user_id", FieldText},
			{"store_id", FieldText},
			{"customer_mobile", FieldText},
			{"plan_name", FieldText},
			{"start_date", FieldTimestamp},
			{"end_date", FieldTimestamp},
			{"monthly_amount", FieldReal},
			{"total_months", FieldInteger},
			{"status", FieldText},
			{"notes", FieldText},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetCustomerTransactions,
		Fields: []Field{
			{"id", FieldText},
			{"user_id", FieldText},
			{"store_id", FieldText},
			{"customer_mobile", FieldText},
			{"khata_book_id", FieldText},
			{"transaction_date", FieldTimestamp},
			{"category", FieldText},
			{"transaction_type", FieldText},
			{"amount", FieldReal},
			{"month_number", FieldInteger},
			{"description", FieldText},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetOrders,
		Fields: []Field{
			{"id", FieldText},
			{"user_id", FieldText},
			{"store_id", FieldText},
			{"customer_mobile", FieldText},
			{"order_date", FieldTimestamp},
			{"total_amount", FieldReal},
			{"total_tax", FieldReal},
			{"total_charge", FieldReal},
			{"discount", FieldReal},
			{"note", FieldText},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetOrderItems,
		Fields: []Field{
			{"id", FieldText},
			{"order_id", FieldText},
			{"order_date", FieldTimestamp},
			{"customer_mobile", FieldText},
			{"item_id", FieldText},
			{"display_name", FieldText},
			{"cat_name", FieldText},
			{"sub_cat_name", FieldText},
			{"entry_type", FieldText},
			{"quantity", FieldInteger},
			{"gs_wt", FieldReal},
			{"nt_wt", FieldReal},
			{"fn_wt", FieldReal},
			{"fn_metal_price", FieldReal},
			{"purity", FieldText},
			{"crg_type", FieldText},
			{"crg", FieldReal},
			{"oth_crg", FieldReal},
			{"cgst", FieldReal},
			{"sgst", FieldReal},
			{"igst", FieldReal},
			{"huid", FieldText},
			{"price", FieldReal},
			{"charge", FieldReal},
			{"tax", FieldReal},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetExchangeItems,
		Fields: []Field{
			{"id", FieldText},
			{"order_id", FieldText},
			{"metal_type", FieldText},
			{"purity", FieldText},
			{"gross_weight", FieldReal},
			{"fine_weight", FieldReal},
			{"price", FieldReal},
			{"is_exchanged_by_metal", FieldBoolean},
			{"exchange_value", FieldReal},
			{"add_date", FieldTimestamp},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetFirms,
		Fields: []Field{
			{"id", FieldText},
			{"name", FieldText},
			{"gstin_no", FieldText},
			{"address", FieldText},
			{"phone", FieldText},
			{"mobile_no", FieldText},
			{"email", FieldText},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetPurchaseOrders,
		Fields: []Field{
			{"id", FieldText},
			{"seller_firm_id", FieldText},
			{"bill_no", FieldText},
			{"bill_date", FieldTimestamp},
			{"entry_date", FieldTimestamp},
			{"extra_charge_description", FieldText},
			{"extra_charge", FieldReal},
			{"total_final_weight", FieldReal},
			{"total_final_amount", FieldReal},
			{"cgst_percent", FieldReal},
			{"sgst_percent", FieldReal},
			{"igst_percent", FieldReal},
			{"notes", FieldText},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetPurchaseOrderItems,
		Fields: []Field{
			{"id", FieldText},
			{"purchase_order_id", FieldText},
			{"cat_id", FieldText},
			{"cat_name", FieldText},
			{"sub_cat_id", FieldText},
			{"sub_cat_name", FieldText},
			{"gs_wt", FieldReal},
			{"purity", FieldText},
			{"nt_wt", FieldReal},
			{"fn_wt", FieldReal},
			{"fn_rate", FieldReal},
			{"wastage_percent", FieldReal},
		},
		NaturalKey: []string{"id"},
	},
	{
		Name: SheetMetalExchanges,
		Fields: []Field{
			{"id", FieldText},
			{"purchase_order_id", FieldText},
			{"cat_id", FieldText},
			{"cat_name", FieldText},
			{"sub_cat_id", FieldText},
			{"sub_cat_name", FieldText},
			{"fn_weight", FieldReal},
			{"is_paid", FieldBoolean},
			{"add_date", FieldTimestamp},
		},
		NaturalKey: []string{"id"},
	},
}

// Catalog returns the entity registry in export/import order.
func Catalog() []EntityType {
	return catalog
}

// EntityByName looks up one catalog entry. Name match is case-insensitive to
// tolerate workbooks edited by hand.
func EntityByName(name string) (EntityType, bool) {
	for _, et := range catalog {
		if strings.EqualFold(et.Name, name) {
			return et, true
		}
	}
	return EntityType{}, false
}
