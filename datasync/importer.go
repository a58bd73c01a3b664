package datasync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mmdatafocus/jewelvault_backend/config"
	"github.com/mmdatafocus/jewelvault_backend/models"
	"github.com/mmdatafocus/jewelvault_backend/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportWorkbook restores a validated workbook into the live datastore under
// the active tenant scope. Entity types run in catalog order (parents before
// children), one DB transaction per entity type. A sheet absent from the file
// is skipped entirely: older or partial backups stay importable. A failing
// row is counted and logged, never aborts the run.
func ImportWorkbook(ctx context.Context, db *gorm.DB, path string, scope TenantScope, mode RestoreMode, onSheet SheetProgressFunc) (*ImportSummary, error) {
	switch mode {
	case RestoreModeMerge, RestoreModeReplace:
	default:
		return nil, NewSetupError(fmt.Sprintf("unknown restore mode %q", mode), nil)
	}
	if scope.UserId == "" || scope.StoreId == "" {
		return nil, NewSetupError("active user and store are required", nil)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewValidationError("cannot open workbook", err)
	}
	defer f.Close()

	present := map[string]string{}
	for _, name := range f.GetSheetList() {
		present[strings.ToLower(name)] = name
	}

	logger := config.GetLogger()
	summary := NewImportSummary()
	entities := Catalog()

	// Failure logs carry the run's correlation id so one restore's row faults
	// can be pulled together.
	var logData interface{}
	if corrId, ok := utils.GetCorrelationIdFromContext(ctx); ok && corrId != "" {
		logData = map[string]interface{}{"correlationId": corrId}
	}

	for i, et := range entities {
		if onSheet != nil {
			onSheet(et.Name, i, len(entities))
		}

		sheetName, ok := present[strings.ToLower(et.Name)]
		if !ok {
			// graceful degradation for older/partial backup files
			continue
		}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			config.LogError(logger, "datasync", "ImportWorkbook", "read sheet "+et.Name, logData, err)
			continue
		}
		if len(rows) < 2 {
			continue
		}

		header := rows[0]
		outcome := summary.Outcome(et.Name)

		txErr := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for rowNo, row := range rows[1:] {
				rv := newRowValues(header, row)
				if err := importEntityRow(ctx, tx, et.Name, rv, scope, mode, outcome); err != nil {
					outcome.Failed++
					config.LogError(logger, "datasync", "ImportWorkbook",
						fmt.Sprintf("%s row %d", et.Name, rowNo+2), logData, err)
					continue
				}
				if rv.defaulted {
					outcome.Defaulted++
				}
			}
			return nil
		})
		if txErr != nil {
			return nil, fmt.Errorf("import %s: %w", et.Name, txErr)
		}
	}

	return summary, nil
}

// importEntityRow coerces one data row, rewrites its tenant scope and applies
// the restore mode policy.
func importEntityRow(ctx context.Context, tx *gorm.DB, entityName string, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	switch entityName {
	case SheetUsers:
		return importUserRow(ctx, tx, rv, scope, mode, o)
	case SheetUserAdditionalInfo:
		return importUserAdditionalInfoRow(ctx, tx, rv, scope, mode, o)
	case SheetStores:
		return importStoreRow(ctx, tx, rv, scope, mode, o)
	case SheetCategories:
		return importCategoryRow(ctx, tx, rv, scope, mode, o)
	case SheetSubCategories:
		return importSubCategoryRow(ctx, tx, rv, scope, mode, o)
	case SheetItems:
		return importItemRow(ctx, tx, rv, scope, mode, o)
	case SheetCustomers:
		return importCustomerRow(ctx, tx, rv, scope, mode, o)
	case SheetKhataBookPlans:
		return importKhataBookPlanRow(ctx, tx, rv, mode, o)
	case SheetKhataBooks:
		return importKhataBookRow(ctx, tx, rv, scope, mode, o)
	case SheetCustomerTransactions:
		return importCustomerTransactionRow(ctx, tx, rv, scope, mode, o)
	case SheetOrders:
		return importOrderRow(ctx, tx, rv, scope, mode, o)
	case SheetOrderItems:
		return importOrderItemRow(ctx, tx, rv, mode, o)
	case SheetExchangeItems:
		return importExchangeItemRow(ctx, tx, rv, mode, o)
	case SheetFirms:
		return importFirmRow(ctx, tx, rv, mode, o)
	case SheetPurchaseOrders:
		return importPurchaseOrderRow(ctx, tx, rv, mode, o)
	case SheetPurchaseOrderItems:
		return importPurchaseOrderItemRow(ctx, tx, rv, mode, o)
	case SheetMetalExchanges:
		return importMetalExchangeRow(ctx, tx, rv, mode, o)
	}
	return fmt.Errorf("no importer for entity %q", entityName)
}

func orGeneratedId(id string) string {
	if strings.TrimSpace(id) == "" {
		return uuid.NewString()
	}
	return id
}

// applyModePolicy is the shared MERGE/REPLACE decision for one row.
// lookupErr is the result of the natural-key lookup (nil means a record
// exists). save must overwrite the existing record; create must insert a new
// one. protected marks the active admin user / active store rows which
// REPLACE never touches.
func applyModePolicy(mode RestoreMode, lookupErr error, protected bool, create func() error, save func() error, o *EntityOutcome) error {
	if lookupErr != nil && !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
		return lookupErr
	}
	exists := lookupErr == nil

	switch mode {
	case RestoreModeMerge:
		if exists {
			o.Skipped++
			return nil
		}
		if err := create(); err != nil {
			return err
		}
		o.Added++
		return nil

	case RestoreModeReplace:
		if protected {
			o.Skipped++
			return nil
		}
		if exists {
			if err := save(); err != nil {
				return err
			}
		} else {
			if err := create(); err != nil {
				return err
			}
		}
		o.Added++
		return nil
	}
	return fmt.Errorf("unknown restore mode %q", mode)
}

func importUserRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.User{
		Id:        orGeneratedId(rv.Text("id")),
		Name:      rv.Text("name"),
		Email:     rv.Text("email"),
		MobileNo:  rv.Text("mobile_no"),
		Pin:       rv.Text("pin"),
		Role:      rv.Text("role"),
		IsActive:  rv.Bool("is_active"),
		CreatedAt: rv.Time("created_at"),
	}
	if rec.MobileNo == "" {
		return fmt.Errorf("user row has no mobile number")
	}

	var existing models.User
	lookupErr := tx.WithContext(ctx).Where("mobile_no = ?", rec.MobileNo).First(&existing).Error

	// The active admin user is never replaced, even in REPLACE mode.
	protected := rec.MobileNo == scope.UserMobile

	return applyModePolicy(mode, lookupErr, protected,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error {
			rec.Id = existing.Id
			return tx.WithContext(ctx).Save(&rec).Error
		}, o)
}

func importUserAdditionalInfoRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.UserAdditionalInfo{
		Id:         orGeneratedId(rv.Text("id")),
		UserId:     scope.UserId,
		AadhaarNo:  rv.Text("aadhaar_no"),
		Address:    rv.Text("address"),
		City:       rv.Text("city"),
		State:      rv.Text("state"),
		PinCode:    rv.Text("pin_code"),
		GstinNo:    rv.Text("gstin_no"),
		IsVerified: rv.Bool("is_verified"),
		CreatedAt:  rv.Time("created_at"),
	}

	var existing models.UserAdditionalInfo
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importStoreRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.Store{
		Id:             orGeneratedId(rv.Text("id")),
		UserId:         scope.UserId,
		ProprietorName: rv.Text("proprietor_name"),
		Name:           rv.Text("name"),
		Email:          rv.Text("email"),
		Phone:          rv.Text("phone"),
		Address:        rv.Text("address"),
		RegistrationNo: rv.Text("registration_no"),
		GstinNo:        rv.Text("gstin_no"),
		PanNo:          rv.Text("pan_no"),
		UpiId:          rv.Text("upi_id"),
		InvoiceNo:      rv.Int("invoice_no"),
		CreatedAt:      rv.Time("created_at"),
	}

	// Store ids are taken verbatim from the file (the natural key), only the
	// owning user is rewritten.
	var existing models.Store
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	protected := rec.Id == scope.StoreId

	return applyModePolicy(mode, lookupErr, protected,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importCategoryRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.Category{
		Id:        orGeneratedId(rv.Text("id")),
		UserId:    scope.UserId,
		StoreId:   scope.StoreId,
		Name:      rv.Text("name"),
		Quantity:  rv.Int("quantity"),
		GsWt:      rv.Decimal("gs_wt"),
		FnWt:      rv.Decimal("fn_wt"),
		CreatedAt: rv.Time("created_at"),
	}

	var existing models.Category
	lookupErr := tx.WithContext(ctx).
		Where("user_id = ? AND store_id = ? AND name = ?", scope.UserId, scope.StoreId, rec.Name).
		First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error {
			rec.Id = existing.Id
			return tx.WithContext(ctx).Save(&rec).Error
		}, o)
}

func importSubCategoryRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.SubCategory{
		Id:         orGeneratedId(rv.Text("id")),
		CategoryId: rv.Text("category_id"),
		UserId:     scope.UserId,
		StoreId:    scope.StoreId,
		Name:       rv.Text("name"),
		Quantity:   rv.Int("quantity"),
		GsWt:       rv.Decimal("gs_wt"),
		FnWt:       rv.Decimal("fn_wt"),
		CreatedAt:  rv.Time("created_at"),
	}

	var existing models.SubCategory
	lookupErr := tx.WithContext(ctx).
		Where("category_id = ? AND user_id = ? AND store_id = ? AND name = ?",
			rec.CategoryId, scope.UserId, scope.StoreId, rec.Name).
		First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error {
			rec.Id = existing.Id
			return tx.WithContext(ctx).Save(&rec).Error
		}, o)
}

func importItemRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.Item{
		Id:              orGeneratedId(rv.Text("id")),
		UserId:          scope.UserId,
		StoreId:         scope.StoreId,
		DisplayName:     rv.Text("display_name"),
		CategoryId:      rv.Text("category_id"),
		CatName:         rv.Text("cat_name"),
		SubCategoryId:   rv.Text("sub_category_id"),
		SubCatName:      rv.Text("sub_cat_name"),
		EntryType:       rv.Text("entry_type"),
		Quantity:        rv.Int("quantity"),
		GsWt:            rv.Decimal("gs_wt"),
		NtWt:            rv.Decimal("nt_wt"),
		FnWt:            rv.Decimal("fn_wt"),
		Purity:          rv.Text("purity"),
		CrgType:         rv.Text("crg_type"),
		Crg:             rv.Decimal("crg"),
		OthCrgDes:       rv.Text("oth_crg_des"),
		OthCrg:          rv.Decimal("oth_crg"),
		Cgst:            rv.Decimal("cgst"),
		Sgst:            rv.Decimal("sgst"),
		Igst:            rv.Decimal("igst"),
		Huid:            rv.Text("huid"),
		Unit:            rv.Text("unit"),
		AddDate:         rv.Time("add_date"),
		ModifiedDate:    rv.Time("modified_date"),
		SellerFirmId:    rv.Text("seller_firm_id"),
		PurchaseOrderId: rv.Text("purchase_order_id"),
		PurchaseItemId:  rv.Text("purchase_item_id"),
	}

	var existing models.Item
	lookupErr := tx.WithContext(ctx).
		Where("user_id = ? AND store_id = ? AND display_name = ?", scope.UserId, scope.StoreId, rec.DisplayName).
		First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error {
			rec.Id = existing.Id
			return tx.WithContext(ctx).Save(&rec).Error
		}, o)
}

func importCustomerRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.Customer{
		MobileNo:         rv.Text("mobile_no"),
		UserId:           scope.UserId,
		StoreId:          scope.StoreId,
		Name:             rv.Text("name"),
		Address:          rv.Text("address"),
		GstinPan:         rv.Text("gstin_pan"),
		TotalItemBought:  rv.Int("total_item_bought"),
		TotalAmount:      rv.Decimal("total_amount"),
		Notes:            rv.Text("notes"),
		AddDate:          rv.Time("add_date"),
		LastModifiedDate: rv.Time("last_modified_date"),
	}
	if rec.MobileNo == "" {
		return fmt.Errorf("customer row has no mobile number")
	}

	var existing models.Customer
	lookupErr := tx.WithContext(ctx).
		Where("user_id = ? AND store_id = ? AND mobile_no = ?", scope.UserId, scope.StoreId, rec.MobileNo).
		First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importKhataBookPlanRow(ctx context.Context, tx *gorm.DB, rv *rowValues, mode RestoreMode, o *EntityOutcome) error {
	rec := models.KhataBookPlan{
		Id:                orGeneratedId(rv.Text("id")),
		Name:              rv.Text("name"),
		PayMonths:         rv.Int("pay_months"),
		BenefitMonths:     rv.Int("benefit_months"),
		BenefitPercentage: rv.Decimal("benefit_percentage"),
		MinAmount:         rv.Decimal("min_amount"),
		Description:       rv.Text("description"),
		IsActive:          rv.Bool("is_active"),
	}

	var existing models.KhataBookPlan
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importKhataBookRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.KhataBook{
		Id:             orGeneratedId(rv.Text("id")),
		UserId:         scope.UserId,
		StoreId:        scope.StoreId,
		CustomerMobile: rv.Text("customer_mobile"),
		PlanName:       rv.Text("plan_name"),
		StartDate:      rv.Time("start_date"),
		EndDate:        rv.Time("end_date"),
		MonthlyAmount:  rv.Decimal("monthly_amount"),
		TotalMonths:    rv.Int("total_months"),
		Status:         rv.Text("status"),
		Notes:          rv.Text("notes"),
	}

	var existing models.KhataBook
	lookupErr := tx.WithContext(ctx).
		Where("id = ? AND user_id = ? AND store_id = ?", rec.Id, scope.UserId, scope.StoreId).
		First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importCustomerTransactionRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.CustomerTransaction{
		Id:              orGeneratedId(rv.Text("id")),
		UserId:          scope.UserId,
		StoreId:         scope.StoreId,
		CustomerMobile:  rv.Text("customer_mobile"),
		KhataBookId:     rv.Text("khata_book_id"),
		TransactionDate: rv.Time("transaction_date"),
		Category:        rv.Text("category"),
		TransactionType: rv.Text("transaction_type"),
		Amount:          rv.Decimal("amount"),
		MonthNumber:     rv.Int("month_number"),
		Description:     rv.Text("description"),
	}

	var existing models.CustomerTransaction
	lookupErr := tx.WithContext(ctx).
		Where("id = ? AND user_id = ? AND store_id = ?", rec.Id, scope.UserId, scope.StoreId).
		First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importOrderRow(ctx context.Context, tx *gorm.DB, rv *rowValues, scope TenantScope, mode RestoreMode, o *EntityOutcome) error {
	rec := models.Order{
		Id:             orGeneratedId(rv.Text("id")),
		UserId:         scope.UserId,
		StoreId:        scope.StoreId,
		CustomerMobile: rv.Text("customer_mobile"),
		OrderDate:      rv.Time("order_date"),
		TotalAmount:    rv.Decimal("total_amount"),
		TotalTax:       rv.Decimal("total_tax"),
		TotalCharge:    rv.Decimal("total_charge"),
		Discount:       rv.Decimal("discount"),
		Note:           rv.Text("note"),
	}

	var existing models.Order
	lookupErr := tx.WithContext(ctx).
		Where("id = ? AND user_id = ? AND store_id = ?", rec.Id, scope.UserId, scope.StoreId).
		First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importOrderItemRow(ctx context.Context, tx *gorm.DB, rv *rowValues, mode RestoreMode, o *EntityOutcome) error {
	rec := models.OrderItem{
		Id:             orGeneratedId(rv.Text("id")),
		OrderId:        rv.Text("order_id"),
		OrderDate:      rv.Time("order_date"),
		CustomerMobile: rv.Text("customer_mobile"),
		ItemId:         rv.Text("item_id"),
		DisplayName:    rv.Text("display_name"),
		CatName:        rv.Text("cat_name"),
		SubCatName:     rv.Text("sub_cat_name"),
		EntryType:      rv.Text("entry_type"),
		Quantity:       rv.Int("quantity"),
		GsWt:           rv.Decimal("gs_wt"),
		NtWt:           rv.Decimal("nt_wt"),
		FnWt:           rv.Decimal("fn_wt"),
		FnMetalPrice:   rv.Decimal("fn_metal_price"),
		Purity:         rv.Text("purity"),
		CrgType:        rv.Text("crg_type"),
		Crg:            rv.Decimal("crg"),
		OthCrg:         rv.Decimal("oth_crg"),
		Cgst:           rv.Decimal("cgst"),
		Sgst:           rv.Decimal("sgst"),
		Igst:           rv.Decimal("igst"),
		Huid:           rv.Text("huid"),
		Price:          rv.Decimal("price"),
		Charge:         rv.Decimal("charge"),
		Tax:            rv.Decimal("tax"),
	}

	var existing models.OrderItem
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importExchangeItemRow(ctx context.Context, tx *gorm.DB, rv *rowValues, mode RestoreMode, o *EntityOutcome) error {
	rec := models.ExchangeItem{
		Id:                 orGeneratedId(rv.Text("id")),
		OrderId:            rv.Text("order_id"),
		MetalType:          rv.Text("metal_type"),
		Purity:             rv.Text("purity"),
		GrossWeight:        rv.Decimal("gross_weight"),
		FineWeight:         rv.Decimal("fine_weight"),
		Price:              rv.Decimal("price"),
		IsExchangedByMetal: rv.Bool("is_exchanged_by_metal"),
		ExchangeValue:      rv.Decimal("exchange_value"),
		AddDate:            rv.Time("add_date"),
	}

	var existing models.ExchangeItem
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importFirmRow(ctx context.Context, tx *gorm.DB, rv *rowValues, mode RestoreMode, o *EntityOutcome) error {
	rec := models.Firm{
		Id:       orGeneratedId(rv.Text("id")),
		Name:     rv.Text("name"),
		GstinNo:  rv.Text("gstin_no"),
		Address:  rv.Text("address"),
		Phone:    rv.Text("phone"),
		MobileNo: rv.Text("mobile_no"),
		Email:    rv.Text("email"),
	}

	var existing models.Firm
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importPurchaseOrderRow(ctx context.Context, tx *gorm.DB, rv *rowValues, mode RestoreMode, o *EntityOutcome) error {
	rec := models.PurchaseOrder{
		Id:                     orGeneratedId(rv.Text("id")),
		SellerFirmId:           rv.Text("seller_firm_id"),
		BillNo:                 rv.Text("bill_no"),
		BillDate:               rv.Time("bill_date"),
		EntryDate:              rv.Time("entry_date"),
		ExtraChargeDescription: rv.Text("extra_charge_description"),
		ExtraCharge:            rv.Decimal("extra_charge"),
		TotalFinalWeight:       rv.Decimal("total_final_weight"),
		TotalFinalAmount:       rv.Decimal("total_final_amount"),
		CgstPercent:            rv.Decimal("cgst_percent"),
		SgstPercent:            rv.Decimal("sgst_percent"),
		IgstPercent:            rv.Decimal("igst_percent"),
		Notes:                  rv.Text("notes"),
	}

	var existing models.PurchaseOrder
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importPurchaseOrderItemRow(ctx context.Context, tx *gorm.DB, rv *rowValues, mode RestoreMode, o *EntityOutcome) error {
	rec := models.PurchaseOrderItem{
		Id:              orGeneratedId(rv.Text("id")),
		PurchaseOrderId: rv.Text("purchase_order_id"),
		CatId:           rv.Text("cat_id"),
		CatName:         rv.Text("cat_name"),
		SubCatId:        rv.Text("sub_cat_id"),
		SubCatName:      rv.Text("sub_cat_name"),
		GsWt:            rv.Decimal("gs_wt"),
		Purity:          rv.Text("purity"),
		NtWt:            rv.Decimal("nt_wt"),
		FnWt:            rv.Decimal("fn_wt"),
		FnRate:          rv.Decimal("fn_rate"),
		WastagePercent:  rv.Decimal("wastage_percent"),
	}

	var existing models.PurchaseOrderItem
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}

func importMetalExchangeRow(ctx context.Context, tx *gorm.DB, rv *rowValues, mode RestoreMode, o *EntityOutcome) error {
	rec := models.MetalExchange{
		Id:              orGeneratedId(rv.Text("id")),
		PurchaseOrderId: rv.Text("purchase_order_id"),
		CatId:           rv.Text("cat_id"),
		CatName:         rv.Text("cat_name"),
		SubCatId:        rv.Text("sub_cat_id"),
		SubCatName:      rv.Text("sub_cat_name"),
		FnWeight:        rv.Decimal("fn_weight"),
		IsPaid:          rv.Bool("is_paid"),
		AddDate:         rv.Time("add_date"),
	}

	var existing models.MetalExchange
	lookupErr := tx.WithContext(ctx).Where("id = ?", rec.Id).First(&existing).Error

	return applyModePolicy(mode, lookupErr, false,
		func() error { return tx.WithContext(ctx).Create(&rec).Error },
		func() error { return tx.WithContext(ctx).Save(&rec).Error }, o)
}
