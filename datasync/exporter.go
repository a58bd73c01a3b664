package datasync

import (
	"context"
	"fmt"
	"time"

	"github.com/mmdatafocus/jewelvault_backend/models"
	"github.com/mmdatafocus/jewelvault_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// TimestampLayout is the fixed cell format for timestamp columns. Restore
// parses with the same layout; changing it breaks older backup files.
const TimestampLayout = "2006-01-02 15:04:05"

// SheetProgressFunc is called once per sheet, before the sheet is written
// (export) or imported (restore).
type SheetProgressFunc func(sheetName string, index, total int)

// ExportWorkbook writes the full datastore to one workbook at path: one sheet
// per catalog entity, a bold header row, then one row per record. Any failure
// aborts the whole export; there is no partial success.
func ExportWorkbook(ctx context.Context, db *gorm.DB, path string, onSheet SheetProgressFunc) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	entities := Catalog()
	for i, et := range entities {
		if onSheet != nil {
			onSheet(et.Name, i, len(entities))
		}
		if _, err := f.NewSheet(et.Name); err != nil {
			return fmt.Errorf("create sheet %s: %w", et.Name, err)
		}

		header := make([]interface{}, len(et.Fields))
		for c, field := range et.Fields {
			header[c] = field.Name
		}
		if err := f.SetSheetRow(et.Name, "A1", &header); err != nil {
			return fmt.Errorf("write header of %s: %w", et.Name, err)
		}
		lastCell, err := excelize.CoordinatesToCellName(len(et.Fields), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(et.Name, "A1", lastCell, headerStyle); err != nil {
			return fmt.Errorf("style header of %s: %w", et.Name, err)
		}

		rows, err := fetchEntityRows(ctx, db, et.Name)
		if err != nil {
			return fmt.Errorf("read %s records: %w", et.Name, err)
		}
		for r := range rows {
			start, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(et.Name, start, &rows[r]); err != nil {
				return fmt.Errorf("write %s row %d: %w", et.Name, r+2, err)
			}
		}
	}

	// excelize seeds every workbook with a default sheet.
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func tsCell(t time.Time) string {
	return t.Format(TimestampLayout)
}

func decCell(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func boolCell(b *bool) bool {
	return utils.DereferencePtr(b, false)
}

// fetchEntityRows reads all records of one entity type and encodes them as
// cell rows in catalog column order. The column order here must stay in
// lock-step with the catalog's field lists.
func fetchEntityRows(ctx context.Context, db *gorm.DB, sheetName string) ([][]interface{}, error) {
	switch sheetName {
	case SheetUsers:
		var recs []models.User
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.Name, r.Email, r.MobileNo, r.Pin, r.Role,
				boolCell(r.IsActive), tsCell(r.CreatedAt),
			})
		}
		return rows, nil

	case SheetUserAdditionalInfo:
		var recs []models.UserAdditionalInfo
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.UserId, r.AadhaarNo, r.Address, r.City, r.State,
				r.PinCode, r.GstinNo, boolCell(r.IsVerified), tsCell(r.CreatedAt),
			})
		}
		return rows, nil

	case SheetStores:
		var recs []models.Store
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.UserId, r.ProprietorName, r.Name, r.Email, r.Phone,
				r.Address, r.RegistrationNo, r.GstinNo, r.PanNo, r.UpiId,
				r.InvoiceNo, tsCell(r.CreatedAt),
			})
		}
		return rows, nil

	case SheetCategories:
		var recs []models.Category
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.UserId, r.StoreId, r.Name, r.Quantity,
				decCell(r.GsWt), decCell(r.FnWt), tsCell(r.CreatedAt),
			})
		}
		return rows, nil

	case SheetSubCategories:
		var recs []models.SubCategory
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.CategoryId, r.UserId, r.StoreId, r.Name, r.Quantity,
				decCell(r.GsWt), decCell(r.FnWt), tsCell(r.CreatedAt),
			})
		}
		return rows, nil

	case SheetItems:
		var recs []models.Item
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.UserId, r.StoreId, r.DisplayName, r.CategoryId, r.CatName,
				r.SubCategoryId, r.SubCatName, r.EntryType, r.Quantity,
				decCell(r.GsWt), decCell(r.NtWt), decCell(r.FnWt), r.Purity,
				r.CrgType, decCell(r.Crg), r.OthCrgDes, decCell(r.OthCrg),
				decCell(r.Cgst), decCell(r.Sgst), decCell(r.Igst), r.Huid, r.Unit,
				tsCell(r.AddDate), tsCell(r.ModifiedDate),
				r.SellerFirmId, r.PurchaseOrderId, r.PurchaseItemId,
			})
		}
		return rows, nil

	case SheetCustomers:
		var recs []models.Customer
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.MobileNo, r.UserId, r.StoreId, r.Name, r.Address, r.GstinPan,
				r.TotalItemBought, decCell(r.TotalAmount), r.Notes,
				tsCell(r.AddDate), tsCell(r.LastModifiedDate),
			})
		}
		return rows, nil

	case SheetKhataBookPlans:
		var recs []models.KhataBookPlan
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.Name, r.PayMonths, r.BenefitMonths,
				decCell(r.BenefitPercentage), decCell(r.MinAmount),
				r.Description, boolCell(r.IsActive),
			})
		}
		return rows, nil

	case SheetKhataBooks:
		var recs []models.KhataBook
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.UserId, r.StoreId, r.CustomerMobile, r.PlanName,
				tsCell(r.StartDate), tsCell(r.EndDate), decCell(r.MonthlyAmount),
				r.TotalMonths, r.Status, r.Notes,
			})
		}
		return rows, nil

	case SheetCustomerTransactions:
		var recs []models.CustomerTransaction
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.UserId, r.StoreId, r.CustomerMobile, r.KhataBookId,
				tsCell(r.TransactionDate), r.Category, r.TransactionType,
				decCell(r.Amount), r.MonthNumber, r.Description,
			})
		}
		return rows, nil

	case SheetOrders:
		var recs []models.Order
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.UserId, r.StoreId, r.CustomerMobile, tsCell(r.OrderDate),
				decCell(r.TotalAmount), decCell(r.TotalTax), decCell(r.TotalCharge),
				decCell(r.Discount), r.Note,
			})
		}
		return rows, nil

	case SheetOrderItems:
		var recs []models.OrderItem
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.OrderId, tsCell(r.OrderDate), r.CustomerMobile, r.ItemId,
				r.DisplayName, r.CatName, r.SubCatName, r.EntryType, r.Quantity,
				decCell(r.GsWt), decCell(r.NtWt), decCell(r.FnWt),
				decCell(r.FnMetalPrice), r.Purity, r.CrgType, decCell(r.Crg),
				decCell(r.OthCrg), decCell(r.Cgst), decCell(r.Sgst), decCell(r.Igst),
				r.Huid, decCell(r.Price), decCell(r.Charge), decCell(r.Tax),
			})
		}
		return rows, nil

	case SheetExchangeItems:
		var recs []models.ExchangeItem
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.OrderId, r.MetalType, r.Purity, decCell(r.GrossWeight),
				decCell(r.FineWeight), decCell(r.Price),
				boolCell(r.IsExchangedByMetal), decCell(r.ExchangeValue),
				tsCell(r.AddDate),
			})
		}
		return rows, nil

	case SheetFirms:
		var recs []models.Firm
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.Name, r.GstinNo, r.Address, r.Phone, r.MobileNo, r.Email,
			})
		}
		return rows, nil

	case SheetPurchaseOrders:
		var recs []models.PurchaseOrder
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.SellerFirmId, r.BillNo, tsCell(r.BillDate), tsCell(r.EntryDate),
				r.ExtraChargeDescription, decCell(r.ExtraCharge),
				decCell(r.TotalFinalWeight), decCell(r.TotalFinalAmount),
				decCell(r.CgstPercent), decCell(r.SgstPercent), decCell(r.IgstPercent),
				r.Notes,
			})
		}
		return rows, nil

	case SheetPurchaseOrderItems:
		var recs []models.PurchaseOrderItem
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.PurchaseOrderId, r.CatId, r.CatName, r.SubCatId, r.SubCatName,
				decCell(r.GsWt), r.Purity, decCell(r.NtWt), decCell(r.FnWt),
				decCell(r.FnRate), decCell(r.WastagePercent),
			})
		}
		return rows, nil

	case SheetMetalExchanges:
		var recs []models.MetalExchange
		if err := db.WithContext(ctx).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([][]interface{}, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []interface{}{
				r.Id, r.PurchaseOrderId, r.CatId, r.CatName, r.SubCatId, r.SubCatName,
				decCell(r.FnWeight), boolCell(r.IsPaid), tsCell(r.AddDate),
			})
		}
		return rows, nil
	}

	return nil, fmt.Errorf("unknown sheet %q", sheetName)
}
