package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrder struct {
	Id                     string          `gorm:"primaryKey;size:36" json:"id"`
	SellerFirmId           string          `gorm:"index;size:36;not null" json:"seller_firm_id"`
	BillNo                 string          `gorm:"size:50" json:"bill_no"`
	BillDate               time.Time       `json:"bill_date"`
	EntryDate              time.Time       `json:"entry_date"`
	ExtraChargeDescription string          `gorm:"size:150" json:"extra_charge_description"`
	ExtraCharge            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"extra_charge"`
	TotalFinalWeight       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_final_weight"`
	TotalFinalAmount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_final_amount"`
	CgstPercent            decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"cgst_percent"`
	SgstPercent            decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"sgst_percent"`
	IgstPercent            decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"igst_percent"`
	Notes                  string          `gorm:"type:text" json:"notes"`
}

type PurchaseOrderItem struct {
	Id              string          `gorm:"primaryKey;size:36" json:"id"`
	PurchaseOrderId string          `gorm:"index;size:36;not null" json:"purchase_order_id"`
	CatId           string          `gorm:"size:36" json:"cat_id"`
	CatName         string          `gorm:"size:100" json:"cat_name"`
	SubCatId        string          `gorm:"size:36" json:"sub_cat_id"`
	SubCatName      string          `gorm:"size:100" json:"sub_cat_name"`
	GsWt            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gs_wt"`
	Purity          string          `gorm:"size:20" json:"purity"`
	NtWt            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"nt_wt"`
	FnWt            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_wt"`
	FnRate          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_rate"`
	WastagePercent  decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"wastage_percent"`
}

// MetalExchange records fine metal settled against a purchase order instead of cash.
type MetalExchange struct {
	Id              string          `gorm:"primaryKey;size:36" json:"id"`
	PurchaseOrderId string          `gorm:"index;size:36;not null" json:"purchase_order_id"`
	CatId           string          `gorm:"size:36" json:"cat_id"`
	CatName         string          `gorm:"size:100" json:"cat_name"`
	SubCatId        string          `gorm:"size:36" json:"sub_cat_id"`
	SubCatName      string          `gorm:"size:100" json:"sub_cat_name"`
	FnWeight        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_weight"`
	IsPaid          *bool           `gorm:"not null;default:false" json:"is_paid"`
	AddDate         time.Time       `json:"add_date"`
}
