package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one stock entry of the store. EntryType is "Piece" or "Lot";
// CrgType is the making-charge basis ("Percentage", "PerGm" or "Piece").
type Item struct {
	Id              string          `gorm:"primaryKey;size:36" json:"id"`
	UserId          string          `gorm:"index;size:36;not null" json:"user_id"`
	StoreId         string          `gorm:"index;size:36;not null" json:"store_id"`
	DisplayName     string          `gorm:"size:150;not null" json:"display_name"`
	CategoryId      string          `gorm:"index;size:36" json:"category_id"`
	CatName         string          `gorm:"size:100" json:"cat_name"`
	SubCategoryId   string          `gorm:"index;size:36" json:"sub_category_id"`
	SubCatName      string          `gorm:"size:100" json:"sub_cat_name"`
	EntryType       string          `gorm:"size:20" json:"entry_type"`
	Quantity        int             `gorm:"default:0" json:"quantity"`
	GsWt            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gs_wt"`
	NtWt            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"nt_wt"`
	FnWt            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_wt"`
	Purity          string          `gorm:"size:20" json:"purity"`
	CrgType         string          `gorm:"size:20" json:"crg_type"`
	Crg             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"crg"`
	OthCrgDes       string          `gorm:"size:150" json:"oth_crg_des"`
	OthCrg          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"oth_crg"`
	Cgst            decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"cgst"`
	Sgst            decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"sgst"`
	Igst            decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"igst"`
	Huid            string          `gorm:"size:20" json:"huid"`
	Unit            string          `gorm:"size:10" json:"unit"`
	AddDate         time.Time       `json:"add_date"`
	ModifiedDate    time.Time       `json:"modified_date"`
	SellerFirmId    string          `gorm:"size:36" json:"seller_firm_id"`
	PurchaseOrderId string          `gorm:"size:36" json:"purchase_order_id"`
	PurchaseItemId  string          `gorm:"size:36" json:"purchase_item_id"`
}
