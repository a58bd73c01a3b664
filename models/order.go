package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Id             string          `gorm:"primaryKey;size:36" json:"id"`
	UserId         string          `gorm:"index;size:36;not null" json:"user_id"`
	StoreId        string          `gorm:"index;size:36;not null" json:"store_id"`
	CustomerMobile string          `gorm:"index;size:20;not null" json:"customer_mobile"`
	OrderDate      time.Time       `json:"order_date"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	TotalTax       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_tax"`
	TotalCharge    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_charge"`
	Discount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Note           string          `gorm:"type:text" json:"note"`
}

// OrderItem snapshots the item at sale time; it does not reference live stock.
type OrderItem struct {
	Id             string          `gorm:"primaryKey;size:36" json:"id"`
	OrderId        string          `gorm:"index;size:36;not null" json:"order_id"`
	OrderDate      time.Time       `json:"order_date"`
	CustomerMobile string          `gorm:"size:20" json:"customer_mobile"`
	ItemId         string          `gorm:"size:36" json:"item_id"`
	DisplayName    string          `gorm:"size:150" json:"display_name"`
	CatName        string          `gorm:"size:100" json:"cat_name"`
	SubCatName     string          `gorm:"size:100" json:"sub_cat_name"`
	EntryType      string          `gorm:"size:20" json:"entry_type"`
	Quantity       int             `gorm:"default:0" json:"quantity"`
	GsWt           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gs_wt"`
	NtWt           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"nt_wt"`
	FnWt           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_wt"`
	FnMetalPrice   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_metal_price"`
	Purity         string          `gorm:"size:20" json:"purity"`
	CrgType        string          `gorm:"size:20" json:"crg_type"`
	Crg            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"crg"`
	OthCrg         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"oth_crg"`
	Cgst           decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"cgst"`
	Sgst           decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"sgst"`
	Igst           decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"igst"`
	Huid           string          `gorm:"size:20" json:"huid"`
	Price          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Charge         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"charge"`
	Tax            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax"`
}

// ExchangeItem is old metal taken back from the customer against an order.
type ExchangeItem struct {
	Id                 string          `gorm:"primaryKey;size:36" json:"id"`
	OrderId            string          `gorm:"index;size:36;not null" json:"order_id"`
	MetalType          string          `gorm:"size:20" json:"metal_type"`
	Purity             string          `gorm:"size:20" json:"purity"`
	GrossWeight        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gross_weight"`
	FineWeight         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fine_weight"`
	Price              decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	IsExchangedByMetal *bool           `gorm:"not null;default:false" json:"is_exchanged_by_metal"`
	ExchangeValue      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"exchange_value"`
	AddDate            time.Time       `json:"add_date"`
}
