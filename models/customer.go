package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer keys on (mobile number, tenant); the same person in two stores is
// two rows.
type Customer struct {
	MobileNo         string          `gorm:"primaryKey;size:20" json:"mobile_no"`
	UserId           string          `gorm:"primaryKey;size:36" json:"user_id"`
	StoreId          string          `gorm:"primaryKey;size:36" json:"store_id"`
	Name             string          `gorm:"size:100;not null" json:"name"`
	Address          string          `gorm:"size:255" json:"address"`
	GstinPan         string          `gorm:"size:20" json:"gstin_pan"`
	TotalItemBought  int             `gorm:"default:0" json:"total_item_bought"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	Notes            string          `gorm:"type:text" json:"notes"`
	AddDate          time.Time       `json:"add_date"`
	LastModifiedDate time.Time       `json:"last_modified_date"`
}
