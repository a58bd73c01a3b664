package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	Id        string          `gorm:"primaryKey;size:36" json:"id"`
	UserId    string          `gorm:"index;size:36;not null" json:"user_id"`
	StoreId   string          `gorm:"index;size:36;not null" json:"store_id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Quantity  int             `gorm:"default:0" json:"quantity"`
	GsWt      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gs_wt"`
	FnWt      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_wt"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type SubCategory struct {
	Id         string          `gorm:"primaryKey;size:36" json:"id"`
	CategoryId string          `gorm:"index;size:36;not null" json:"category_id"`
	UserId     string          `gorm:"index;size:36;not null" json:"user_id"`
	StoreId    string          `gorm:"index;size:36;not null" json:"store_id"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	Quantity   int             `gorm:"default:0" json:"quantity"`
	GsWt       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gs_wt"`
	FnWt       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fn_wt"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
