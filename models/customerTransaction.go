package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTransaction is one ledger entry against a customer: a khata-book
// installment, an outstanding (udhaar) debit or a repayment credit.
type CustomerTransaction struct {
	Id              string          `gorm:"primaryKey;size:36" json:"id"`
	UserId          string          `gorm:"index;size:36;not null" json:"user_id"`
	StoreId         string          `gorm:"index;size:36;not null" json:"store_id"`
	CustomerMobile  string          `gorm:"index;size:20;not null" json:"customer_mobile"`
	KhataBookId     string          `gorm:"index;size:36" json:"khata_book_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Category        string          `gorm:"size:50" json:"category"`
	TransactionType string          `gorm:"size:20" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	MonthNumber     int             `gorm:"default:0" json:"month_number"`
	Description     string          `gorm:"type:text" json:"description"`
}
