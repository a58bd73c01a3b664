package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// KhataBookPlan is a savings-plan template. Plans are global: they carry no
// tenant columns and restore by their own id.
type KhataBookPlan struct {
	Id                string          `gorm:"primaryKey;size:36" json:"id"`
	Name              string          `gorm:"size:100;not null" json:"name"`
	PayMonths         int             `gorm:"default:0" json:"pay_months"`
	BenefitMonths     int             `gorm:"default:0" json:"benefit_months"`
	BenefitPercentage decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"benefit_percentage"`
	MinAmount         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"min_amount"`
	Description       string          `gorm:"type:text" json:"description"`
	IsActive          *bool           `gorm:"not null;default:true" json:"is_active"`
}

// KhataBook is one running savings plan of a customer.
type KhataBook struct {
	Id             string          `gorm:"primaryKey;size:36" json:"id"`
	UserId         string          `gorm:"index;size:36;not null" json:"user_id"`
	StoreId        string          `gorm:"index;size:36;not null" json:"store_id"`
	CustomerMobile string          `gorm:"index;size:20;not null" json:"customer_mobile"`
	PlanName       string          `gorm:"size:100" json:"plan_name"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	MonthlyAmount  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"monthly_amount"`
	TotalMonths    int             `gorm:"default:0" json:"total_months"`
	Status         string          `gorm:"size:20;default:'active'" json:"status"`
	Notes          string          `gorm:"type:text" json:"notes"`
}
