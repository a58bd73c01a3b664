package models

import (
	"time"
)

type Store struct {
	Id             string    `gorm:"primaryKey;size:36" json:"id"`
	UserId         string    `gorm:"index;size:36;not null" json:"user_id"`
	ProprietorName string    `gorm:"size:100" json:"proprietor_name"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"size:100" json:"email"`
	Phone          string    `gorm:"size:20" json:"phone"`
	Address        string    `gorm:"size:255" json:"address"`
	RegistrationNo string    `gorm:"size:50" json:"registration_no"`
	GstinNo        string    `gorm:"size:20" json:"gstin_no"`
	PanNo          string    `gorm:"size:20" json:"pan_no"`
	UpiId          string    `gorm:"size:100" json:"upi_id"`
	InvoiceNo      int       `gorm:"default:0" json:"invoice_no"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
