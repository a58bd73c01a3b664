package models

// Firm is a supplier. Firms are shared across tenants and restore by id.
type Firm struct {
	Id       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	GstinNo  string `gorm:"size:20" json:"gstin_no"`
	Address  string `gorm:"size:255" json:"address"`
	Phone    string `gorm:"size:20" json:"phone"`
	MobileNo string `gorm:"size:20" json:"mobile_no"`
	Email    string `gorm:"size:100" json:"email"`
}
