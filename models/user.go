package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/jewelvault_backend/config"
)

type User struct {
	Id        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	MobileNo  string    `gorm:"size:20;uniqueIndex;not null" json:"mobile_no"`
	Pin       string    `gorm:"size:100" json:"pin"`
	Role      string    `gorm:"size:20;default:'admin'" json:"role"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type UserAdditionalInfo struct {
	Id         string    `gorm:"primaryKey;size:36" json:"id"`
	UserId     string    `gorm:"index;size:36;not null" json:"user_id"`
	AadhaarNo  string    `gorm:"size:20" json:"aadhaar_no"`
	Address    string    `gorm:"size:255" json:"address"`
	City       string    `gorm:"size:100" json:"city"`
	State      string    `gorm:"size:100" json:"state"`
	PinCode    string    `gorm:"size:10" json:"pin_code"`
	GstinNo    string    `gorm:"size:20" json:"gstin_no"`
	IsVerified *bool     `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// GetUserByMobile looks up a user by mobile number. Returns gorm.ErrRecordNotFound
// untouched so callers can branch on it.
func GetUserByMobile(ctx context.Context, mobileNo string) (*User, error) {
	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).Where("mobile_no = ?", mobileNo).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetActiveStore(ctx context.Context, userId string) (*Store, error) {
	db := config.GetDB()
	var store Store
	err := db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at").First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}
