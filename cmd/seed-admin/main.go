// seed-admin creates or updates the admin user identified by mobile number.
// The PIN is stored bcrypt-hashed. With -verify, the stored PIN is checked
// instead of written (exit 0 on match, 1 on mismatch).
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//	go run ./cmd/seed-admin -mobile <mobile> -name <name> -pin <pin> [-verify]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mmdatafocus/jewelvault_backend/config"
	"github.com/mmdatafocus/jewelvault_backend/models"
	"github.com/mmdatafocus/jewelvault_backend/utils"
	"gorm.io/gorm"
)

func main() {
	mobile := flag.String("mobile", "", "admin mobile number")
	name := flag.String("name", "Admin", "admin display name")
	pin := flag.String("pin", "", "admin PIN")
	verify := flag.Bool("verify", false, "check the stored PIN instead of writing")
	flag.Parse()

	if *mobile == "" || *pin == "" {
		fmt.Fprintln(os.Stderr, "mobile and pin are required")
		os.Exit(2)
	}
	if err := utils.ValidatePhoneNumber(*mobile, utils.CountryCode); err != nil {
		fmt.Fprintf(os.Stderr, "invalid mobile number: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	if *verify {
		user, err := models.GetUserByMobile(ctx, *mobile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to lookup user: %v\n", err)
			os.Exit(1)
		}
		if err := utils.ComparePin(user.Pin, *pin); err != nil {
			fmt.Fprintf(os.Stderr, "pin mismatch for %s\n", *mobile)
			os.Exit(1)
		}
		fmt.Printf("pin ok for %s\n", *mobile)
		return
	}

	hashed, err := utils.HashPin(*pin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash pin: %v\n", err)
		os.Exit(1)
	}

	existing, err := models.GetUserByMobile(ctx, *mobile)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		fmt.Fprintf(os.Stderr, "failed to lookup user: %v\n", err)
		os.Exit(1)
	}

	if existing == nil {
		user := models.User{
			Id:       uuid.NewString(),
			Name:     *name,
			MobileNo: *mobile,
			Pin:      string(hashed),
			Role:     "admin",
			IsActive: utils.Ptr(true),
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create admin user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("created admin user %s (%s)\n", user.Name, user.MobileNo)
		return
	}

	update := map[string]interface{}{
		"name":      *name,
		"pin":       string(hashed),
		"role":      "admin",
		"is_active": true,
	}
	if err := db.WithContext(ctx).Model(&models.User{}).Where("id = ?", existing.Id).Updates(update).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to update admin user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("updated admin user %s (%s)\n", *name, *mobile)
}
