package models

import (
	"log"

	"github.com/mmdatafocus/jewelvault_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{}, &UserAdditionalInfo{},
		&Store{},
		&Category{}, &SubCategory{}, &Item{},
		&Customer{},
		&KhataBookPlan{}, &KhataBook{}, &CustomerTransaction{},
		&Order{}, &OrderItem{}, &ExchangeItem{},
		&Firm{}, &PurchaseOrder{}, &PurchaseOrderItem{}, &MetalExchange{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
