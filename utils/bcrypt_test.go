package utils_test

import (
	"testing"

	"github.com/mmdatafocus/jewelvault_backend/utils"
)

func TestHashAndComparePin(t *testing.T) {
	hashed, err := utils.HashPin("4321")
	if err != nil {
		t.Fatalf("HashPin: %v", err)
	}
	if string(hashed) == "4321" {
		t.Fatal("pin stored in the clear")
	}
	if err := utils.ComparePin(string(hashed), "4321"); err != nil {
		t.Errorf("ComparePin rejected the right pin: %v", err)
	}
	if err := utils.ComparePin(string(hashed), "1234"); err == nil {
		t.Error("ComparePin accepted the wrong pin")
	}
}
