// File: /models/models_test.go
package models

import "testing"

func TestSaleCommission(t *testing.T) {
	sale := &Sale{TotalAmount: 50000, DiscountAmount: 2000, CommissionRate: 5}
	if got := sale.Commission(); got != 2400 {
		t.Fatalf("expected commission 2400, got %v", got)
	}

	// Zero rate means zero commission regardless of amounts.
	sale = &Sale{TotalAmount: 30000, CommissionRate: 0}
	if got := sale.Commission(); got != 0 {
		t.Fatalf("expected zero commission, got %v", got)
	}
}

func TestVehicleKind(t *testing.T) {
	vehicle := &MotorVehicle{Car: &Car{}}
	if vehicle.Kind() != VehicleKindCar {
		t.Errorf("expected car, got %q", vehicle.Kind())
	}

	vehicle = &MotorVehicle{Motorcycle: &Motorcycle{}}
	if vehicle.Kind() != VehicleKindMotorcycle {
		t.Errorf("expected motorcycle, got %q", vehicle.Kind())
	}

	vehicle = &MotorVehicle{}
	if vehicle.Kind() != "" {
		t.Errorf("expected empty kind without a specialization, got %q", vehicle.Kind())
	}
}

func TestStatusValidators(t *testing.T) {
	if !IsValidVehicleStatus(VehicleStatusReserved) || IsValidVehicleStatus("parked") {
		t.Error("vehicle status validation wrong")
	}
	if !IsValidSaleStatus(SaleStatusDelivered) || IsValidSaleStatus("shipped") {
		t.Error("sale status validation wrong")
	}
	if !IsValidPaymentMethod(PaymentPix) || IsValidPaymentMethod("barter") {
		t.Error("payment method validation wrong")
	}
	if !IsValidEmployeeStatus(EmployeeStatusInactive) || IsValidEmployeeStatus("fired") {
		t.Error("employee status validation wrong")
	}
	if !IsValidMessageStatus(MessageStatusInContact) || IsValidMessageStatus("archived") {
		t.Error("message status validation wrong")
	}
	if !IsValidRole(RoleSeller) || IsValidRole("superuser") {
		t.Error("role validation wrong")
	}
}

func TestAddressIsEmpty(t *testing.T) {
	if empty := (&Address{}).IsEmpty(); !empty {
		t.Error("blank address must be empty")
	}

	city := "Curitiba"
	if empty := (&Address{City: &city}).IsEmpty(); empty {
		t.Error("address with a city is not empty")
	}
}

func TestUserIsAdmin(t *testing.T) {
	if (&User{Role: RoleSeller}).IsAdmin() {
		t.Error("seller is not an admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role not recognized")
	}
}
